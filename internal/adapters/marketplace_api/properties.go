package marketplace_api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

// SearchProperties - GET /properties с параметрами фильтра, page и size.
func (c *Client) SearchProperties(ctx context.Context, filter domain.PropertyQueryFilter, page, size int) ([]domain.PropertySummary, int, error) {
	logger := c.logger(ctx, "SearchProperties")

	query := filter.Values()
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var resp propertyPageResponse
	if err := c.call(ctx, logger, http.MethodGet, "/properties?"+query.Encode(), "", nil, &resp, nil); err != nil {
		return nil, 0, err
	}

	logger.Info("Successfully received and decoded response", port.Fields{"objects_count": len(resp.Content), "total": resp.total()})
	return toSummaries(resp.Content), resp.total(), nil
}

func (c *Client) GetAllProperties(ctx context.Context) ([]domain.PropertySummary, error) {
	logger := c.logger(ctx, "GetAllProperties")

	var resp []propertyResponse
	if err := c.call(ctx, logger, http.MethodGet, "/properties/all", "", nil, &resp, nil); err != nil {
		return nil, err
	}
	return toSummaries(resp), nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*domain.PropertyDetail, error) {
	logger := c.logger(ctx, "GetProperty").WithFields(port.Fields{"property_id": id})

	var resp propertyResponse
	if err := c.call(ctx, logger, http.MethodGet, "/properties/"+url.PathEscape(id), "", nil, &resp, domain.ErrPropertyNotFound); err != nil {
		return nil, err
	}
	return resp.toDetail(), nil
}

// GetMyProperties - объявления текущего пользователя, бэкенд определяет его по токену.
func (c *Client) GetMyProperties(ctx context.Context, token string) ([]domain.PropertySummary, error) {
	logger := c.logger(ctx, "GetMyProperties")

	var resp []propertyResponse
	if err := c.call(ctx, logger, http.MethodGet, "/properties/by-token-email", token, nil, &resp, nil); err != nil {
		return nil, err
	}
	logger.Debug("Owned properties received", port.Fields{"objects_count": len(resp)})
	return toSummaries(resp), nil
}

func (c *Client) CreateProperty(ctx context.Context, token string, input domain.PropertyInput) (*domain.PropertyDetail, error) {
	logger := c.logger(ctx, "CreateProperty")

	var resp propertyResponse
	if err := c.call(ctx, logger, http.MethodPost, "/properties", token, input, &resp, nil); err != nil {
		return nil, err
	}
	logger.Info("Property created", port.Fields{"property_id": string(resp.ID)})
	return resp.toDetail(), nil
}

func (c *Client) UpdateProperty(ctx context.Context, token, id string, input domain.PropertyInput) (*domain.PropertyDetail, error) {
	logger := c.logger(ctx, "UpdateProperty").WithFields(port.Fields{"property_id": id})

	var resp propertyResponse
	if err := c.call(ctx, logger, http.MethodPut, "/properties/"+url.PathEscape(id), token, input, &resp, domain.ErrPropertyNotFound); err != nil {
		return nil, err
	}
	return resp.toDetail(), nil
}

func (c *Client) DeleteProperty(ctx context.Context, token, id string) error {
	logger := c.logger(ctx, "DeleteProperty").WithFields(port.Fields{"property_id": id})
	return c.call(ctx, logger, http.MethodDelete, "/properties/"+url.PathEscape(id), token, nil, nil, domain.ErrPropertyNotFound)
}

func (c *Client) CreateFSBOListing(ctx context.Context, token string, input domain.FSBOListingInput) (*domain.PropertyDetail, error) {
	logger := c.logger(ctx, "CreateFSBOListing")

	var resp propertyResponse
	if err := c.call(ctx, logger, http.MethodPost, "/listings/fsbo", token, input, &resp, nil); err != nil {
		return nil, err
	}
	logger.Info("FSBO listing created", port.Fields{"property_id": string(resp.ID)})
	return resp.toDetail(), nil
}
