package marketplace_api

import (
	"context"
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

func (c *Client) GetServicePartners(ctx context.Context) ([]domain.ServicePartner, error) {
	logger := c.logger(ctx, "GetServicePartners")

	var resp []partnerResponse
	if err := c.call(ctx, logger, http.MethodGet, "/service-partners", "", nil, &resp, nil); err != nil {
		return nil, err
	}

	partners := make([]domain.ServicePartner, len(resp))
	for i, p := range resp {
		partners[i] = domain.ServicePartner{
			ID:          p.ID,
			Name:        p.Name,
			ServiceType: p.ServiceType,
			Description: p.Description,
			ContactInfo: p.ContactInfo,
			Active:      p.Active,
		}
	}
	return partners, nil
}

func (c *Client) InitiateReferral(ctx context.Context, token string, partnerID, referredUserID int64) (*domain.ReferralTransaction, error) {
	logger := c.logger(ctx, "InitiateReferral").WithFields(port.Fields{"partner_id": partnerID})

	var resp referralResponse
	path := idPath("/service-partners", partnerID, "/refer")
	if err := c.call(ctx, logger, http.MethodPost, path, token, referralRequest{ReferredUserID: referredUserID}, &resp, nil); err != nil {
		return nil, err
	}
	logger.Info("Referral initiated", port.Fields{"referral_id": resp.ID})
	return resp.toDomain(), nil
}
