package marketplace_api

import (
	"context"
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

func (c *Client) GetMe(ctx context.Context, token string) (*domain.User, error) {
	logger := c.logger(ctx, "GetMe")

	var resp userResponse
	if err := c.call(ctx, logger, http.MethodGet, "/users/me", token, nil, &resp, nil); err != nil {
		return nil, err
	}
	user := resp.toDomain()
	return &user, nil
}

func (c *Client) UpdateMe(ctx context.Context, token string, update domain.ProfileUpdate) (*domain.User, error) {
	logger := c.logger(ctx, "UpdateMe")

	body := profileRequest{
		Username:  update.Username,
		Email:     update.Email,
		FirstName: update.FirstName,
		LastName:  update.LastName,
	}

	var resp userResponse
	if err := c.call(ctx, logger, http.MethodPut, "/users/me", token, body, &resp, nil); err != nil {
		return nil, err
	}
	user := resp.toDomain()
	return &user, nil
}

func (c *Client) GetDashboard(ctx context.Context, token string) (*domain.Dashboard, error) {
	logger := c.logger(ctx, "GetDashboard")

	var resp dashboardResponse
	if err := c.call(ctx, logger, http.MethodGet, "/users/me/dashboard", token, nil, &resp, nil); err != nil {
		return nil, err
	}
	logger.Debug("Dashboard received", port.Fields{"has_tier": resp.Tier != nil})
	return resp.toDomain(), nil
}

func (c *Client) GetAgentTiers(ctx context.Context) ([]domain.AgentTier, error) {
	logger := c.logger(ctx, "GetAgentTiers")

	var resp []tierResponse
	if err := c.call(ctx, logger, http.MethodGet, "/agent-tiers", "", nil, &resp, nil); err != nil {
		return nil, err
	}

	tiers := make([]domain.AgentTier, len(resp))
	for i, t := range resp {
		tiers[i] = t.toDomain()
	}
	return tiers, nil
}

func (c *Client) SubscribeToTier(ctx context.Context, token string, tierID int64) (*domain.Subscription, error) {
	logger := c.logger(ctx, "SubscribeToTier").WithFields(port.Fields{"tier_id": tierID})

	var resp subscriptionResponse
	if err := c.call(ctx, logger, http.MethodPost, idPath("/agent-tiers", tierID, "/subscribe"), token, nil, &resp, domain.ErrTierNotFound); err != nil {
		return nil, err
	}
	logger.Info("Subscribed to tier", port.Fields{"subscription_id": resp.ID})
	return resp.toDomain(), nil
}
