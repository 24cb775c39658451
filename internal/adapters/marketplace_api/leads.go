package marketplace_api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

func (c *Client) SubmitLead(ctx context.Context, token string, submission domain.LeadSubmission) (*domain.Lead, error) {
	logger := c.logger(ctx, "SubmitLead").WithFields(port.Fields{"property_id": submission.PropertyID})

	body := leadSubmissionRequest{
		Name:                 submission.Name,
		Email:                submission.Email,
		Phone:                submission.Phone,
		Message:              submission.Message,
		LeadType:             string(submission.LeadType),
		PreferredContactTime: submission.PreferredContactTime,
		Urgency:              string(submission.Urgency),
	}

	var resp leadResponse
	path := "/listings/" + url.PathEscape(submission.PropertyID) + "/lead"
	if err := c.call(ctx, logger, http.MethodPost, path, token, body, &resp, domain.ErrPropertyNotFound); err != nil {
		return nil, err
	}
	lead := resp.toDomain()
	return &lead, nil
}

func (c *Client) GetMyLeads(ctx context.Context, token string) ([]domain.Lead, error) {
	logger := c.logger(ctx, "GetMyLeads")

	var resp []leadResponse
	if err := c.call(ctx, logger, http.MethodGet, "/users/me/leads", token, nil, &resp, nil); err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, len(resp))
	for i, item := range resp {
		leads[i] = item.toDomain()
	}
	logger.Debug("Leads received", port.Fields{"leads_count": len(leads)})
	return leads, nil
}

func (c *Client) UpdateLeadStatus(ctx context.Context, token string, change domain.LeadStatusChange) (*domain.Lead, error) {
	logger := c.logger(ctx, "UpdateLeadStatus").WithFields(port.Fields{"lead_id": change.LeadID, "status": string(change.Status)})
	return c.patchLead(ctx, logger, token, idPath("/leads", change.LeadID, ""), leadStatusRequest{Status: string(change.Status)})
}

func (c *Client) VerifyLead(ctx context.Context, token string, leadID int64, details string) (*domain.Lead, error) {
	logger := c.logger(ctx, "VerifyLead").WithFields(port.Fields{"lead_id": leadID})
	return c.patchLead(ctx, logger, token, idPath("/leads", leadID, "/verify"), verifyLeadRequest{VerificationDetails: details})
}

func (c *Client) AssignLead(ctx context.Context, token string, leadID, agentID int64) (*domain.Lead, error) {
	logger := c.logger(ctx, "AssignLead").WithFields(port.Fields{"lead_id": leadID, "agent_id": agentID})
	return c.patchLead(ctx, logger, token, idPath("/leads", leadID, "/assign"), assignLeadRequest{AgentID: agentID})
}

// patchLead возвращает nil-лид, если бэкенд ответил без тела.
func (c *Client) patchLead(ctx context.Context, logger port.LoggerPort, token, path string, body interface{}) (*domain.Lead, error) {
	var resp *leadResponse
	if err := c.call(ctx, logger, http.MethodPatch, path, token, body, &resp, domain.ErrLeadNotFound); err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	lead := resp.toDomain()
	return &lead, nil
}
