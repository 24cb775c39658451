package port

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// Порты удаленного REST API маркетплейса. token - bearer-токен сессии,
// пустой для анонимных запросов.

type AuthAPIPort interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
}

type PropertyAPIPort interface {
	SearchProperties(ctx context.Context, filter domain.PropertyQueryFilter, page, size int) ([]domain.PropertySummary, int, error)
	GetAllProperties(ctx context.Context) ([]domain.PropertySummary, error)
	GetProperty(ctx context.Context, id string) (*domain.PropertyDetail, error)
	GetMyProperties(ctx context.Context, token string) ([]domain.PropertySummary, error)
	CreateProperty(ctx context.Context, token string, input domain.PropertyInput) (*domain.PropertyDetail, error)
	UpdateProperty(ctx context.Context, token, id string, input domain.PropertyInput) (*domain.PropertyDetail, error)
	DeleteProperty(ctx context.Context, token, id string) error
	CreateFSBOListing(ctx context.Context, token string, input domain.FSBOListingInput) (*domain.PropertyDetail, error)
}

type LeadAPIPort interface {
	SubmitLead(ctx context.Context, token string, submission domain.LeadSubmission) (*domain.Lead, error)
	GetMyLeads(ctx context.Context, token string) ([]domain.Lead, error)
	UpdateLeadStatus(ctx context.Context, token string, change domain.LeadStatusChange) (*domain.Lead, error)
	VerifyLead(ctx context.Context, token string, leadID int64, details string) (*domain.Lead, error)
	AssignLead(ctx context.Context, token string, leadID, agentID int64) (*domain.Lead, error)
}

type UserAPIPort interface {
	GetMe(ctx context.Context, token string) (*domain.User, error)
	UpdateMe(ctx context.Context, token string, update domain.ProfileUpdate) (*domain.User, error)
	GetDashboard(ctx context.Context, token string) (*domain.Dashboard, error)
	GetAgentTiers(ctx context.Context) ([]domain.AgentTier, error)
	SubscribeToTier(ctx context.Context, token string, tierID int64) (*domain.Subscription, error)
}

type BillingAPIPort interface {
	InitiateCheckout(ctx context.Context, token string, req domain.CheckoutRequest) (*domain.CheckoutSession, error)
}

type PartnerAPIPort interface {
	GetServicePartners(ctx context.Context) ([]domain.ServicePartner, error)
	InitiateReferral(ctx context.Context, token string, partnerID, referredUserID int64) (*domain.ReferralTransaction, error)
}
