package usecases_port

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

type SubmitLeadUseCase interface {
	Execute(ctx context.Context, sessionKey string, token string, submission domain.LeadSubmission) (*domain.Lead, error)
}

type ListLeadsUseCase interface {
	Execute(ctx context.Context, session domain.Session, query domain.LeadListQuery) (*domain.LeadListView, error)
}

type UpdateLeadStatusUseCase interface {
	Execute(ctx context.Context, session domain.Session, leadID int64, proposed domain.LeadStatus, details string) (*domain.Lead, error)
}

type PayForLeadUseCase interface {
	Execute(ctx context.Context, session domain.Session, leadID int64, returnURLs domain.CheckoutRequest) (*domain.CheckoutSession, error)
}

type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, session domain.Session, paymentSessionID string) (*domain.PaymentConfirmation, error)
}

type GetLeadHistoryUseCase interface {
	Execute(ctx context.Context, session domain.Session, leadID int64) ([]domain.LeadTransitionRecord, error)
}
