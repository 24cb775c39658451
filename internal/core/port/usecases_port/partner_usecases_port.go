package usecases_port

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

type ListPartnersUseCase interface {
	Execute(ctx context.Context) ([]domain.ServicePartner, error)
}

type ReferToPartnerUseCase interface {
	Execute(ctx context.Context, session domain.Session, partnerID, referredUserID int64) (*domain.ReferralTransaction, error)
}
