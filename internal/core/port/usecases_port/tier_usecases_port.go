package usecases_port

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, session domain.Session) (*domain.Dashboard, domain.TierGate, error)
}

type ListTiersUseCase interface {
	Execute(ctx context.Context, session *domain.Session) ([]domain.TierOption, error)
}

type SubscribeToTierUseCase interface {
	Execute(ctx context.Context, session domain.Session, tierID int64) (*domain.Dashboard, error)
}
