package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type GetDashboardUseCase struct {
	sessions *SessionService
}

func NewGetDashboardUseCase(sessions *SessionService) *GetDashboardUseCase {
	return &GetDashboardUseCase{sessions: sessions}
}

// Execute перечитывает кабинет и считает флаги тарифа. Если API недоступен,
// используется последний сохраненный снимок.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, session domain.Session) (*domain.Dashboard, domain.TierGate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDashboard",
		"user_id":  session.User.ID,
	})

	ucLogger.Info("Use case started", nil)

	refreshed, err := uc.sessions.refreshDashboard(ctx, session.ID)
	if err != nil {
		if session.Dashboard == nil {
			ucLogger.Error("Dashboard is not available", err, nil)
			return nil, domain.TierGate{}, err
		}
		ucLogger.Warn("Dashboard refresh failed, serving cached snapshot", port.Fields{"error": err.Error()})
		return session.Dashboard, domain.EvaluateGate(*session.Dashboard), nil
	}

	gate := domain.EvaluateGate(*refreshed.Dashboard)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"listings_near_limit": gate.ListingsNearLimit,
		"leads_near_limit":    gate.LeadsNearLimit,
	})
	return refreshed.Dashboard, gate, nil
}
