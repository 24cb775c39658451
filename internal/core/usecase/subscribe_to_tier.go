package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type SubscribeToTierUseCase struct {
	users    port.UserAPIPort
	sessions *SessionService
}

func NewSubscribeToTierUseCase(users port.UserAPIPort, sessions *SessionService) *SubscribeToTierUseCase {
	return &SubscribeToTierUseCase{users: users, sessions: sessions}
}

// Execute оформляет подписку. Тариф в сессии меняется только после успешного
// ответа и перечитывания кабинета.
func (uc *SubscribeToTierUseCase) Execute(ctx context.Context, session domain.Session, tierID int64) (*domain.Dashboard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SubscribeToTier",
		"tier_id":  tierID,
	})

	ucLogger.Info("Use case started", nil)

	if session.User.UserType != domain.UserTypeAgent && session.User.UserType != domain.UserTypeUser {
		ucLogger.Warn("Only agents or users can subscribe to tiers", port.Fields{"user_type": string(session.User.UserType)})
		return nil, domain.ErrForbidden
	}

	if _, err := uc.users.SubscribeToTier(ctx, session.Token, tierID); err != nil {
		ucLogger.Error("Remote subscription failed", err, nil)
		return nil, err
	}

	refreshed, err := uc.sessions.refreshDashboard(ctx, session.ID)
	if err != nil {
		ucLogger.Warn("Subscribed, but dashboard refresh failed", port.Fields{"error": err.Error()})
		return session.Dashboard, nil
	}

	ucLogger.Info("Use case finished successfully", nil)
	return refreshed.Dashboard, nil
}
