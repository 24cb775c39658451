package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type UpdateProfileUseCase struct {
	users    port.UserAPIPort
	sessions *SessionService
}

func NewUpdateProfileUseCase(users port.UserAPIPort, sessions *SessionService) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{users: users, sessions: sessions}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, session domain.Session, update domain.ProfileUpdate) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateProfile",
		"user_id":  session.User.ID,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateInput(update); err != nil {
		ucLogger.Warn("Profile form is invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	user, err := uc.users.UpdateMe(ctx, session.Token, update)
	if err != nil {
		ucLogger.Error("Remote profile update failed", err, nil)
		return nil, err
	}

	// ответ бэкенда может не содержать тип пользователя
	if user.UserType == "" {
		user.UserType = session.User.UserType
	}

	if err := uc.sessions.replaceUser(ctx, session.ID, *user); err != nil {
		ucLogger.Error("Failed to store updated user in session", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}
