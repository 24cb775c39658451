package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type LoginUseCase struct {
	auth     port.AuthAPIPort
	sessions *SessionService
}

func NewLoginUseCase(auth port.AuthAPIPort, sessions *SessionService) *LoginUseCase {
	return &LoginUseCase{auth: auth, sessions: sessions}
}

func (uc *LoginUseCase) Execute(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "Login",
		"email":    creds.Email,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateInput(creds); err != nil {
		ucLogger.Warn("Login form is invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	result, err := uc.auth.Login(ctx, creds)
	if err != nil {
		ucLogger.Error("Remote login failed", err, nil)
		return nil, err
	}
	if result.User.Email == "" {
		result.User.Email = creds.Email
	}

	session, err := uc.sessions.open(ctx, result)
	if err != nil {
		ucLogger.Error("Failed to open session", err, nil)
		return nil, err
	}

	// кабинет нужен только агентам и собственникам, ошибка не мешает входу
	if session.User.UserType == domain.UserTypeAgent || session.User.UserType == domain.UserTypeOwner {
		if refreshed, err := uc.sessions.refreshDashboard(ctx, session.ID); err != nil {
			ucLogger.Warn("Dashboard is not available after login", port.Fields{"error": err.Error()})
		} else {
			session = refreshed
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": session.User.ID})
	return session, nil
}
