package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type RegisterUseCase struct {
	auth     port.AuthAPIPort
	sessions *SessionService
}

func NewRegisterUseCase(auth port.AuthAPIPort, sessions *SessionService) *RegisterUseCase {
	return &RegisterUseCase{auth: auth, sessions: sessions}
}

// Execute регистрирует пользователя. Если бэкенд сразу выдал токен, открывается
// сессия, иначе возвращается nil и пользователь входит отдельно.
func (uc *RegisterUseCase) Execute(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "Register",
		"email":    reg.Email,
	})

	ucLogger.Info("Use case started", nil)

	// несовпадение паролей ловится здесь, до обращения к API
	if err := validateInput(reg); err != nil {
		ucLogger.Warn("Registration form is invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	result, err := uc.auth.Register(ctx, reg)
	if err != nil {
		ucLogger.Error("Remote registration failed", err, nil)
		return nil, err
	}

	if result == nil || result.Token == "" {
		ucLogger.Info("Use case finished successfully, login required", nil)
		return nil, nil
	}

	session, err := uc.sessions.open(ctx, result)
	if err != nil {
		ucLogger.Error("Failed to open session", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": session.User.ID})
	return session, nil
}
