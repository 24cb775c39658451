package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type LogoutUseCase struct {
	sessions *SessionService
	leads    *LeadBoard
}

func NewLogoutUseCase(sessions *SessionService, leads *LeadBoard) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, leads: leads}
}

// Execute закрывает сессию и сообщает остальным вкладкам пользователя.
// Повторный выход не считается ошибкой.
func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "Logout",
		"session_id": sessionID,
	})

	ucLogger.Info("Use case started", nil)

	session, err := uc.sessions.close(ctx, sessionID)
	if err != nil {
		if isNotFound(err) {
			ucLogger.Info("Session already closed", nil)
			return nil
		}
		ucLogger.Error("Failed to close session", err, nil)
		return err
	}

	if uc.leads != nil {
		uc.leads.Forget(sessionID)
	}
	uc.sessions.notify(ctx, port.UserEvent{
		Type:   port.EventSessionEnded,
		UserID: session.User.ID,
		Data:   map[string]string{"sessionId": sessionID},
	})

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
