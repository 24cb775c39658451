package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

type ResolveSessionUseCase struct {
	sessions *SessionService
}

func NewResolveSessionUseCase(sessions *SessionService) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{sessions: sessions}
}

// Execute вызывается на каждый запрос, поэтому без логов старта/финиша.
func (uc *ResolveSessionUseCase) Execute(ctx context.Context, sessionID string) (*domain.Session, error) {
	return uc.sessions.load(ctx, sessionID)
}
