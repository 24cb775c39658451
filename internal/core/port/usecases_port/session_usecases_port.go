package usecases_port

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

type LoginUseCase interface {
	Execute(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
}

type RegisterUseCase interface {
	Execute(ctx context.Context, reg domain.Registration) (*domain.Session, error)
}

type LogoutUseCase interface {
	Execute(ctx context.Context, sessionID string) error
}

type ResolveSessionUseCase interface {
	Execute(ctx context.Context, sessionID string) (*domain.Session, error)
}

type UpdateProfileUseCase interface {
	Execute(ctx context.Context, session domain.Session, update domain.ProfileUpdate) (*domain.User, error)
}
