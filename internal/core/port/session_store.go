package port

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// SessionStorePort - хранилище сессий. Писать в него могут только use cases сессии.
type SessionStorePort interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenInspectorPort извлекает срок действия и роль из токена бэкенда без проверки подписи.
type TokenInspectorPort interface {
	Inspect(token string) (*domain.TokenInfo, error)
}
