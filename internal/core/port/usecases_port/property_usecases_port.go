package usecases_port

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

type SearchPropertiesUseCase interface {
	Execute(ctx context.Context, sessionKey string, filter domain.PropertyQueryFilter) domain.ListResult
}

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, id string) (*domain.PropertyDetail, error)
}

type ListMyPropertiesUseCase interface {
	Execute(ctx context.Context, session domain.Session) ([]domain.PropertySummary, error)
}

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, session domain.Session, input domain.PropertyInput) (*domain.PropertyDetail, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, session domain.Session, id string, input domain.PropertyInput) (*domain.PropertyDetail, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, session domain.Session, id string) error
}

type CreateFSBOListingUseCase interface {
	Execute(ctx context.Context, session domain.Session, input domain.FSBOListingInput, returnURLs domain.CheckoutRequest) (*domain.PropertyDetail, *domain.CheckoutSession, error)
}
