package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type ListMyPropertiesUseCase struct {
	properties port.PropertyAPIPort
}

func NewListMyPropertiesUseCase(properties port.PropertyAPIPort) *ListMyPropertiesUseCase {
	return &ListMyPropertiesUseCase{properties: properties}
}

func (uc *ListMyPropertiesUseCase) Execute(ctx context.Context, session domain.Session) ([]domain.PropertySummary, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListMyProperties",
		"user_id":  session.User.ID,
	})

	ucLogger.Info("Use case started", nil)

	items, err := uc.properties.GetMyProperties(ctx, session.Token)
	if err != nil {
		ucLogger.Error("Failed to load own listings", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(items)})
	return items, nil
}
