package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision - ячейка около 150 м, достаточно для карты района.
const GeohashPrecision = 7

type GetPropertyDetailsUseCase struct {
	properties port.PropertyAPIPort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyAPIPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id string) (*domain.PropertyDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	detail, err := uc.properties.GetProperty(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load property", err, nil)
		return nil, err
	}

	if detail.Latitude != nil && detail.Longitude != nil {
		detail.Geohash = geohash.EncodeWithPrecision(*detail.Latitude, *detail.Longitude, GeohashPrecision)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return detail, nil
}
