package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/contracts"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type CreatePropertyUseCase struct {
	properties port.PropertyAPIPort
	payloads   port.PayloadValidatorPort
}

func NewCreatePropertyUseCase(properties port.PropertyAPIPort, payloads port.PayloadValidatorPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{properties: properties, payloads: payloads}
}

// Execute создает объявление. Лимит тарифа проверяется рекомендательно по
// последнему снимку кабинета, окончательно его проверяет бэкенд.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, session domain.Session, input domain.PropertyInput) (*domain.PropertyDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"user_id":  session.User.ID,
	})

	ucLogger.Info("Use case started", nil)

	if session.Dashboard != nil && domain.EvaluateGate(*session.Dashboard).ListingsAtLimit {
		ucLogger.Warn("Listing limit reached for current tier", nil)
		return nil, domain.ErrListingLimitReached
	}

	if err := checkListing(uc.payloads, contracts.PropertyListingPayload, input); err != nil {
		ucLogger.Warn("Listing payload is invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	detail, err := uc.properties.CreateProperty(ctx, session.Token, input)
	if err != nil {
		ucLogger.Error("Remote create failed", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": detail.ID})
	return detail, nil
}

type UpdatePropertyUseCase struct {
	properties port.PropertyAPIPort
	payloads   port.PayloadValidatorPort
}

func NewUpdatePropertyUseCase(properties port.PropertyAPIPort, payloads port.PayloadValidatorPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{properties: properties, payloads: payloads}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, session domain.Session, id string, input domain.PropertyInput) (*domain.PropertyDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if err := checkListing(uc.payloads, contracts.PropertyListingPayload, input); err != nil {
		ucLogger.Warn("Listing payload is invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	detail, err := uc.properties.UpdateProperty(ctx, session.Token, id, input)
	if err != nil {
		ucLogger.Error("Remote update failed", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return detail, nil
}

type DeletePropertyUseCase struct {
	properties port.PropertyAPIPort
}

func NewDeletePropertyUseCase(properties port.PropertyAPIPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, session domain.Session, id string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.properties.DeleteProperty(ctx, session.Token, id); err != nil {
		ucLogger.Error("Remote delete failed", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

// checkListing - сначала правила формы, затем JSON-схема тела запроса.
func checkListing(payloads port.PayloadValidatorPort, schema string, input interface{}) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if payloads == nil {
		return nil
	}
	if err := payloads.Validate(schema, input); err != nil {
		return &domain.ValidationError{Fields: map[string]string{"payload": err.Error()}}
	}
	return nil
}
