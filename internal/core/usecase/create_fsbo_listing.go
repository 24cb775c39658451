package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/contracts"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type CreateFSBOListingUseCase struct {
	properties port.PropertyAPIPort
	billing    port.BillingAPIPort
	payloads   port.PayloadValidatorPort
}

func NewCreateFSBOListingUseCase(properties port.PropertyAPIPort, billing port.BillingAPIPort, payloads port.PayloadValidatorPort) *CreateFSBOListingUseCase {
	return &CreateFSBOListingUseCase{properties: properties, billing: billing, payloads: payloads}
}

// Execute публикует объявление собственника и сразу открывает оплату сбора.
// Если оплату запустить не удалось, объявление остается, а ошибка возвращается.
func (uc *CreateFSBOListingUseCase) Execute(ctx context.Context, session domain.Session, input domain.FSBOListingInput, returnURLs domain.CheckoutRequest) (*domain.PropertyDetail, *domain.CheckoutSession, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateFSBOListing",
		"user_id":  session.User.ID,
	})

	ucLogger.Info("Use case started", nil)

	if err := checkListing(uc.payloads, contracts.FsboListingPayload, input); err != nil {
		ucLogger.Warn("FSBO payload is invalid", port.Fields{"error": err.Error()})
		return nil, nil, err
	}

	detail, err := uc.properties.CreateFSBOListing(ctx, session.Token, input)
	if err != nil {
		ucLogger.Error("Remote FSBO create failed", err, nil)
		return nil, nil, err
	}

	checkout, err := uc.billing.InitiateCheckout(ctx, session.Token, domain.CheckoutRequest{
		PaymentType: domain.PaymentTypeFSBOListingFee,
		ItemID:      detail.ID,
		SuccessURL:  returnURLs.SuccessURL,
		CancelURL:   returnURLs.CancelURL,
	})
	if err != nil {
		ucLogger.Error("Failed to initiate FSBO fee checkout", err, port.Fields{"property_id": detail.ID})
		return detail, nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": detail.ID})
	return detail, checkout, nil
}
