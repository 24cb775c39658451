package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type ListPartnersUseCase struct {
	partners port.PartnerAPIPort
}

func NewListPartnersUseCase(partners port.PartnerAPIPort) *ListPartnersUseCase {
	return &ListPartnersUseCase{partners: partners}
}

func (uc *ListPartnersUseCase) Execute(ctx context.Context) ([]domain.ServicePartner, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListPartners"})

	ucLogger.Info("Use case started", nil)

	partners, err := uc.partners.GetServicePartners(ctx)
	if err != nil {
		ucLogger.Error("Failed to load service partners", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"partners": len(partners)})
	return partners, nil
}

type ReferToPartnerUseCase struct {
	partners port.PartnerAPIPort
}

func NewReferToPartnerUseCase(partners port.PartnerAPIPort) *ReferToPartnerUseCase {
	return &ReferToPartnerUseCase{partners: partners}
}

func (uc *ReferToPartnerUseCase) Execute(ctx context.Context, session domain.Session, partnerID, referredUserID int64) (*domain.ReferralTransaction, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":         "ReferToPartner",
		"partner_id":       partnerID,
		"referred_user_id": referredUserID,
	})

	ucLogger.Info("Use case started", nil)

	referral, err := uc.partners.InitiateReferral(ctx, session.Token, partnerID, referredUserID)
	if err != nil {
		ucLogger.Error("Referral failed", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"referral_id": referral.ID})
	return referral, nil
}
