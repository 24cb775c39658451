package domain

import "time"

type ReferralStatus string

const (
	ReferralInitiated ReferralStatus = "INITIATED"
	ReferralContacted ReferralStatus = "CONTACTED"
	ReferralConverted ReferralStatus = "CONVERTED"
	ReferralPaid      ReferralStatus = "PAID"
)

type ServicePartner struct {
	ID          int64
	Name        string
	ServiceType string
	Description string
	ContactInfo string
	Active      bool
}

type ReferralTransaction struct {
	ID              int64
	PartnerID       int64
	ReferringUserID int64
	ReferredUserID  int64
	Status          ReferralStatus
	ReferralFee     float64
	CreatedAt       time.Time
}
