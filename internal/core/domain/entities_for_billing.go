package domain

type PaymentType string

const (
	PaymentTypeSubscriptionFee PaymentType = "SUBSCRIPTION_FEE"
	PaymentTypeLeadCharge      PaymentType = "LEAD_CHARGE"
	PaymentTypeFSBOListingFee  PaymentType = "FSBO_LISTING_FEE"
	PaymentTypeReferralPayout  PaymentType = "REFERRAL_PAYOUT"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentSuccess  PaymentStatus = "SUCCESS"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentBilled   PaymentStatus = "BILLED"
	PaymentNA       PaymentStatus = "NA"
)

type CheckoutRequest struct {
	PaymentType PaymentType
	ItemID      string
	Amount      float64
	SuccessURL  string
	CancelURL   string
}

type CheckoutSession struct {
	SessionID  string
	PaymentURL string
}

// PaymentConfirmation - итог страницы успешной оплаты.
type PaymentConfirmation struct {
	SessionID string
	Dashboard *Dashboard
	Leads     []Lead
}
