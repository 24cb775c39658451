package domain

import "time"

type LeadStatus string

const (
	LeadStatusPendingVerification LeadStatus = "PENDING_VERIFICATION"
	LeadStatusVerified            LeadStatus = "VERIFIED"
	LeadStatusAssigned            LeadStatus = "ASSIGNED"
	LeadStatusPaid                LeadStatus = "PAID"
	LeadStatusLost                LeadStatus = "LOST"
)

// AllLeadStatuses - порядок объявления, используется для вывода вариантов выбора.
var AllLeadStatuses = []LeadStatus{
	LeadStatusPendingVerification,
	LeadStatusVerified,
	LeadStatusAssigned,
	LeadStatusPaid,
	LeadStatusLost,
}

// Lead - запрос покупателя/арендатора по объекту.
type Lead struct {
	ID              int64
	PropertyID      int64
	InquirerName    string
	InquirerEmail   string
	InquirerPhone   string
	Message         string
	Status          LeadStatus
	AssignedAgentID *int64
	CreatedAt       time.Time
}

type LeadType string

const (
	LeadTypeViewing  LeadType = "viewing"
	LeadTypeInquiry  LeadType = "inquiry"
	LeadTypeCallback LeadType = "callback"
)

type LeadUrgency string

const (
	LeadUrgencyLow    LeadUrgency = "low"
	LeadUrgencyMedium LeadUrgency = "medium"
	LeadUrgencyHigh   LeadUrgency = "high"
)

// LeadSubmission - данные формы захвата лида.
type LeadSubmission struct {
	PropertyID           string
	Name                 string      `validate:"required"`
	Email                string      `validate:"required,email"`
	Phone                string      `validate:"required"`
	Message              string
	LeadType             LeadType    `validate:"omitempty,oneof=viewing inquiry callback"`
	PreferredContactTime string
	Urgency              LeadUrgency `validate:"omitempty,oneof=low medium high"`
}

// WithDefaults подставляет значения формы по умолчанию.
func (s LeadSubmission) WithDefaults() LeadSubmission {
	if s.LeadType == "" {
		s.LeadType = LeadTypeInquiry
	}
	if s.Urgency == "" {
		s.Urgency = LeadUrgencyMedium
	}
	return s
}

// LeadStatusChange - запрос на изменение статуса, уходящий в удаленный API.
type LeadStatusChange struct {
	LeadID              int64
	Status              LeadStatus
	VerificationDetails string
	AgentID             int64
}

// LeadTransitionRecord - запись журнала переходов.
type LeadTransitionRecord struct {
	LeadID     int64
	FromStatus LeadStatus
	ToStatus   LeadStatus
	ActorID    string
	Reverted   bool
	Reason     string
	OccurredAt time.Time
}

// LeadStatusChangedEvent публикуется после подтвержденного перехода.
type LeadStatusChangedEvent struct {
	LeadID     int64      `json:"leadId"`
	PropertyID int64      `json:"propertyId"`
	FromStatus LeadStatus `json:"fromStatus"`
	ToStatus   LeadStatus `json:"toStatus"`
	ActorID    string     `json:"actorId"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// LeadSubmittedEvent публикуется после успешной отправки формы.
type LeadSubmittedEvent struct {
	LeadID      int64     `json:"leadId"`
	PropertyID  string    `json:"propertyId"`
	LeadType    LeadType  `json:"leadType"`
	Urgency     string    `json:"urgency"`
	SubmittedAt time.Time `json:"submittedAt"`
}
