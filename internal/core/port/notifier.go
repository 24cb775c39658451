package port

import "context"

const (
	EventLeadUpdated      = "lead_updated"
	EventLeadReverted     = "lead_reverted"
	EventDashboardUpdated = "dashboard_updated"
	EventSessionEnded     = "session_ended"
)

// UserEvent - событие для всех открытых вкладок пользователя.
type UserEvent struct {
	Type   string
	UserID string
	Data   interface{}
}

type NotifierPort interface {
	Notify(ctx context.Context, event UserEvent)
}
