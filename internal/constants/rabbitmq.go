package constants

const (
	ExchangeName = "propertyhub_exchange"
	ExchangeType = "direct"
)

// Ключи маршрутизации
const (
	RoutingKeyLeadStatusChanged = "lead.status_changed"
	RoutingKeyLeadSubmitted     = "lead.submitted"
)

const (
	// HeaderTraceID - trace_id запроса, в котором событие возникло
	HeaderTraceID = "x-trace-id"
	// HeaderOriginInstance - экземпляр BFF, опубликовавший событие
	HeaderOriginInstance = "x-origin-instance"
)

const ConsumerTagLeadEvents = "propertyhub-web-lead-events"
