package constants

const (
	SessionCookieName = "propertyhub_session"
	ClientCookieName  = "propertyhub_client"
)

const HeaderTraceIDHTTP = "X-Trace-ID"
