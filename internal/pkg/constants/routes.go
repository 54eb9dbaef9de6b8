package constants

// Route constants
const (
	PublicRoute        = "/"
	HealthRoute        = "/healthz"
	MetricsRoute       = "/metrics"
	CounterWidgetRoute = "/widget/counter"
	DateWidgetRoute    = "/widget/date"
	APIRoute           = "/api"
	APIV1Route         = "/v1"
	APICounterRoute    = "/counter"
	APIVisitRoute      = "/counter/visit"
	DocsBasePath       = "/docs/api/"
)
