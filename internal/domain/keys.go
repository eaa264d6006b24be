package domain

type contextKey string

// Request-scoped values the delivery layer stores on the context so
// lower layers can attach them to audit events.
const (
	KeyClientIP  contextKey = "clientIP"
	KeyUserAgent contextKey = "userAgent"
	KeyRequestID contextKey = "requestID"
)
