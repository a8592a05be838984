package telemetry

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// contextKeyRequestID carries the request ID through the request context.
	contextKeyRequestID contextKey = "requestID"
	// contextKeyAPIVersion carries the negotiated API version through the request context.
	contextKeyAPIVersion contextKey = "apiVersion"
)
