package telemetry

import "time"

// ErrorResponse is the JSON body returned for every request the
// listener rejects. The shape stays stable across endpoints so
// clients can handle failures uniformly.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}
