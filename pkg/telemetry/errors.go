package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/kamilkobak/kkdash/pkg/errors"
	"github.com/kamilkobak/kkdash/pkg/publisher"
)

// writeError sends a structured JSON error response. The request ID
// comes from the request context when the middleware chain populated
// it; otherwise a fresh one is generated so every error response is
// traceable.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int, code apperrors.ErrorCode, message string, retryable bool, details map[string]any) {
	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	publisher.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// writeMethodNotAllowed rejects a request whose method does not match
// the endpoint. Every endpoint on this listener is read-only.
func (s *Server) writeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	s.writeError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		fmt.Sprintf("method %s is not allowed, use GET", r.Method), false, nil)
}
