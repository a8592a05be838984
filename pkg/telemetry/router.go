package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/kamilkobak/kkdash/pkg/errors"
	"github.com/kamilkobak/kkdash/pkg/publisher"
)

// routes builds the request mux. The liveness and readiness probes
// stay outside the middleware chain so an orchestrator is never rate
// limited away from them; everything else gets the full chain.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/metrics", s.withMiddleware(promhttp.Handler().ServeHTTP))
	mux.HandleFunc("/", s.withMiddleware(s.handleIndex))
	return mux
}

// handleIndex describes the service at the root path and returns a
// structured 404 for anything unmatched.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
			fmt.Sprintf("no resource at %s", r.URL.Path), false, nil)
		return
	}
	if r.Method != http.MethodGet {
		s.writeMethodNotAllowed(w, r)
		return
	}

	publisher.RespondJSON(w, http.StatusOK, map[string]any{
		"name":      s.config.Name,
		"version":   s.config.Version,
		"ready":     s.Ready(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": []string{"/healthz", "/readyz", "/metrics"},
	})
}
