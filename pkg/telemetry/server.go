package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/kamilkobak/kkdash/pkg/errors"
	"github.com/kamilkobak/kkdash/pkg/logging"
)

// Server is the operational HTTP listener running alongside the
// collector. It exposes liveness, readiness, and Prometheus metrics
// endpoints; it never serves the snapshot document itself.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter

	mu        sync.RWMutex
	ready     bool
	startedAt time.Time
}

// NewServer builds a Server from the given config. A nil config uses
// the defaults from NewConfig.
func NewServer(config *Config) *Server {
	if config == nil {
		config = NewConfig()
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
		startedAt:   time.Now(),
	}
	s.httpServer = &http.Server{
		Addr:              config.Addr,
		Handler:           s.routes(),
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
		ErrorLog:          logging.NewLogLogger(slog.LevelWarn, false),
	}
	return s
}

// Start runs the listener until ctx is cancelled or the listener
// fails. A bind or serve failure is returned to the caller; the
// daemon treats it as fatal rather than running without its
// operational surface.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("telemetry listener starting", slog.String("addr", s.config.Addr))

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return apperrors.Wrap(apperrors.ErrCodeInternal, "telemetry listener failed", err)
	}
}

// Shutdown drains in-flight requests and stops the listener, bounded
// by the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("telemetry listener stopping")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "telemetry listener shutdown failed", err)
	}
	return nil
}

// SetReady flips the state reported by the readiness probe. The
// daemon calls this with true after the first successful snapshot
// publish.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Ready reports whether the readiness probe currently passes.
func (s *Server) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Server) uptimeSeconds() int64 {
	return int64(time.Since(s.startedAt).Seconds())
}
