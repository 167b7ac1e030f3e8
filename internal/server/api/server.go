// Package api is the HTTP JSON surface of the dashboard backend. Routes,
// middleware and the CORS policy are wired explicitly in NewServer.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/scholarshipops/scholarshipops/internal/logging"
)

const (
	serviceName    = "ScholarshipOps API"
	serviceVersion = "0.1.0"
)

// Options controls the listener and cross-cutting HTTP behaviour.
type Options struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CORS            CORSPolicy
}

// Services bundles the domain services the handlers call.
type Services struct {
	Leads        LeadService
	Applications ApplicationService
	Criteria     CriteriaService
	Stats        StatsService
	Triggers     TriggerService
}

type Server struct {
	opts   Options
	router chi.Router
	logger logging.Logger

	leads        LeadService
	applications ApplicationService
	criteria     CriteriaService
	stats        StatsService
	triggers     TriggerService
}

func NewServer(opts Options, l logging.Logger, svc Services) *Server {
	s := &Server{
		opts:         opts,
		router:       chi.NewRouter(),
		logger:       l.With("module", "http_server"),
		leads:        svc.Leads,
		applications: svc.Applications,
		criteria:     svc.Criteria,
		stats:        svc.Stats,
		triggers:     svc.Triggers,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      s,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	return nil
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.opts.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return s.opts.ShutdownTimeout
}
