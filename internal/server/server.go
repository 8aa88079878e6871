package server

import (
	"context"
	"net/http"
	"time"

	"github.com/MichaelHallik/python-docstring-generator/internal/config"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ServerConfig holds HTTP server hardening limits.
type ServerConfig struct {
	ReadHeaderTimeout time.Duration // Slowloris prevention
	ReadTimeout       time.Duration // Body read limit
	WriteTimeout      time.Duration // Response timeout
	IdleTimeout       time.Duration // Keep-alive timeout
	MaxHeaderBytes    int           // Header size limit
	MaxBodyBytes      int64         // Request body size limit
	ShutdownTimeout   time.Duration // Drain window on stop
}

// DefaultServerConfig returns the limits used when none are given.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
		MaxBodyBytes:      1 << 20,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server exposes the docstring formatter over HTTP.
type Server struct {
	cfg    *config.Config
	limits *ServerConfig
	logger *zap.Logger
	router *mux.Router
}

// New builds a server with all routes registered.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		limits: DefaultServerConfig(),
		logger: logger,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.requestID, s.accessLog)
	s.router.HandleFunc("/api/v1/docstring", s.handleGenerate).Methods(http.MethodPost)
	s.router.HandleFunc("/api/v1/styles", s.handleStyles).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
}

// Handler returns the root handler. Tests drive it directly.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.limits.ReadHeaderTimeout,
		ReadTimeout:       s.limits.ReadTimeout,
		WriteTimeout:      s.limits.WriteTimeout,
		IdleTimeout:       s.limits.IdleTimeout,
		MaxHeaderBytes:    s.limits.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info("server listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.limits.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
