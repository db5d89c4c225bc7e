package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"trackcatalog/internal/catalog"
	"trackcatalog/internal/config"
	"trackcatalog/internal/logging"
)

// Server owns the HTTP listener for the catalog routes.
type Server struct {
	bind            string
	logger          *slog.Logger
	srv             *http.Server
	shutdownTimeout time.Duration

	mu       sync.Mutex
	listener net.Listener
	stopped  bool
}

// New builds a server for cfg that answers requests with svc.
func New(cfg *config.Config, svc *catalog.Service, logger *slog.Logger) *Server {
	logger = logging.NewComponentLogger(logger, "server")
	handler := NewRouter(svc, logger, cfg.Server.CORSOrigins, cfg.AllowAllOrigins())
	return &Server{
		bind:   cfg.Server.Bind,
		logger: logger,
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
			WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		shutdownTimeout: time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second,
	}
}

// Start binds the listener and serves in the background until ctx is done or
// Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return errors.New("server already started")
	}

	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.bind, err)
	}
	s.listener = listener

	go func() {
		if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("http server listening",
		logging.String("address", listener.Addr().String()),
		logging.String(logging.FieldEventType, "server_started"),
	)
	return nil
}

// Stop gracefully shuts down the server. It is safe to call more than once.
func (s *Server) Stop() {
	s.mu.Lock()
	listener := s.listener
	if listener == nil || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Warn("http server shutdown error",
			logging.Error(err),
			logging.String(logging.FieldEventType, "server_shutdown_failed"),
			logging.String(logging.FieldErrorHint, "in-flight requests were cut off"),
		)
	}
	_ = listener.Close()
}

// Addr returns the bound address, or the configured bind before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.bind
}

// NewRouter wires the catalog routes onto a Gin engine. When allowAll is
// false only the listed origins pass CORS.
func NewRouter(svc *catalog.Service, logger *slog.Logger, origins []string, allowAll bool) *gin.Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	router := gin.New()
	router.Use(
		requestID(),
		accessLog(logger),
		recovery(logger),
		corsMiddleware(origins, allowAll),
	)

	h := &handlers{svc: svc, logger: logger}
	router.GET("/", h.root)
	router.GET("/ping", h.ping)
	router.POST("/add-track", h.addTrack)
	router.GET("/tracks", h.listTracks)
	router.GET("/tracks/search/:query", h.searchTracks)
	router.GET("/tracks/:id", h.getTrack)
	router.DELETE("/tracks/:id", h.deleteTrack)
	router.GET("/genres", h.genres)
	router.GET("/artists", h.artists)
	router.NoRoute(h.notFound)
	return router
}
