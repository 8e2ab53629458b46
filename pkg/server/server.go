package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/vmini"
	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/datafile"
	"github.com/vango-dev/vmini/pkg/dom"
)

// Config holds server settings.
type Config struct {
	// Address is the listen address.
	// Default: ":8080".
	Address string

	// Title is the page title.
	// Default: "vmini".
	Title string

	// Gatherer backs GET /metrics.
	// If nil, prometheus.DefaultGatherer is used.
	Gatherer prometheus.Gatherer

	// Logger is the structured logger for the server.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// ReadHeaderTimeout bounds how long reading request headers may take.
	// Default: 5s.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10s.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Address:           ":8080",
		Title:             "vmini",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Gatherer == nil {
		c.Gatherer = prometheus.DefaultGatherer
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}

// Server serves one mounted instance to browsers.
type Server struct {
	// mu serializes every call into the instance, and every broadcast,
	// so clients observe trees in the order they were produced.
	mu   sync.Mutex
	inst *vmini.Instance
	root *dom.Node

	hub        *hub
	router     chi.Router
	config     Config
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a server for inst, which must already be mounted under root.
func New(inst *vmini.Instance, root *dom.Node, config Config) (*Server, error) {
	if inst.State() != vmini.StateMounted {
		return nil, errors.New("E003").WithDetail("the server needs a mounted instance")
	}
	if root == nil {
		return nil, errors.New("E011").WithDetail("nil root element")
	}

	config = config.withDefaults()
	s := &Server{
		inst:   inst,
		root:   root,
		hub:    newHub(),
		config: config,
		logger: config.Logger,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/state", s.handleState)
	r.Post("/set/{key}", s.handleSet)
	r.Post("/dispatch/{id}/{event}", s.handleDispatch)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTML returns the current rendered tree.
func (s *Server) HTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root.InnerHTML()
}

// Clients returns the number of connected WebSocket clients.
func (s *Server) Clients() int {
	return s.hub.count()
}

// Apply writes values into the store and pushes the result to clients.
func (s *Server) Apply(values map[string]any) (datafile.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := datafile.Apply(s.inst.Store(), values)
	if err != nil {
		s.logger.Error("apply data failed", "error", err)
		s.hub.broadcast(Message{Type: MessageError, Error: err.Error()})
	}
	if len(res.Changed) > 0 {
		s.push()
	}
	return res, err
}

// push broadcasts the current tree. Callers hold s.mu.
func (s *Server) push() {
	s.hub.broadcast(Message{Type: MessageHTML, HTML: s.root.InnerHTML()})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes WebSocket clients and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.hub.close()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
