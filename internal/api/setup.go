package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codementor/codebert-server/internal/inference"
	"github.com/codementor/codebert-server/internal/logger"
	"github.com/codementor/codebert-server/internal/metrics"
	"github.com/codementor/codebert-server/internal/tracer"
)

// Server serves the embedding API. It holds no request state of its own;
// all model state lives in the injected engine.
type Server struct {
	cfg     Config
	log     *logger.Logger
	metrics metrics.MetricsCollector
	tracer  *tracer.Tracer
	engine  inference.Embedder

	http *http.Server
}

// NewServer builds the router and the HTTP server around it. The listener
// is not bound here; that happens in Start so construction stays free of
// side effects.
func NewServer(
	cfg Config,
	log *logger.Logger,
	collector metrics.MetricsCollector,
	trc *tracer.Tracer,
	engine inference.Embedder,
) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		log:     log,
		metrics: collector,
		tracer:  trc,
		engine:  engine,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.traceRequests(), s.measureRequests())

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.POST("/embed", s.handleEmbed)
	router.POST("/embed/batch", s.handleEmbedBatch)

	s.http = &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	return s, nil
}

// Handler returns the HTTP handler, for in-process tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Start binds the listener and begins serving in the background. Binding
// happens here rather than in the goroutine so that an occupied port fails
// application start instead of surfacing as a log line later.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("api: bind %s: %w", s.http.Addr, err)
	}

	s.log.Info("api server listening", nil, map[string]interface{}{
		"address": s.http.Addr,
	})

	go func() {
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("api server terminated", err)
		}
	}()

	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
