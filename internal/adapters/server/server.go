package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikey/llm-reply-writer/internal/config"
	"github.com/mikey/llm-reply-writer/internal/core"
	"github.com/mikey/llm-reply-writer/internal/origins"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// GeneratePath is the route replies are requested on
const GeneratePath = "/api/email/generate"

// HTTPServer exposes the reply generator over HTTP
type HTTPServer struct {
	service *core.ReplyService
	logger  *zap.Logger
	cfg     config.ServerConfig
	engine  *gin.Engine
	server  *http.Server
	addr    string
}

// NewHTTPServer creates a new HTTP frontend and registers its routes
func NewHTTPServer(
	service *core.ReplyService,
	policy *origins.Policy,
	logger *zap.Logger,
	cfg config.ServerConfig,
) *HTTPServer {
	return &HTTPServer{
		service: service,
		logger:  logger,
		cfg:     cfg,
		engine:  NewRouter(service, policy, logger, cfg.MetricsEnabled),
	}
}

// NewRouter builds the gin engine serving the reply API
func NewRouter(generator core.ReplyGenerator, policy *origins.Policy, logger *zap.Logger, metricsEnabled bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(AccessLogMiddleware(logger))
	r.Use(CORSMiddleware(policy))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if metricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	emailHandler := NewEmailHandler(generator, logger)
	r.POST(GeneratePath, emailHandler.Generate)
	r.OPTIONS(GeneratePath, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return r
}

// Handler returns the underlying HTTP handler
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Addr returns the bound address once the server has started
func (s *HTTPServer) Addr() string {
	return s.addr
}

// Start binds the listen address and serves in the background
func (s *HTTPServer) Start() error {
	listener, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.ListenAddress, err)
	}

	s.addr = listener.Addr().String()
	s.server = &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.logger.Info("HTTP server starting", zap.String("address", s.addr))

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts the server down, waiting up to the shutdown timeout
func (s *HTTPServer) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

// HandleRequest generates a reply without going through HTTP
func (s *HTTPServer) HandleRequest(ctx context.Context, req *core.EmailRequest) (string, error) {
	return s.service.GenerateReply(ctx, req)
}
