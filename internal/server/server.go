// Package server exposes the dashboard over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Houeta/shelf-watch/internal/render"
	"github.com/Houeta/shelf-watch/internal/services/loader"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server serves the dashboard page and its view-model.
type Server struct {
	log        *slog.Logger
	router     *gin.Engine
	httpServer *http.Server
	loader     loader.Interface
	renderer   *render.Renderer
}

// New creates the server and registers its routes.
func New(log *slog.Logger, addr, mode string, ldr loader.Interface, renderer *render.Renderer) *Server {
	gin.SetMode(mode)

	router := gin.New()
	router.Use(requestLogger(log))
	router.Use(gin.Recovery())

	srv := &Server{
		log:      log,
		router:   router,
		loader:   ldr,
		renderer: renderer,
	}
	srv.registerRoutes()

	srv.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second, //nolint:mnd // same as write timeout
		WriteTimeout:      15 * time.Second, //nolint:mnd // covers a full document load
		IdleTimeout:       60 * time.Second, //nolint:mnd // keep-alive window
	}

	return srv
}

// Handler returns the HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start launches the listener in a goroutine.
func (s *Server) Start() {
	s.log.Info("HTTP server is starting...", "addr", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("HTTP server failed", "error", err)
		}
	}()
}

// Stop gracefully shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("HTTP server is stopping...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	return nil
}

// registerRoutes configures all routes.
func (s *Server) registerRoutes() {
	s.router.GET("/", s.index)
	s.router.GET("/static/style.css", s.stylesheet)
	s.router.GET("/healthz", s.health)

	api := s.router.Group("/api")
	{
		api.GET("/dashboard", s.dashboard)
		api.GET("/sites/:key", s.site)
	}
}

// requestLogger logs one line per request.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.InfoContext(c.Request.Context(), "HTTP request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"latency", time.Since(start),
			"error", c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}
