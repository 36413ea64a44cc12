// Package httpapi is the network entry point. It adapts HTTP requests onto
// the transport-agnostic account service: the guard middleware turns a
// bearer token into a verified claim, handlers pass that claim explicitly
// into the service, and service errors are mapped onto status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkarpovs/accountd/internal/accounts"
	"github.com/mkarpovs/accountd/internal/auth"
	"github.com/mkarpovs/accountd/internal/logging"
)

type Server struct {
	addr    string
	logger  logging.Logger
	service *accounts.Service
	codec   *auth.Codec
	engine  *gin.Engine
}

func NewServer(addr string, logger logging.Logger, service *accounts.Service, codec *auth.Codec) *Server {
	s := &Server{
		addr:    addr,
		logger:  logger.With("module", "httpapi"),
		service: service,
		codec:   codec,
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	// open operations: this is how a token is first obtained
	authGroup := s.engine.Group("/auth")
	authGroup.POST("/register", s.handleRegister)
	authGroup.POST("/login", s.handleLogin)

	// everything below requires a verified claim
	api := s.engine.Group("/api")
	api.Use(s.authGuard())
	api.GET("/me", s.handleMe)

	users := api.Group("/users")
	users.POST("", s.handleCreate)
	users.GET("", s.handleList)
	users.PUT("", s.handleUpdate)
	users.DELETE("/:id", s.handleDelete)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
