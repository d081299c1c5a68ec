package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "todoist-export/internal/auth/delivery/http"
	exportHTTP "todoist-export/internal/export/delivery/http"
	"todoist-export/internal/middleware"
	"todoist-export/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	authHandler   authHTTP.Handler
	exportHandler exportHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	AuthHandler   authHTTP.Handler
	ExportHandler exportHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		authHandler:   cfg.AuthHandler,
		exportHandler: cfg.ExportHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	if srv.exportHandler == nil {
		return errors.New("export handler is required")
	}
	return nil
}
