package http

import (
	"github.com/gin-gonic/gin"

	"todoist-export/internal/auth"
	"todoist-export/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          auth.UseCase
	environment string
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, environment string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		environment: environment,
	}
}
