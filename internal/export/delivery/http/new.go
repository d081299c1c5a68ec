package http

import (
	"github.com/gin-gonic/gin"

	"todoist-export/internal/export"
	"todoist-export/pkg/log"
)

// Handler is the public interface for the export HTTP delivery layer.
type Handler interface {
	Home(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          export.UseCase
	environment string
}

// New creates a new HTTP handler for the export domain.
func New(l log.Logger, uc export.UseCase, environment string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		environment: environment,
	}
}
