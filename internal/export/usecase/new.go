package usecase

import (
	"todoist-export/internal/export"
	pkgLog "todoist-export/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	client export.SyncClient
}

var _ export.UseCase = &implUseCase{}

// New creates a new export UseCase instance.
func New(l pkgLog.Logger, client export.SyncClient) *implUseCase {
	return &implUseCase{
		l:      l,
		client: client,
	}
}
