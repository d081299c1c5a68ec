package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"

	"todoist-export/internal/auth"
	pkgLog "todoist-export/pkg/log"
)

// maxPendingStates bounds the state cache so abandoned login attempts
// cannot grow it without limit.
const maxPendingStates = 4096

type implUseCase struct {
	l      pkgLog.Logger
	oauth  *oauth2.Config
	states *expirable.LRU[string, auth.PendingExport]
}

var _ auth.UseCase = &implUseCase{}

// New creates a new auth UseCase instance. stateTTL is how long a login
// attempt may sit at the authorization server before its state expires.
func New(l pkgLog.Logger, oauthCfg *oauth2.Config, stateTTL time.Duration) *implUseCase {
	return &implUseCase{
		l:      l,
		oauth:  oauthCfg,
		states: expirable.NewLRU[string, auth.PendingExport](maxPendingStates, nil, stateTTL),
	}
}
