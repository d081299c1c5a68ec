package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"todoist-export/pkg/log"
)

// maxTrackedClients bounds the per-IP limiter table; idle clients also
// age out after limiterTTL, so the table cannot grow with the number of
// distinct IPs that ever hit the service.
const (
	maxTrackedClients = 4096
	limiterTTL        = 10 * time.Minute
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l               log.Logger
	rateLimitPerMin int
	limiters        *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
		limiters:        expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
	}
}
