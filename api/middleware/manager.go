package middleware

import (
	"context"
	"net/http"
	"net/netip"
	"photomagnet_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// RateLimiter counts requests per client and endpoint within a window
type RateLimiter interface {
	IncrementRateLimit(ctx context.Context, ip, endpoint string, ttl time.Duration) (int, error)
}

type Middleware struct {
	cfg         *structs.Config
	logger      *gecho.Logger
	tokenSecret string
	rateLimiter RateLimiter

	trustedProxies []netip.Prefix
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, rateLimiter RateLimiter) *Middleware {
	return &Middleware{
		cfg:         cfg,
		logger:      logger,
		tokenSecret: cfg.Auth.AccessTokenSecret,
		rateLimiter: rateLimiter,

		trustedProxies: parseTrustedProxies(cfg.Server.TrustedProxies, logger),
	}
}

// RequestLogger logs every request through the shared gecho logger
func (mw *Middleware) RequestLogger() func(http.Handler) http.Handler {
	return gecho.Handlers.CreateLoggingMiddleware(mw.logger)
}
