package debug

import (
	"photomagnet_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type DebugRoutesManager struct {
	logger       *gecho.Logger
	cacheService *services.CacheService
	production   bool
}

func NewDebugRoutesManager(logger *gecho.Logger, cacheService *services.CacheService, production bool) *DebugRoutesManager {
	return &DebugRoutesManager{
		logger:       logger,
		cacheService: cacheService,
		production:   production,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes - only in non-production environments
	if drm.production {
		return
	}

	r.Route("/debug", func(r chi.Router) {
		r.Get("/cache", drm.CacheStats)
		r.Get("/ratelimit", drm.RateLimitStatus)
		r.Post("/ratelimit/clear", drm.ClearRateLimits)
	})
}
