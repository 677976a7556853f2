package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (drm *DebugRoutesManager) CacheStats(w http.ResponseWriter, r *http.Request) {
	if err := drm.cacheService.Ping(r.Context()); err != nil {
		drm.logger.Warn("Redis ping failed", gecho.Field("error", err))
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("Cache unavailable"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(drm.cacheService.GetConnectionStats()),
		gecho.Send(),
	)
}

// RateLimitStatus reports the counter for ?ip=&endpoint=
func (drm *DebugRoutesManager) RateLimitStatus(w http.ResponseWriter, r *http.Request) {
	ip := r.URL.Query().Get("ip")
	endpoint := r.URL.Query().Get("endpoint")
	if ip == "" || endpoint == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("ip and endpoint are required"),
			gecho.Send(),
		)
		return
	}

	status, err := drm.cacheService.GetRateLimitStatus(r.Context(), ip, endpoint)
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to read rate limit"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}

func (drm *DebugRoutesManager) ClearRateLimits(w http.ResponseWriter, r *http.Request) {
	deleted, err := drm.cacheService.DeletePattern(r.Context(), "ratelimit:*")
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to clear rate limits"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Rate limits cleared"),
		gecho.WithData(map[string]int{"deleted": deleted}),
		gecho.Send(),
	)
}
