package health

import (
	"photomagnet_server/services"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthRoutesManager serves liveness, storage and integration checks at the root,
// outside the /api prefix so load balancers can reach them without rate limiting.
type HealthRoutesManager struct {
	healthService *services.HealthService
}

func NewHealthRoutesManager(healthService *services.HealthService) *HealthRoutesManager {
	return &HealthRoutesManager{
		healthService: healthService,
	}
}

func (hrm *HealthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/health", func(r chi.Router) {
		r.Get("/server", hrm.GetServerHealth)
		r.Get("/database", hrm.GetDatabaseHealth)
		r.Get("/integrations", hrm.GetIntegrations)
	})

	r.Handle("/metrics", promhttp.Handler())
}
