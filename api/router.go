package api

import (
	"net/http"
	"photomagnet_server/api/middleware"
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App(cfg *structs.Config, logger *gecho.Logger, sm *services.ServiceManager) chi.Router {
	r := chi.NewRouter()

	logLevel := gecho.ParseLogLevel("debug")
	if cfg.Server.IsProduction() {
		logLevel = gecho.ParseLogLevel("info")
	}
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))

	mw := middleware.NewMiddleware(cfg, mwLogger, sm.CacheService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(mw.RealIP())
	r.Use(chiware.Recoverer)

	// Limits & security
	maxBody := cfg.Server.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 10 << 20
	}
	r.Use(mw.BodyLimit(maxBody))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(mw.RequestLogger())
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before auth)
	r.Use(mw.SetupCORS().Handler)
	r.Use(mw.RateLimitMiddleware())

	NewRouterManager(logger, cfg, sm, mw).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the "+cfg.Server.AppName+" API"),
			gecho.Send(),
		)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
