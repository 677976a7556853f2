package auth

import (
	"photomagnet_server/api/middleware"
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
	cfg         *structs.Config
	mw          *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
		cfg:         cfg,
		mw:          mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.With(arm.mw.StrictRateLimitMiddleware(arm.cfg.RateLimit.AuthLimit, arm.cfg.RateLimit.AuthWindow)).
			Post("/login", arm.HandleLogin)
		r.Post("/setup", arm.HandleSetup)
	})
	r.Post("/reset-stock", arm.HandleResetStock)
}
