package checkout

import (
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CheckoutRoutesManager struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	checkoutService *services.CheckoutService
}

func NewCheckoutRoutesManager(logger *gecho.Logger, cfg *structs.Config, checkoutService *services.CheckoutService) *CheckoutRoutesManager {
	return &CheckoutRoutesManager{
		logger:          logger,
		cfg:             cfg,
		checkoutService: checkoutService,
	}
}

func (crm *CheckoutRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/checkout", func(r chi.Router) {
		r.Post("/quote", crm.Quote)
		r.Post("/complete", crm.Complete)
	})
}
