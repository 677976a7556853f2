package products

import (
	"photomagnet_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger          *gecho.Logger
	checkoutService *services.CheckoutService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	checkoutService *services.CheckoutService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:          logger,
		checkoutService: checkoutService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.FetchProducts)
	r.Post("/coupons/validate", prm.ValidateCoupon)
}
