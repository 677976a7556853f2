package payments

import (
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PaymentRoutesManager struct {
	logger   *gecho.Logger
	cfg      *structs.Config
	payments services.PaymentGateway
}

func NewPaymentRoutesManager(logger *gecho.Logger, cfg *structs.Config, payments services.PaymentGateway) *PaymentRoutesManager {
	return &PaymentRoutesManager{
		logger:   logger,
		cfg:      cfg,
		payments: payments,
	}
}

func (prm *PaymentRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cashfree", func(r chi.Router) {
		r.Post("/create-order", prm.CreateOrder)
		r.Post("/verify-payment", prm.VerifyPayment)
		r.Post("/mock-order", prm.CreateMockOrder)
	})
}
