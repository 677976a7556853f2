package admin

import (
	"photomagnet_server/api/middleware"
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	orderService *services.OrderService
	stockService *services.StockService
	mw           *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	orderService *services.OrderService,
	stockService *services.StockService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:       logger,
		cfg:          cfg,
		orderService: orderService,
		stockService: stockService,
		mw:           mw,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(ar.mw.AdminAuthMiddleware)

		r.Get("/orders", ar.ListOrders)
		r.Get("/stock", ar.ListStock)
		r.Put("/stock", ar.UpdateStock)
	})
}
