package orders

import (
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger              *gecho.Logger
	cfg                 *structs.Config
	orderService        *services.OrderService
	notificationService *services.NotificationService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	orderService *services.OrderService,
	notificationService *services.NotificationService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:              logger,
		cfg:                 cfg,
		orderService:        orderService,
		notificationService: notificationService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/orders/create", orm.CreateOrder)
	r.Get("/confirm-order", orm.ConfirmOrder)
	r.Post("/notify-admin", orm.NotifyAdmin)
}
