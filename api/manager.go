package api

import (
	"photomagnet_server/api/admin"
	"photomagnet_server/api/auth"
	"photomagnet_server/api/checkout"
	"photomagnet_server/api/debug"
	"photomagnet_server/api/health"
	"photomagnet_server/api/middleware"
	"photomagnet_server/api/orders"
	"photomagnet_server/api/payments"
	"photomagnet_server/api/products"
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes  *products.ProductRoutesManager
	healthRoutes   *health.HealthRoutesManager
	authRoutes     *auth.AuthRoutesManager
	adminRoutes    *admin.AdminRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	paymentRoutes  *payments.PaymentRoutesManager
	checkoutRoutes *checkout.CheckoutRoutesManager
	debugRoutes    *debug.DebugRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		productRoutes:  products.NewProductRoutesManager(logger, sm.CheckoutService),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
		authRoutes:     auth.NewAuthRoutesManager(logger, sm.AuthService, cfg, mw),
		adminRoutes:    admin.NewAdminRoutesManager(logger, cfg, sm.OrderService, sm.StockService, mw),
		orderRoutes:    orders.NewOrderRoutesManager(logger, cfg, sm.OrderService, sm.NotificationService),
		paymentRoutes:  payments.NewPaymentRoutesManager(logger, cfg, sm.PaymentService),
		checkoutRoutes: checkout.NewCheckoutRoutesManager(logger, cfg, sm.CheckoutService),
		debugRoutes:    debug.NewDebugRoutesManager(logger, sm.CacheService, cfg.Server.IsProduction()),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)

	r.Route("/api", func(r chi.Router) {
		rm.productRoutes.RegisterRoutes(r)
		rm.authRoutes.RegisterRoutes(r)
		rm.adminRoutes.RegisterRoutes(r)
		rm.orderRoutes.RegisterRoutes(r)
		rm.paymentRoutes.RegisterRoutes(r)
		rm.checkoutRoutes.RegisterRoutes(r)
	})
}
