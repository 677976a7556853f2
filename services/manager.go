package services

import (
	"photomagnet_server/database"
	"photomagnet_server/repository"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService         *AuthService
	EmailService        *EmailService
	SmsService          *SmsService
	NotificationService *NotificationService
	CacheService        *CacheService
	HealthService       *HealthService
	StockService        *StockService
	OrderService        *OrderService
	PaymentService      *PaymentService
	CheckoutService     *CheckoutService
	Events              EventPublisher
}

// NewServiceManager wires every service. db may be nil when repos are in memory.
func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB, repos *repository.Repositories, events EventPublisher) *ServiceManager {
	stockService := NewStockService(logger, repos.Stock)
	authService := NewAuthService(cfg, logger, repos.Admins, stockService)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	smsService := NewSmsService(logger, cfg)
	notificationService := NewNotificationService(logger, cfg, emailService, smsService)
	healthService := NewHealthService(logger, cfg, db)
	orderService := NewOrderService(logger, cfg, repos.Orders, stockService, notificationService, events)
	paymentService := NewPaymentService(logger, cfg)
	checkoutService := NewCheckoutService(logger, paymentService, orderService)

	return &ServiceManager{
		AuthService:         authService,
		EmailService:        emailService,
		SmsService:          smsService,
		NotificationService: notificationService,
		CacheService:        cacheService,
		HealthService:       healthService,
		StockService:        stockService,
		OrderService:        orderService,
		PaymentService:      paymentService,
		CheckoutService:     checkoutService,
		Events:              events,
	}
}
