package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"photomagnet_server/repository"
	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/mock"
)

func testConfig() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:     "PhotoMagnet",
			Environment: "development",
			PublicURL:   "https://api.example.com",
			FrontendURL: "https://shop.example.com",
		},
		Auth: &structs.AuthConfig{
			AccessTokenSecret: "test-secret",
			AccessTokenExpiry: 7 * 24 * time.Hour,
		},
		Setup: &structs.SetupConfig{
			AdminEmail:    "admin@example.com",
			AdminPassword: "correct horse",
			SetupKey:      "SETUP_ADMIN_2024",
			ResetStockKey: "RESET_STOCK_2024",
			DefaultStock:  100,
		},
		Payment: &structs.PaymentConfig{
			AppID:      "app-id",
			SecretKey:  "secret",
			Env:        "sandbox",
			APIVersion: "2023-08-01",
			ReturnURL:  "https://shop.example.com/payment-success?order_id={order_id}",
			Timeout:    5 * time.Second,
		},
		Email: &structs.EmailConfig{
			From:         "Photo Magnet <orders@example.com>",
			AdminAddress: "owner@example.com",
			SupportEmail: "support@example.com",
		},
		Sms: &structs.SmsConfig{
			Sender:      "PhotoMagnet",
			AdminNumber: "+910000000000",
			Timeout:     5 * time.Second,
		},
		Events: &structs.EventsConfig{OrderTopic: "photomagnet.orders"},
	}
}

func testLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyAdmin(ctx context.Context, order *tables.Order) (structs.NotificationResult, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(structs.NotificationResult), args.Error(1)
}

func (m *mockNotifier) NotifyCustomerConfirmed(ctx context.Context, order *tables.Order) (structs.NotificationResult, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(structs.NotificationResult), args.Error(1)
}

type recordedEvent struct {
	Type    string
	OrderId string
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, order *tables.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: eventType, OrderId: order.OrderId})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type orderFixture struct {
	repos    *repository.Repositories
	stock    *StockService
	orders   *OrderService
	notifier *mockNotifier
	events   *recordingPublisher
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	logger := testLogger()
	repos := repository.NewMemory()
	stock := NewStockService(logger, repos.Stock)
	notifier := &mockNotifier{}
	events := &recordingPublisher{}

	return &orderFixture{
		repos:    repos,
		stock:    stock,
		orders:   NewOrderService(logger, testConfig(), repos.Orders, stock, notifier, events),
		notifier: notifier,
		events:   events,
	}
}

func boolPtr(b bool) *bool { return &b }

func rectangleOrder() *structs.CreateOrderRequest {
	return &structs.CreateOrderRequest{
		OrderDetails: structs.OrderDetails{
			CustomerName:    "Ravi Kumar",
			Whatsapp:        "9876543210",
			Email:           "ravi@example.com",
			Address:         "12 Lake View Road",
			Pincode:         "500001",
			State:           "Telangana",
			ProductType:     tables.ProductTypeRectangle,
			Orientation:     tables.OrientationPortrait,
			WithStand:       boolPtr(false),
			Quantity:        2,
			PricePerUnit:    200,
			TotalPrice:      400,
			DeliveryCharge:  0,
			CroppedImageUrl: "https://cdn.example.com/photo.jpg",
		},
		PaymentId: "pay_123",
	}
}
