package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"photomagnet_server/repository"
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:      "PhotoMagnet",
			Environment:  "development",
			PublicURL:    "https://api.example.com",
			FrontendURL:  "https://shop.example.com",
			MaxBodyBytes: 1 << 20,
		},
		Cors: &structs.CorsConfig{
			AllowOrigins: []string{"https://shop.example.com"},
			AllowMethods: []string{"GET", "POST", "PUT"},
			AllowHeaders: []string{"Content-Type", "Authorization"},
		},
		Database: &structs.DatabaseConfig{Driver: "memory"},
		Auth: &structs.AuthConfig{
			AccessTokenSecret: "api-test-secret",
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
			Env:        "sandbox",
			APIVersion: "2023-08-01",
			Timeout:    time.Second,
		},
		Email:     &structs.EmailConfig{},
		Sms:       &structs.SmsConfig{Timeout: time.Second},
		Cache:     &structs.CacheConfig{Address: "localhost:6379"},
		RateLimit: &structs.RateLimitConfig{Enabled: false},
		Events:    &structs.EventsConfig{OrderTopic: "photomagnet.orders"},
	}
}

type testApp struct {
	handler http.Handler
	sm      *services.ServiceManager
	repos   *repository.Repositories
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := testConfig()
	logger := gecho.NewDefaultLogger()
	repos := repository.NewMemory()
	sm := services.NewServiceManager(logger, cfg, nil, repos, services.NoopPublisher{})
	t.Cleanup(func() { _ = sm.CacheService.Close() })

	return &testApp{
		handler: App(cfg, logger, sm),
		sm:      sm,
		repos:   repos,
	}
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

// findValue returns the first value stored under key anywhere in the JSON document
func findValue(t *testing.T, w *httptest.ResponseRecorder, key string) any {
	t.Helper()

	var doc any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), w.Body.String())

	var walk func(v any) (any, bool)
	walk = func(v any) (any, bool) {
		switch node := v.(type) {
		case map[string]any:
			if val, ok := node[key]; ok {
				return val, true
			}
			for _, child := range node {
				if val, ok := walk(child); ok {
					return val, true
				}
			}
		case []any:
			for _, child := range node {
				if val, ok := walk(child); ok {
					return val, true
				}
			}
		}
		return nil, false
	}

	val, _ := walk(doc)
	return val
}

func (a *testApp) setupAndLogin(t *testing.T) string {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/auth/setup", map[string]string{"setupKey": "SETUP_ADMIN_2024"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "correct horse",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := findValue(t, w, "token").(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func orderBody(coupon string) map[string]any {
	return map[string]any{
		"customerName":    "Ravi Kumar",
		"whatsapp":        "9876543210",
		"email":           "ravi@example.com",
		"address":         "12 Lake View Road",
		"pincode":         "500001",
		"state":           "Telangana",
		"productType":     "rectangle",
		"orientation":     "portrait",
		"withStand":       false,
		"quantity":        2,
		"pricePerUnit":    200,
		"totalPrice":      400,
		"deliveryCharge":  0,
		"couponApplied":   coupon,
		"croppedImageUrl": "https://cdn.example.com/photo.jpg",
		"paymentId":       "pay_123",
	}
}

func TestSetupRejectsWrongKey(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/auth/setup", map[string]string{"setupKey": "nope"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid setup key")

	w = app.do(t, http.MethodPost, "/api/reset-stock", map[string]string{"resetKey": "nope"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginWrongPasswordIssuesNoToken(t *testing.T) {
	app := newTestApp(t)
	app.setupAndLogin(t)

	w := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Nil(t, findValue(t, w, "token"))
}

func TestStockRoutes(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/stock", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := app.setupAndLogin(t)

	w = app.do(t, http.MethodGet, "/api/stock", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rectangle")
	assert.Contains(t, w.Body.String(), "square")

	w = app.do(t, http.MethodPut, "/api/stock", map[string]any{"productType": "square", "quantity": -1}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Quantity cannot be negative")

	w = app.do(t, http.MethodPut, "/api/stock", map[string]any{"productType": "square", "withStand": true, "quantity": 5}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPut, "/api/stock", map[string]any{"productType": "square", "quantity": 42}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(42), findValue(t, w, "quantity"))
}

func TestOrderLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := app.setupAndLogin(t)

	w := app.do(t, http.MethodPost, "/api/orders/create", orderBody("sir123"), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	app.sm.OrderService.Wait()

	orderId, ok := findValue(t, w, "orderId").(string)
	require.True(t, ok)
	assert.Equal(t, float64(200), findValue(t, w, "discount"))
	assert.Equal(t, float64(200), findValue(t, w, "finalAmount"))

	w = app.do(t, http.MethodGet, "/api/stock", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	stock, err := app.repos.Stock.List(t.Context())
	require.NoError(t, err)
	for _, row := range stock {
		if row.StockKey == "rectangle:no-stand" {
			assert.Equal(t, 98, row.Quantity)
		}
	}

	w = app.do(t, http.MethodGet, "/api/confirm-order", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Order ID is required")

	w = app.do(t, http.MethodGet, "/api/confirm-order?orderId=PMC0", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")

	for range 2 {
		w = app.do(t, http.MethodGet, "/api/confirm-order?orderId="+orderId, nil, "")
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://shop.example.com/admin/dashboard?confirmed="+orderId, w.Header().Get("Location"))
	}

	w = app.do(t, http.MethodGet, "/api/orders?status=confirmed", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orderId)
	assert.Equal(t, float64(1), findValue(t, w, "total"))

	w = app.do(t, http.MethodGet, "/api/orders?status=bogus", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodGet, "/api/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	app := newTestApp(t)

	body := orderBody("")
	body["state"] = "Kerala"
	w := app.do(t, http.MethodPost, "/api/orders/create", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Telangana and Andhra Pradesh")

	body = orderBody("SIR123")
	w = app.do(t, http.MethodPost, "/api/orders/create", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = orderBody("")
	delete(body, "customerName")
	w = app.do(t, http.MethodPost, "/api/orders/create", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "customerName")
}

func TestCatalogAndCoupons(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "square-no-stand")

	w = app.do(t, http.MethodPost, "/api/coupons/validate", map[string]any{"code": "sir123"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, findValue(t, w, "isValid"))

	w = app.do(t, http.MethodPost, "/api/coupons/validate", map[string]any{"code": "sir123", "usedCoupons": []string{"sir123"}}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Coupon is already used")

	w = app.do(t, http.MethodPost, "/api/checkout/quote", map[string]any{
		"items":      []map[string]any{{"productId": "rectangle-without-stand", "quantity": 2}},
		"state":      "Andhra Pradesh",
		"couponCode": "sir123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(200), findValue(t, w, "finalAmount"))
}

func TestPaymentRoutesWithoutCredentials(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/cashfree/create-order", map[string]any{
		"amount":        398,
		"customerName":  "Ravi Kumar",
		"customerPhone": "9876543210",
	}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgPaymentNotConfigured)

	w = app.do(t, http.MethodPost, "/api/cashfree/mock-order", map[string]any{
		"amount":        398,
		"customerName":  "Ravi Kumar",
		"customerPhone": "9876543210",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPost, "/api/cashfree/verify-payment", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotifyAdminWithoutSenders(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/notify-admin", map[string]any{
		"order": map[string]any{"orderId": "PMC1", "customerName": "Ravi", "whatsapp": "9876543210"},
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, false, findValue(t, w, "emailSent"))
	assert.Equal(t, false, findValue(t, w, "smsSent"))

	w = app.do(t, http.MethodPost, "/api/notify-admin", map[string]any{"order": map[string]any{}}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/health/server", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/health/database", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "memory", findValue(t, w, "driver"))

	w = app.do(t, http.MethodGet, "/health/integrations", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "disabled", findValue(t, w, "payments"))

	w = app.do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "photomagnet_http_requests_total")
	assert.Contains(t, w.Body.String(), `path="/health/server"`)
	assert.Contains(t, w.Body.String(), "photomagnet_orders_created_total")

	w = app.do(t, http.MethodGet, "/does-not-exist", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
