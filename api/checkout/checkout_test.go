package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unpaidGateway struct{}

func (unpaidGateway) CreateOrder(context.Context, *structs.CreatePaymentRequest) (*structs.PaymentOrder, error) {
	return nil, services.ErrPaymentNotConfigured
}

func (unpaidGateway) CreateMockOrder(context.Context, *structs.CreatePaymentRequest) (*structs.PaymentOrder, error) {
	return nil, services.ErrMockModeDisabled
}

func (unpaidGateway) VerifyPayment(context.Context, string) (*structs.PaymentVerification, error) {
	return &structs.PaymentVerification{IsValid: false, OrderStatus: "ACTIVE"}, nil
}

func TestCompleteUnverifiedPaymentPointsToSupport(t *testing.T) {
	logger := gecho.NewDefaultLogger()
	cfg := &structs.Config{Server: &structs.ServerConfig{Environment: "development"}}
	crm := NewCheckoutRoutesManager(logger, cfg, services.NewCheckoutService(logger, unpaidGateway{}, nil))

	r := chi.NewRouter()
	crm.RegisterRoutes(r)

	payload, err := json.Marshal(map[string]any{
		"gatewayOrderId": "ORDER_1",
		"order": map[string]any{
			"customerName":    "Ravi Kumar",
			"whatsapp":        "9876543210",
			"address":         "12 Lake View Road",
			"pincode":         "500001",
			"state":           "Telangana",
			"productType":     "rectangle",
			"quantity":        2,
			"pricePerUnit":    200,
			"totalPrice":      400,
			"croppedImageUrl": "https://cdn.example.com/photo.jpg",
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/checkout/complete", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Payment verification failed. Please contact support.", body.Message)
}
