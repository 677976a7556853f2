package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"photomagnet_server/lib"
	"photomagnet_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

const (
	cashfreeProductionURL = "https://api.cashfree.com/pg"
	cashfreeSandboxURL    = "https://sandbox.cashfree.com/pg"

	GatewayOrderPrefix = "ORDER"
	MockOrderPrefix    = "MOCK_ORDER"

	// PaymentCredentialsHint accompanies gateway failures shown to the shopper
	PaymentCredentialsHint = "Please check your Cashfree credentials"

	// MsgPaymentNotConfigured is shown when the gateway credentials are missing
	MsgPaymentNotConfigured = "Payment gateway not configured. Please contact support."

	cashfreeStatusPaid = "PAID"
)

var (
	ErrPaymentNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentNotVerified   = errors.New("payment not verified")
	ErrMockModeDisabled     = fmt.Errorf("%w: mock payments are disabled", lib.ErrForbidden)
)

// UpstreamError is a non-2xx answer from the payment gateway
type UpstreamError struct {
	Status  int
	Message string
	Body    map[string]any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payment gateway responded %d: %s", e.Status, e.Message)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, req *structs.CreatePaymentRequest) (*structs.PaymentOrder, error)
	CreateMockOrder(ctx context.Context, req *structs.CreatePaymentRequest) (*structs.PaymentOrder, error)
	VerifyPayment(ctx context.Context, orderId string) (*structs.PaymentVerification, error)
}

// PaymentService talks to the Cashfree PG REST API
type PaymentService struct {
	logger     *gecho.Logger
	cfg        *structs.PaymentConfig
	production bool
	baseURL    string
	httpClient *http.Client
}

type cashfreeCustomer struct {
	CustomerId    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type cashfreeOrderRequest struct {
	OrderId         string           `json:"order_id"`
	OrderAmount     float64          `json:"order_amount"`
	OrderCurrency   string           `json:"order_currency"`
	CustomerDetails cashfreeCustomer `json:"customer_details"`
	OrderMeta       struct {
		ReturnURL string `json:"return_url"`
	} `json:"order_meta"`
}

type cashfreeOrderResponse struct {
	OrderId          string `json:"order_id"`
	PaymentSessionId string `json:"payment_session_id"`
	OrderToken       string `json:"order_token"`
	OrderStatus      string `json:"order_status"`
}

func NewPaymentService(logger *gecho.Logger, cfg *structs.Config) *PaymentService {
	baseURL := cashfreeSandboxURL
	if cfg.Payment.Env == "production" {
		baseURL = cashfreeProductionURL
	}

	return &PaymentService{
		logger:     logger,
		cfg:        cfg.Payment,
		production: cfg.Server.IsProduction(),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Payment.Timeout},
	}
}

func (ps *PaymentService) configured() bool {
	return ps.cfg.AppID != "" && ps.cfg.SecretKey != ""
}

func (ps *PaymentService) mockEnabled() bool {
	return ps.cfg.MockMode && !ps.production
}

// CreateOrder registers a gateway order for amount and returns the session
// the storefront hands to the hosted checkout.
func (ps *PaymentService) CreateOrder(ctx context.Context, req *structs.CreatePaymentRequest) (*structs.PaymentOrder, error) {
	if !ps.configured() {
		ps.logger.Error("Missing Cashfree credentials in configuration")
		return nil, ErrPaymentNotConfigured
	}

	now := time.Now()
	email := req.CustomerEmail
	if email == "" {
		email = req.CustomerPhone + "@magnets.com"
	}

	body := cashfreeOrderRequest{
		OrderId:       lib.GenerateGatewayOrderId(GatewayOrderPrefix, now),
		OrderAmount:   req.Amount,
		OrderCurrency: "INR",
		CustomerDetails: cashfreeCustomer{
			CustomerId:    lib.GenerateGatewayOrderId("CUST", now),
			CustomerName:  req.CustomerName,
			CustomerEmail: email,
			CustomerPhone: req.CustomerPhone,
		},
	}
	body.OrderMeta.ReturnURL = ps.cfg.ReturnURL

	ps.logger.Info("Creating payment order",
		gecho.Field("order_id", body.OrderId),
		gecho.Field("amount", req.Amount),
	)

	var resp cashfreeOrderResponse
	if err := ps.do(ctx, http.MethodPost, "/orders", body, &resp, nil); err != nil {
		return nil, err
	}

	return &structs.PaymentOrder{
		OrderId:          resp.OrderId,
		PaymentSessionId: resp.PaymentSessionId,
		OrderToken:       resp.OrderToken,
	}, nil
}

// CreateMockOrder simulates the gateway for test checkouts outside production
func (ps *PaymentService) CreateMockOrder(_ context.Context, req *structs.CreatePaymentRequest) (*structs.PaymentOrder, error) {
	if !ps.mockEnabled() {
		return nil, ErrMockModeDisabled
	}

	now := time.Now()
	token, err := lib.RandomToken(24)
	if err != nil {
		return nil, fmt.Errorf("generate mock session: %w", err)
	}

	ps.logger.Info("Creating mock payment order", gecho.Field("amount", req.Amount))

	return &structs.PaymentOrder{
		OrderId:          lib.GenerateGatewayOrderId(MockOrderPrefix, now),
		PaymentSessionId: "mock_session_" + token,
		OrderToken:       lib.GenerateGatewayOrderId("mock_token", now),
		IsMockMode:       true,
	}, nil
}

// VerifyPayment re-reads the gateway order and reports whether it is paid
func (ps *PaymentService) VerifyPayment(ctx context.Context, orderId string) (*structs.PaymentVerification, error) {
	if strings.HasPrefix(orderId, MockOrderPrefix+"_") && ps.mockEnabled() {
		return &structs.PaymentVerification{
			IsValid:     true,
			OrderStatus: cashfreeStatusPaid,
			Status:      "SUCCESS",
			PaymentDetails: map[string]any{
				"order_id":     orderId,
				"order_status": cashfreeStatusPaid,
				"mock":         true,
			},
		}, nil
	}

	if !ps.configured() {
		return nil, ErrPaymentNotConfigured
	}

	details := map[string]any{}
	if err := ps.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderId), nil, nil, &details); err != nil {
		return nil, err
	}

	orderStatus, _ := details["order_status"].(string)
	verification := &structs.PaymentVerification{
		IsValid:        orderStatus == cashfreeStatusPaid,
		OrderStatus:    orderStatus,
		Status:         "FAILED",
		PaymentDetails: details,
	}
	if verification.IsValid {
		verification.Status = "SUCCESS"
	}

	return verification, nil
}

// do sends a request to the gateway. The decoded body goes to out, or to raw
// when the caller wants the whole document.
func (ps *PaymentService) do(ctx context.Context, method, path string, in, out any, raw *map[string]any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode gateway request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, ps.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", ps.cfg.AppID)
	req.Header.Set("x-client-secret", ps.cfg.SecretKey)
	req.Header.Set("x-api-version", ps.cfg.APIVersion)

	resp, err := ps.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstream := &UpstreamError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if json.Unmarshal(body, &upstream.Body) == nil {
			if msg, ok := upstream.Body["message"].(string); ok && msg != "" {
				upstream.Message = msg
			}
		}
		ps.logger.Error("Payment gateway request failed",
			gecho.Field("path", path),
			gecho.Field("status", resp.StatusCode),
			gecho.Field("message", upstream.Message),
		)
		return upstream
	}

	if raw != nil {
		if err := json.Unmarshal(body, raw); err != nil {
			return fmt.Errorf("decode gateway response: %w", err)
		}
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode gateway response: %w", err)
		}
	}
	return nil
}
