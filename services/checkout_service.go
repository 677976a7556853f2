package services

import (
	"context"
	"errors"
	"photomagnet_server/lib"
	"photomagnet_server/pricing"
	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// CheckoutService exposes the storefront's pricing and runs the server-side
// tail of checkout: verify the payment, then record the order.
type CheckoutService struct {
	logger       *gecho.Logger
	payments     PaymentGateway
	orderService *OrderService
}

func NewCheckoutService(logger *gecho.Logger, payments PaymentGateway, orderService *OrderService) *CheckoutService {
	return &CheckoutService{
		logger:       logger,
		payments:     payments,
		orderService: orderService,
	}
}

func (cs *CheckoutService) Products() []pricing.Product {
	return pricing.Products()
}

func (cs *CheckoutService) ValidateCoupon(req *structs.ValidateCouponRequest) pricing.CouponResult {
	return pricing.ValidateCoupon(req.Code, req.UsedCoupons)
}

// Quote prices the cart carried by the request
func (cs *CheckoutService) Quote(req *structs.QuoteRequest) (*pricing.Quote, error) {
	var cart pricing.Cart
	for _, item := range req.Items {
		product, ok := pricing.ProductByID(item.ProductId)
		if !ok {
			return nil, lib.Validationf("unknown product %q", item.ProductId)
		}
		if err := cart.Add(product, item.Quantity); err != nil {
			return nil, lib.Validationf("%s", err.Error())
		}
	}

	quote := pricing.QuoteCart(&cart, req.State, req.CouponCode, req.UsedCoupons)
	return &quote, nil
}

// Complete verifies the gateway order and records the shop order. Stock and
// notifications keep the best-effort behavior of OrderService.Create.
func (cs *CheckoutService) Complete(ctx context.Context, req *structs.CompleteCheckoutRequest) (*tables.Order, error) {
	if !pricing.IsServiceableState(req.Order.State) {
		return nil, lib.Validationf("we currently deliver only to %s", serviceableList())
	}

	verification, err := cs.payments.VerifyPayment(ctx, req.GatewayOrderId)
	if err != nil {
		return nil, err
	}
	if !verification.IsValid {
		cs.logger.Warn("Checkout attempted with an unpaid gateway order",
			gecho.Field("gateway_order_id", req.GatewayOrderId),
			gecho.Field("order_status", verification.OrderStatus),
		)
		return nil, ErrPaymentNotVerified
	}

	paymentId := req.PaymentId
	if paymentId == "" {
		paymentId = req.GatewayOrderId
	}

	order, err := cs.orderService.Create(ctx, &structs.CreateOrderRequest{
		OrderDetails: req.Order,
		PaymentId:    paymentId,
	})
	if err != nil {
		if errors.Is(err, lib.ErrValidation) {
			cs.logger.Error("Paid checkout rejected by order validation",
				gecho.Field("gateway_order_id", req.GatewayOrderId),
				gecho.Field("error", err),
			)
		}
		return nil, err
	}

	return order, nil
}
