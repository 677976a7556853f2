package services

import (
	"context"
	"fmt"
	"photomagnet_server/lib"
	"photomagnet_server/pricing"
	"photomagnet_server/repository"
	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

const (
	DefaultOrderListLimit = 50
	notifyAdminTimeout    = 30 * time.Second
)

// OrderNotifier is the notification surface the order workflow depends on
type OrderNotifier interface {
	NotifyAdmin(ctx context.Context, order *tables.Order) (structs.NotificationResult, error)
	NotifyCustomerConfirmed(ctx context.Context, order *tables.Order) (structs.NotificationResult, error)
}

type OrderService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	orders       repository.OrderRepository
	stockService *StockService
	notifier     OrderNotifier
	events       EventPublisher

	// in-flight admin notifications
	pending sync.WaitGroup
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	orders repository.OrderRepository,
	stockService *StockService,
	notifier OrderNotifier,
	events EventPublisher,
) *OrderService {
	return &OrderService{
		logger:       logger,
		cfg:          cfg,
		orders:       orders,
		stockService: stockService,
		notifier:     notifier,
		events:       events,
	}
}

// Create records a paid order. The stock decrement, the order.created event
// and the admin notification follow the insert and never fail the call.
func (os *OrderService) Create(ctx context.Context, req *structs.CreateOrderRequest) (*tables.Order, error) {
	d := &req.OrderDetails
	if err := validateOrderDetails(d); err != nil {
		return nil, err
	}

	discount := 0
	if d.CouponApplied != "" {
		coupon := pricing.ValidateCoupon(d.CouponApplied, nil)
		if !coupon.Valid {
			return nil, lib.Validationf("%s", coupon.Message)
		}
		discount = pricing.CalculateDiscount(d.TotalPrice, coupon.Discount)
	}

	now := time.Now()
	order := &tables.Order{
		Id:              uuid.New(),
		OrderId:         lib.GenerateOrderId(now),
		CustomerName:    d.CustomerName,
		Whatsapp:        d.Whatsapp,
		Email:           d.Email,
		Address:         d.Address,
		Pincode:         d.Pincode,
		State:           d.State,
		ProductType:     d.ProductType,
		Orientation:     d.Orientation,
		WithStand:       d.WithStand,
		Quantity:        d.Quantity,
		PricePerUnit:    d.PricePerUnit,
		TotalPrice:      d.TotalPrice,
		DeliveryCharge:  d.DeliveryCharge,
		CouponApplied:   d.CouponApplied,
		Discount:        discount,
		FinalAmount:     d.TotalPrice + d.DeliveryCharge - discount,
		CroppedImageUrl: d.CroppedImageUrl,
		PaymentId:       req.PaymentId,
		PaymentStatus:   tables.PaymentStatusSuccess,
		OrderStatus:     tables.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := os.orders.Create(ctx, order)
	if err != nil {
		os.logger.Error("Failed to insert order", gecho.Field("error", err), gecho.Field("order_id", order.OrderId))
		return nil, err
	}
	OrdersCreated.Inc()

	os.logger.Info("Order created",
		gecho.Field("order_id", created.OrderId),
		gecho.Field("product", created.ProductLabel()),
		gecho.Field("quantity", created.Quantity),
		gecho.Field("final_amount", created.FinalAmount),
	)

	if err := os.stockService.Decrement(ctx, created.ProductType, created.WithStand, created.Quantity); err != nil {
		os.logger.Error("Failed to decrement stock for order",
			gecho.Field("error", err),
			gecho.Field("order_id", created.OrderId),
		)
	}

	os.publish(ctx, structs.EventOrderCreated, created)
	os.notifyAdminAsync(ctx, *created)

	return created, nil
}

func (os *OrderService) notifyAdminAsync(ctx context.Context, order tables.Order) {
	os.pending.Add(1)
	go func() {
		defer os.pending.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyAdminTimeout)
		defer cancel()

		result, err := os.notifier.NotifyAdmin(ctx, &order)
		if err != nil {
			os.logger.Error("Admin notification failed", gecho.Field("error", err), gecho.Field("order_id", order.OrderId))
		}
		if !result.Any() {
			return
		}

		if err := os.orders.MarkAdminNotified(ctx, order.OrderId); err != nil {
			os.logger.Error("Failed to flag admin notification", gecho.Field("error", err), gecho.Field("order_id", order.OrderId))
		}
	}()
}

// Wait blocks until every admin notification started by Create has finished
func (os *OrderService) Wait() {
	os.pending.Wait()
}

// List returns a page of orders, newest first. Status "all" or empty
// disables the status filter.
func (os *OrderService) List(ctx context.Context, opts structs.OrderListOptions) (*structs.OrderListResult, error) {
	if opts.Status == "all" {
		opts.Status = ""
	}
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, lib.Validationf("unknown order status %q", opts.Status)
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultOrderListLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}

	orders, total, err := os.orders.List(ctx, opts.Status, opts.Limit, opts.Skip)
	if err != nil {
		os.logger.Error("Failed to list orders", gecho.Field("error", err))
		return nil, err
	}

	return &structs.OrderListResult{
		Orders: orders,
		Pagination: structs.Pagination{
			Total:   total,
			Limit:   opts.Limit,
			Skip:    opts.Skip,
			HasMore: opts.Skip+opts.Limit < total,
		},
	}, nil
}

func (os *OrderService) Get(ctx context.Context, orderId string) (*tables.Order, error) {
	if orderId == "" {
		return nil, lib.Validationf("Order ID is required")
	}
	return os.orders.FindByOrderId(ctx, orderId)
}

// Confirm marks the order confirmed and notifies the customer. Repeated
// calls notify the customer again.
func (os *OrderService) Confirm(ctx context.Context, orderId string) (*tables.Order, error) {
	order, err := os.Get(ctx, orderId)
	if err != nil {
		return nil, err
	}

	order.OrderStatus = tables.OrderStatusConfirmed
	order.CustomerConfirmationSent = true
	if err := os.orders.Update(ctx, order); err != nil {
		os.logger.Error("Failed to confirm order", gecho.Field("error", err), gecho.Field("order_id", orderId))
		return nil, err
	}
	OrdersConfirmed.Inc()

	if _, err := os.notifier.NotifyCustomerConfirmed(ctx, order); err != nil {
		os.logger.Error("Customer confirmation failed", gecho.Field("error", err), gecho.Field("order_id", orderId))
	}

	os.publish(ctx, structs.EventOrderConfirmed, order)

	os.logger.Info("Order confirmed", gecho.Field("order_id", orderId))
	return order, nil
}

func (os *OrderService) publish(ctx context.Context, eventType string, order *tables.Order) {
	if err := os.events.Publish(ctx, eventType, order); err != nil {
		os.logger.Warn("Failed to publish order event",
			gecho.Field("error", err),
			gecho.Field("event_type", eventType),
			gecho.Field("order_id", order.OrderId),
		)
	}
}

func validateOrderDetails(d *structs.OrderDetails) error {
	if d.Quantity < 1 {
		return lib.Validationf("quantity must be at least 1")
	}
	if err := validateStand(d.ProductType, d.WithStand); err != nil {
		return err
	}
	if d.Orientation != "" && d.ProductType != tables.ProductTypeRectangle {
		return lib.Validationf("orientation only applies to rectangle magnets")
	}
	if !pricing.IsServiceableState(d.State) {
		return lib.Validationf("we currently deliver only to %s", serviceableList())
	}
	return nil
}

func serviceableList() string {
	states := pricing.ServiceableStates()
	switch len(states) {
	case 0:
		return ""
	case 1:
		return states[0]
	}
	list := states[0]
	for _, s := range states[1 : len(states)-1] {
		list += ", " + s
	}
	return fmt.Sprintf("%s and %s", list, states[len(states)-1])
}
