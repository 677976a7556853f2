package repository

import (
	"context"
	"fmt"
	"photomagnet_server/database"
	"photomagnet_server/lib"
	"photomagnet_server/structs/tables"
	"time"
)

type OrderPGRepository struct {
	db *database.DB
}

func NewOrderPGRepository(db *database.DB) *OrderPGRepository {
	return &OrderPGRepository{db: db}
}

func (r *OrderPGRepository) Create(ctx context.Context, order *tables.Order) (*tables.Order, error) {
	created, err := database.Query[tables.Order](r.db).Insert(ctx, order)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}

func (r *OrderPGRepository) FindByOrderId(ctx context.Context, orderId string) (*tables.Order, error) {
	order, err := database.Query[tables.Order](r.db).Where("order_id", orderId).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

func (r *OrderPGRepository) List(ctx context.Context, status tables.OrderStatus, limit, skip int) ([]tables.Order, int, error) {
	countQuery := database.Query[tables.Order](r.db)
	pageQuery := database.Query[tables.Order](r.db).
		OrderBy("created_at", database.DESC).
		Limit(limit).
		Offset(skip)
	if status != "" {
		countQuery = countQuery.Where("order_status", status)
		pageQuery = pageQuery.Where("order_status", status)
	}

	total, err := countQuery.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	orders, err := pageQuery.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

// Update never writes admin_notification_sent; MarkAdminNotified owns it.
func (r *OrderPGRepository) Update(ctx context.Context, order *tables.Order) error {
	order.UpdatedAt = time.Now()

	updated, err := database.Query[tables.Order](r.db).
		Where("order_id", order.OrderId).
		Update(ctx, map[string]any{
			"order_status":               order.OrderStatus,
			"payment_status":             order.PaymentStatus,
			"customer_confirmation_sent": order.CustomerConfirmationSent,
			"updated_at":                 order.UpdatedAt,
		})
	if err != nil {
		return lib.MapPgError(err)
	}
	if updated == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (r *OrderPGRepository) MarkAdminNotified(ctx context.Context, orderId string) error {
	updated, err := database.Query[tables.Order](r.db).
		Where("order_id", orderId).
		Update(ctx, map[string]any{
			"admin_notification_sent": true,
			"updated_at":              time.Now(),
		})
	if err != nil {
		return lib.MapPgError(err)
	}
	if updated == 0 {
		return lib.ErrNotFound
	}
	return nil
}
