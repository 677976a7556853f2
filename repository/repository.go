// Package repository holds the persistence ports for orders, stock and
// admins, with a bun/Postgres implementation and an in-memory one.
package repository

import (
	"context"
	"photomagnet_server/database"
	"photomagnet_server/structs/tables"
)

type OrderRepository interface {
	Create(ctx context.Context, order *tables.Order) (*tables.Order, error)
	// FindByOrderId returns lib.ErrNotFound when no order carries orderId.
	FindByOrderId(ctx context.Context, orderId string) (*tables.Order, error)
	// List returns one page of orders, newest first, and the total matching
	// count. An empty status matches every order.
	List(ctx context.Context, status tables.OrderStatus, limit, skip int) ([]tables.Order, int, error)
	// Update persists the order and payment status and the customer
	// confirmation flag. The admin notification flag is left untouched.
	Update(ctx context.Context, order *tables.Order) error
	// MarkAdminNotified sets only the admin notification flag so it cannot
	// overwrite a concurrent confirmation.
	MarkAdminNotified(ctx context.Context, orderId string) error
}

type StockRepository interface {
	List(ctx context.Context) ([]tables.Stock, error)
	// Adjust adds delta to the row for (productType, withStand), creating it
	// with quantity delta when missing. No lower bound is enforced.
	Adjust(ctx context.Context, productType tables.ProductType, withStand *bool, delta int) error
	Set(ctx context.Context, productType tables.ProductType, withStand *bool, quantity int) (*tables.Stock, error)
	// SeedMissing inserts the rows that do not exist yet and returns how many were created.
	SeedMissing(ctx context.Context, rows []tables.Stock) (int, error)
	DeleteAll(ctx context.Context) (int, error)
}

type AdminRepository interface {
	// FindByEmail returns lib.ErrNotFound when no admin has the email.
	FindByEmail(ctx context.Context, email string) (*tables.Admin, error)
	Create(ctx context.Context, admin *tables.Admin) (*tables.Admin, error)
}

// Repositories bundles every store the services need.
type Repositories struct {
	Orders OrderRepository
	Stock  StockRepository
	Admins AdminRepository
}

func NewPostgres(db *database.DB) *Repositories {
	return &Repositories{
		Orders: NewOrderPGRepository(db),
		Stock:  NewStockPGRepository(db),
		Admins: NewAdminPGRepository(db),
	}
}

func NewMemory() *Repositories {
	return &Repositories{
		Orders: NewOrderMemoryRepository(),
		Stock:  NewStockMemoryRepository(),
		Admins: NewAdminMemoryRepository(),
	}
}
