package repository

import (
	"context"
	"fmt"
	"photomagnet_server/lib"
	"photomagnet_server/structs/tables"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OrderMemoryRepository keeps orders in process memory. It is used with
// DB_DRIVER=memory and in tests.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]tables.Order
}

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{orders: make(map[string]tables.Order)}
}

func (r *OrderMemoryRepository) Create(_ context.Context, order *tables.Order) (*tables.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.OrderId]; exists {
		return nil, fmt.Errorf("%w: orders_order_id_key", lib.ErrConflict)
	}

	if order.Id == uuid.Nil {
		order.Id = uuid.New()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	r.orders[order.OrderId] = *order
	return order, nil
}

func (r *OrderMemoryRepository) FindByOrderId(_ context.Context, orderId string) (*tables.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderId]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &order, nil
}

func (r *OrderMemoryRepository) List(_ context.Context, status tables.OrderStatus, limit, skip int) ([]tables.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]tables.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if status == "" || order.OrderStatus == status {
			matched = append(matched, order)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if skip >= total {
		return []tables.Order{}, total, nil
	}
	end := total
	if limit > 0 && skip+limit < total {
		end = skip + limit
	}

	return matched[skip:end], total, nil
}

func (r *OrderMemoryRepository) Update(_ context.Context, order *tables.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[order.OrderId]
	if !ok {
		return lib.ErrNotFound
	}

	order.UpdatedAt = time.Now()
	stored.OrderStatus = order.OrderStatus
	stored.PaymentStatus = order.PaymentStatus
	stored.CustomerConfirmationSent = order.CustomerConfirmationSent
	stored.UpdatedAt = order.UpdatedAt
	r.orders[order.OrderId] = stored
	order.AdminNotificationSent = stored.AdminNotificationSent
	return nil
}

func (r *OrderMemoryRepository) MarkAdminNotified(_ context.Context, orderId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[orderId]
	if !ok {
		return lib.ErrNotFound
	}

	stored.AdminNotificationSent = true
	stored.UpdatedAt = time.Now()
	r.orders[orderId] = stored
	return nil
}

type StockMemoryRepository struct {
	mu   sync.Mutex
	rows map[string]tables.Stock
}

func NewStockMemoryRepository() *StockMemoryRepository {
	return &StockMemoryRepository{rows: make(map[string]tables.Stock)}
}

func (r *StockMemoryRepository) List(_ context.Context) ([]tables.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stock := make([]tables.Stock, 0, len(r.rows))
	for _, row := range r.rows {
		stock = append(stock, row)
	}

	sort.Slice(stock, func(i, j int) bool {
		if stock[i].ProductType != stock[j].ProductType {
			return stock[i].ProductType < stock[j].ProductType
		}
		return standRank(stock[i].WithStand) > standRank(stock[j].WithStand)
	})

	return stock, nil
}

// standRank orders true before false before NULL under a descending sort.
func standRank(withStand *bool) int {
	switch {
	case withStand == nil:
		return 0
	case *withStand:
		return 2
	default:
		return 1
	}
}

func (r *StockMemoryRepository) Adjust(_ context.Context, productType tables.ProductType, withStand *bool, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := tables.StockKey(productType, withStand)
	row, ok := r.rows[key]
	if !ok {
		row = tables.Stock{StockKey: key, ProductType: productType, WithStand: withStand}
	}
	row.Quantity += delta
	row.UpdatedAt = time.Now()
	r.rows[key] = row
	return nil
}

func (r *StockMemoryRepository) Set(_ context.Context, productType tables.ProductType, withStand *bool, quantity int) (*tables.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := tables.StockKey(productType, withStand)
	row := tables.Stock{
		StockKey:    key,
		ProductType: productType,
		WithStand:   withStand,
		Quantity:    quantity,
		UpdatedAt:   time.Now(),
	}
	r.rows[key] = row
	return &row, nil
}

func (r *StockMemoryRepository) SeedMissing(_ context.Context, rows []tables.Stock) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := 0
	for _, row := range rows {
		if row.StockKey == "" {
			row.StockKey = tables.StockKey(row.ProductType, row.WithStand)
		}
		if _, exists := r.rows[row.StockKey]; exists {
			continue
		}
		row.UpdatedAt = time.Now()
		r.rows[row.StockKey] = row
		created++
	}
	return created, nil
}

func (r *StockMemoryRepository) DeleteAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := len(r.rows)
	r.rows = make(map[string]tables.Stock)
	return deleted, nil
}

type AdminMemoryRepository struct {
	mu     sync.RWMutex
	admins map[string]tables.Admin
}

func NewAdminMemoryRepository() *AdminMemoryRepository {
	return &AdminMemoryRepository{admins: make(map[string]tables.Admin)}
}

func (r *AdminMemoryRepository) FindByEmail(_ context.Context, email string) (*tables.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[email]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &admin, nil
}

func (r *AdminMemoryRepository) Create(_ context.Context, admin *tables.Admin) (*tables.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.admins[admin.Email]; exists {
		return nil, fmt.Errorf("%w: admins_email_key", lib.ErrConflict)
	}
	if admin.Id == uuid.Nil {
		admin.Id = uuid.New()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}

	r.admins[admin.Email] = *admin
	return admin, nil
}
