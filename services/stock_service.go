package services

import (
	"context"
	"fmt"
	"photomagnet_server/lib"
	"photomagnet_server/repository"
	"photomagnet_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

var ErrNegativeQuantity = lib.Validationf("Quantity cannot be negative")

type StockService struct {
	logger *gecho.Logger
	stock  repository.StockRepository
}

func NewStockService(logger *gecho.Logger, stock repository.StockRepository) *StockService {
	return &StockService{
		logger: logger,
		stock:  stock,
	}
}

// List returns every stock row, rectangle before square and stand before no stand
func (ss *StockService) List(ctx context.Context) ([]tables.Stock, error) {
	return ss.stock.List(ctx)
}

// Decrement subtracts qty from the matching row. The result may be negative.
func (ss *StockService) Decrement(ctx context.Context, productType tables.ProductType, withStand *bool, qty int) error {
	if err := ss.stock.Adjust(ctx, productType, withStand, -qty); err != nil {
		return fmt.Errorf("decrement stock %s: %w", tables.StockKey(productType, withStand), err)
	}

	if qty > 0 {
		StockAdjustments.WithLabelValues(tables.StockKey(productType, withStand)).Add(float64(qty))
	}
	return nil
}

// SetQuantity overwrites the quantity of the matching row, creating it if needed
func (ss *StockService) SetQuantity(ctx context.Context, productType tables.ProductType, withStand *bool, qty int) (*tables.Stock, error) {
	if qty < 0 {
		return nil, ErrNegativeQuantity
	}
	if err := validateStand(productType, withStand); err != nil {
		return nil, err
	}

	row, err := ss.stock.Set(ctx, productType, withStand, qty)
	if err != nil {
		return nil, err
	}

	ss.logger.Info("Stock updated",
		gecho.Field("stock_key", row.StockKey),
		gecho.Field("quantity", row.Quantity),
	)
	return row, nil
}

// Seed inserts the default rows that are missing at quantity qty
func (ss *StockService) Seed(ctx context.Context, qty int) (int, error) {
	rows := tables.DefaultStockRows()
	for i := range rows {
		rows[i].Quantity = qty
	}

	created, err := ss.stock.SeedMissing(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("seed stock: %w", err)
	}

	ss.logger.Info("Stock initialized", gecho.Field("created", created))
	return created, nil
}

// Reset deletes every stock row
func (ss *StockService) Reset(ctx context.Context) (int, error) {
	deleted, err := ss.stock.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset stock: %w", err)
	}

	ss.logger.Warn("Stock ledger cleared", gecho.Field("deleted", deleted))
	return deleted, nil
}

func validateStand(productType tables.ProductType, withStand *bool) error {
	switch productType {
	case tables.ProductTypeSquare:
		if withStand != nil {
			return lib.Validationf("withStand must be omitted for square magnets")
		}
	case tables.ProductTypeRectangle:
		if withStand == nil {
			return lib.Validationf("withStand is required for rectangle magnets")
		}
	default:
		return lib.Validationf("unknown product type %q", productType)
	}
	return nil
}
