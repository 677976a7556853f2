package repository

import (
	"context"
	"fmt"
	"photomagnet_server/database"
	"photomagnet_server/lib"
	"photomagnet_server/structs/tables"
)

const adjustStockSQL = `INSERT INTO stocks (stock_key, product_type, with_stand, quantity, updated_at)
VALUES (?, ?, ?, ?, current_timestamp)
ON CONFLICT (stock_key) DO UPDATE
SET quantity = stocks.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`

const setStockSQL = `INSERT INTO stocks (stock_key, product_type, with_stand, quantity, updated_at)
VALUES (?, ?, ?, ?, current_timestamp)
ON CONFLICT (stock_key) DO UPDATE
SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
RETURNING *`

const seedStockSQL = `INSERT INTO stocks (stock_key, product_type, with_stand, quantity, updated_at)
VALUES (?, ?, ?, ?, current_timestamp)
ON CONFLICT (stock_key) DO NOTHING`

type StockPGRepository struct {
	db *database.DB
}

func NewStockPGRepository(db *database.DB) *StockPGRepository {
	return &StockPGRepository{db: db}
}

func (r *StockPGRepository) List(ctx context.Context) ([]tables.Stock, error) {
	ctx, cancel := r.db.ReadContext(ctx)
	defer cancel()

	var stock []tables.Stock
	err := r.db.WithRetry(ctx, func() error {
		stock = nil
		return r.db.NewSelect().
			Model(&stock).
			OrderExpr("product_type ASC, with_stand DESC NULLS LAST").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", lib.MapPgError(err))
	}
	if stock == nil {
		stock = []tables.Stock{}
	}
	return stock, nil
}

func (r *StockPGRepository) Adjust(ctx context.Context, productType tables.ProductType, withStand *bool, delta int) error {
	_, err := database.RawExec(r.db, ctx, adjustStockSQL,
		tables.StockKey(productType, withStand), productType, withStand, delta)
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}

func (r *StockPGRepository) Set(ctx context.Context, productType tables.ProductType, withStand *bool, quantity int) (*tables.Stock, error) {
	row, err := database.RawQueryOne[tables.Stock](r.db, ctx, setStockSQL,
		tables.StockKey(productType, withStand), productType, withStand, quantity)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if row == nil {
		return nil, fmt.Errorf("set stock %s: no row returned", tables.StockKey(productType, withStand))
	}
	return row, nil
}

func (r *StockPGRepository) SeedMissing(ctx context.Context, rows []tables.Stock) (int, error) {
	created := 0
	for _, row := range rows {
		inserted, err := database.RawExec(r.db, ctx, seedStockSQL,
			tables.StockKey(row.ProductType, row.WithStand), row.ProductType, row.WithStand, row.Quantity)
		if err != nil {
			return created, lib.MapPgError(err)
		}
		created += inserted
	}
	return created, nil
}

func (r *StockPGRepository) DeleteAll(ctx context.Context) (int, error) {
	deleted, err := database.Query[tables.Stock](r.db).Delete(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return deleted, nil
}
