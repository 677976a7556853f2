package database

import (
	"context"
	"fmt"
	"photomagnet_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_orders_order_status ON orders (order_status)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)`,
}

// CreateSchema creates the admins, orders and stocks tables when they do not exist yet
func CreateSchema(ctx context.Context, db *DB, logger *gecho.Logger) error {
	models := []any{
		(*tables.Admin)(nil),
		(*tables.Order)(nil),
		(*tables.Stock)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	logger.Info("Database schema is up to date")
	return nil
}
