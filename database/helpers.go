package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RawQueryOne executes a raw SQL query and returns a single result
func RawQueryOne[T any](db *DB, ctx context.Context, query string, args ...any) (*T, error) {
	start := time.Now()
	ctx, cancel := db.withTimeout(ctx, true)
	defer cancel()

	var data T
	err := db.WithRetry(ctx, func() error {
		return db.NewRaw(query, args...).Scan(ctx, &data)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute raw query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// RawExec executes a raw SQL command (INSERT, UPDATE, DELETE) without returning data
func RawExec(db *DB, ctx context.Context, query string, args ...any) (int, error) {
	start := time.Now()
	ctx, cancel := db.withTimeout(ctx, true)
	defer cancel()

	var rowsAffected int64
	err := db.WithRetry(ctx, func() error {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute raw command: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}
