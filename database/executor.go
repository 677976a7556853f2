package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// whereApplier is implemented by bun's select, update and delete queries
type whereApplier[Q any] interface {
	Where(query string, args ...any) Q
}

func applyWheres[Q whereApplier[Q]](query Q, wheres []*WhereClause) Q {
	for _, where := range wheres {
		query = query.Where("? "+where.Operator+" ?", bun.Ident(where.Column), where.Value)
	}
	return query
}

// withTimeout bounds ctx by the configured read or write timeout
func (q *QueryBuilder[T]) withTimeout(ctx context.Context, write bool) (context.Context, context.CancelFunc) {
	return q.db.withTimeout(ctx, write)
}

func (q *QueryBuilder[T]) buildSelect(model any, paginate bool) *bun.SelectQuery {
	query := applyWheres(q.db.NewSelect().Model(model), q.wheres)

	for _, order := range q.orders {
		query = query.OrderExpr("? "+string(order.Direction), bun.Ident(order.Column))
	}

	if paginate {
		if q.limitVal != nil {
			query = query.Limit(*q.limitVal)
		}
		if q.offsetVal != nil {
			query = query.Offset(*q.offsetVal)
		}
	}

	return query
}

// All executes the query and returns all matching records
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	ctx, cancel := q.withTimeout(ctx, false)
	defer cancel()

	var data []T
	err := q.db.WithRetry(ctx, func() error {
		data = nil // Reset on retry
		return q.buildSelect(&data, true).Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	if data == nil {
		data = []T{}
	}
	return data, nil
}

// First executes the query and returns the first matching record, or nil
// when nothing matches
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	ctx, cancel := q.withTimeout(ctx, false)
	defer cancel()

	var data T
	err := q.db.WithRetry(ctx, func() error {
		return q.buildSelect(&data, false).Limit(1).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Count returns the number of records matching the WHERE clauses,
// ignoring LIMIT and OFFSET
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	ctx, cancel := q.withTimeout(ctx, false)
	defer cancel()

	var count int
	err := q.db.WithRetry(ctx, func() error {
		var err error
		count, err = applyWheres(q.db.NewSelect().Model((*T)(nil)), q.wheres).Count(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// Insert inserts a new record and returns it
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	start := time.Now()
	ctx, cancel := q.withTimeout(ctx, true)
	defer cancel()

	err := q.db.WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(data).Returning("*").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update sets the given columns on every record matching the query and
// returns the number of rows affected
func (q *QueryBuilder[T]) Update(ctx context.Context, data map[string]any) (int, error) {
	start := time.Now()
	ctx, cancel := q.withTimeout(ctx, true)
	defer cancel()

	if len(q.wheres) == 0 {
		return 0, fmt.Errorf("refusing to update without a WHERE clause")
	}

	var rowsAffected int64
	err := q.db.WithRetry(ctx, func() error {
		query := applyWheres(q.db.NewUpdate().Model((*T)(nil)), q.wheres)
		for key, value := range data {
			query = query.Set("? = ?", bun.Ident(key), value)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

// Delete removes every record matching the query. Without WHERE clauses it
// empties the table.
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	start := time.Now()
	ctx, cancel := q.withTimeout(ctx, true)
	defer cancel()

	var rowsAffected int64
	err := q.db.WithRetry(ctx, func() error {
		query := q.db.NewDelete().Model((*T)(nil))
		if len(q.wheres) == 0 {
			query = query.Where("TRUE")
		} else {
			query = applyWheres(query, q.wheres)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}
