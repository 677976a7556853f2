package database

import (
	"context"
	"testing"
	"time"

	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqldb.Close() })

	return NewDB(sqldb, &structs.DatabaseConfig{}, gecho.NewDefaultLogger()), mock
}

func TestQueryCount(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" AS "o" WHERE \("order_status" = 'pending'\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := Query[tables.Order](db).Where("order_status", "pending").Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryFirst_NoRowsReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "orders" AS "o" WHERE \("order_id" = 'PMC1'\) LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id"}))

	order, err := Query[tables.Order](db).Where("order_id", "PMC1").First(context.Background())

	require.NoError(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryAll_OrdersAndPaginates(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "orders" AS "o" ORDER BY "created_at" DESC LIMIT 10 OFFSET 20`).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow("PMC1").AddRow("PMC2"))

	orders, err := Query[tables.Order](db).
		OrderBy("created_at", DESC).
		Limit(10).
		Offset(20).
		All(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "PMC1", orders[0].OrderId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryUpdate_RequiresWhere(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := Query[tables.Order](db).Update(context.Background(), map[string]any{"order_status": "confirmed"})

	assert.Error(t, err)
}

func TestQueryDelete_WithoutWhereClearsTable(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "stocks" AS "s" WHERE \(TRUE\)`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := Query[tables.Stock](db).Delete(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTimeout_UsesConfiguredBounds(t *testing.T) {
	sqldb, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqldb.Close() })

	db := NewDB(sqldb, &structs.DatabaseConfig{
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 5 * time.Second,
	}, gecho.NewDefaultLogger())

	readCtx, cancel := db.withTimeout(context.Background(), false)
	defer cancel()
	deadline, ok := readCtx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)

	writeCtx, cancel := db.withTimeout(context.Background(), true)
	defer cancel()
	deadline, ok = writeCtx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)

	unbounded, _ := newMockDB(t)
	ctx, cancel := unbounded.withTimeout(context.Background(), true)
	defer cancel()
	_, ok = ctx.Deadline()
	assert.False(t, ok)
}
