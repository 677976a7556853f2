package repository

import (
	"context"
	"testing"
	"time"

	"photomagnet_server/lib"
	"photomagnet_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestStockMemory_AdjustGoesNegative(t *testing.T) {
	ctx := context.Background()
	repo := NewStockMemoryRepository()

	_, err := repo.Set(ctx, tables.ProductTypeRectangle, boolPtr(true), 2)
	require.NoError(t, err)

	require.NoError(t, repo.Adjust(ctx, tables.ProductTypeRectangle, boolPtr(true), -5))

	stock, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, -3, stock[0].Quantity)
}

func TestStockMemory_AdjustCreatesMissingRow(t *testing.T) {
	ctx := context.Background()
	repo := NewStockMemoryRepository()

	require.NoError(t, repo.Adjust(ctx, tables.ProductTypeSquare, nil, -4))

	stock, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, tables.ProductTypeSquare, stock[0].ProductType)
	assert.Nil(t, stock[0].WithStand)
	assert.Equal(t, -4, stock[0].Quantity)
}

func TestStockMemory_SeedMissingKeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewStockMemoryRepository()

	_, err := repo.Set(ctx, tables.ProductTypeSquare, nil, 7)
	require.NoError(t, err)

	rows := tables.DefaultStockRows()
	for i := range rows {
		rows[i].Quantity = 100
	}

	created, err := repo.SeedMissing(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	stock, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 3)

	// rectangle rows first, stand before no stand, then square
	assert.Equal(t, tables.ProductTypeRectangle, stock[0].ProductType)
	assert.True(t, *stock[0].WithStand)
	assert.False(t, *stock[1].WithStand)
	assert.Equal(t, tables.ProductTypeSquare, stock[2].ProductType)
	assert.Equal(t, 7, stock[2].Quantity)
}

func TestStockMemory_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := NewStockMemoryRepository()

	_, err := repo.SeedMissing(ctx, tables.DefaultStockRows())
	require.NoError(t, err)

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	stock, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stock)
}

func TestOrderMemory_ListFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderMemoryRepository()
	base := time.Now()

	for i, status := range []tables.OrderStatus{
		tables.OrderStatusPending,
		tables.OrderStatusConfirmed,
		tables.OrderStatusPending,
		tables.OrderStatusPending,
	} {
		_, err := repo.Create(ctx, &tables.Order{
			OrderId:     "PMC" + string(rune('A'+i)),
			OrderStatus: status,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	orders, total, err := repo.List(ctx, tables.OrderStatusPending, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, orders, 2)
	assert.Equal(t, "PMCD", orders[0].OrderId)
	assert.Equal(t, "PMCC", orders[1].OrderId)

	orders, total, err = repo.List(ctx, "", 50, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "PMCA", orders[0].OrderId)
}

func TestOrderMemory_DuplicateOrderIdConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderMemoryRepository()

	_, err := repo.Create(ctx, &tables.Order{OrderId: "PMC1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &tables.Order{OrderId: "PMC1"})
	assert.ErrorIs(t, err, lib.ErrConflict)
}

func TestOrderMemory_UpdateUnknownOrder(t *testing.T) {
	err := NewOrderMemoryRepository().Update(context.Background(), &tables.Order{OrderId: "missing"})
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestOrderMemory_UpdateKeepsAdminNotificationFlag(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderMemoryRepository()

	_, err := repo.Create(ctx, &tables.Order{OrderId: "PMC1", OrderStatus: tables.OrderStatusPending})
	require.NoError(t, err)

	// confirm reads the order before the async admin notification lands
	read, err := repo.FindByOrderId(ctx, "PMC1")
	require.NoError(t, err)
	require.False(t, read.AdminNotificationSent)

	require.NoError(t, repo.MarkAdminNotified(ctx, "PMC1"))

	read.OrderStatus = tables.OrderStatusConfirmed
	read.CustomerConfirmationSent = true
	require.NoError(t, repo.Update(ctx, read))

	stored, err := repo.FindByOrderId(ctx, "PMC1")
	require.NoError(t, err)
	assert.True(t, stored.AdminNotificationSent)
	assert.Equal(t, tables.OrderStatusConfirmed, stored.OrderStatus)
	assert.True(t, stored.CustomerConfirmationSent)
}

func TestAdminMemory_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminMemoryRepository()

	_, err := repo.FindByEmail(ctx, "admin@example.com")
	assert.ErrorIs(t, err, lib.ErrNotFound)

	created, err := repo.Create(ctx, &tables.Admin{Email: "admin@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)

	found, err := repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.Id, found.Id)
}
