package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"photomagnet_server/lib"
	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateAppliesCouponAndDecrementsStock(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.notifier.On("NotifyAdmin", mock.Anything, mock.Anything).
		Return(structs.NotificationResult{EmailSent: true, SmsSent: true}, nil).Once()

	_, err := f.stock.Seed(ctx, 100)
	require.NoError(t, err)

	req := rectangleOrder()
	req.CouponApplied = "sir123"

	order, err := f.orders.Create(ctx, req)
	require.NoError(t, err)
	f.orders.Wait()

	assert.Equal(t, 200, order.Discount)
	assert.Equal(t, 200, order.FinalAmount)
	assert.True(t, strings.HasPrefix(order.OrderId, "PMC"))
	assert.Equal(t, tables.PaymentStatusSuccess, order.PaymentStatus)
	assert.Equal(t, tables.OrderStatusPending, order.OrderStatus)

	stock, err := f.repos.Stock.List(ctx)
	require.NoError(t, err)
	for _, row := range stock {
		if row.StockKey == "rectangle:no-stand" {
			assert.Equal(t, 98, row.Quantity)
		} else {
			assert.Equal(t, 100, row.Quantity)
		}
	}

	stored, err := f.repos.Orders.FindByOrderId(ctx, order.OrderId)
	require.NoError(t, err)
	assert.True(t, stored.AdminNotificationSent)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, structs.EventOrderCreated, f.events.events[0].Type)
	f.notifier.AssertExpectations(t)
}

func TestOrderService_CreateDrivesStockNegative(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.notifier.On("NotifyAdmin", mock.Anything, mock.Anything).
		Return(structs.NotificationResult{}, nil)

	_, err := f.stock.SetQuantity(ctx, tables.ProductTypeRectangle, boolPtr(false), 1)
	require.NoError(t, err)

	_, err = f.orders.Create(ctx, rectangleOrder())
	require.NoError(t, err)
	f.orders.Wait()

	stock, err := f.repos.Stock.List(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, -1, stock[0].Quantity)
}

func TestOrderService_CreateKeepsOrderWhenNotificationFails(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.notifier.On("NotifyAdmin", mock.Anything, mock.Anything).
		Return(structs.NotificationResult{}, errors.New("smtp down"))

	order, err := f.orders.Create(ctx, rectangleOrder())
	require.NoError(t, err)
	f.orders.Wait()

	stored, err := f.repos.Orders.FindByOrderId(ctx, order.OrderId)
	require.NoError(t, err)
	assert.False(t, stored.AdminNotificationSent)
}

func TestOrderService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*structs.CreateOrderRequest)
	}{
		{"unserviceable state", func(r *structs.CreateOrderRequest) { r.State = "Karnataka" }},
		{"square with stand", func(r *structs.CreateOrderRequest) {
			r.ProductType = tables.ProductTypeSquare
			r.Orientation = ""
		}},
		{"rectangle without stand flag", func(r *structs.CreateOrderRequest) { r.WithStand = nil }},
		{"orientation on square", func(r *structs.CreateOrderRequest) {
			r.ProductType = tables.ProductTypeSquare
			r.WithStand = nil
		}},
		{"zero quantity", func(r *structs.CreateOrderRequest) { r.Quantity = 0 }},
		{"badly formatted coupon", func(r *structs.CreateOrderRequest) { r.CouponApplied = "SIR123" }},
		{"unknown coupon", func(r *structs.CreateOrderRequest) { r.CouponApplied = "zzz999" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			req := rectangleOrder()
			tt.mutate(req)

			order, err := f.orders.Create(context.Background(), req)

			assert.ErrorIs(t, err, lib.ErrValidation)
			assert.Nil(t, order)
			f.notifier.AssertNotCalled(t, "NotifyAdmin", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_ConfirmTwiceNotifiesTwice(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.notifier.On("NotifyAdmin", mock.Anything, mock.Anything).
		Return(structs.NotificationResult{EmailSent: true}, nil)
	f.notifier.On("NotifyCustomerConfirmed", mock.Anything, mock.Anything).
		Return(structs.NotificationResult{EmailSent: true, SmsSent: true}, nil)

	order, err := f.orders.Create(ctx, rectangleOrder())
	require.NoError(t, err)
	f.orders.Wait()

	for range 2 {
		confirmed, err := f.orders.Confirm(ctx, order.OrderId)
		require.NoError(t, err)
		assert.Equal(t, tables.OrderStatusConfirmed, confirmed.OrderStatus)

		stored, err := f.repos.Orders.FindByOrderId(ctx, order.OrderId)
		require.NoError(t, err)
		assert.Equal(t, tables.OrderStatusConfirmed, stored.OrderStatus)
		assert.True(t, stored.CustomerConfirmationSent)
	}

	f.notifier.AssertNumberOfCalls(t, "NotifyCustomerConfirmed", 2)
}

func TestOrderService_ConfirmErrors(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Confirm(context.Background(), "")
	assert.ErrorIs(t, err, lib.ErrValidation)

	_, err = f.orders.Confirm(context.Background(), "PMC404")
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestOrderService_ListPaginates(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	base := time.Now()

	for i := range 5 {
		status := tables.OrderStatusPending
		if i%2 == 0 {
			status = tables.OrderStatusConfirmed
		}
		_, err := f.repos.Orders.Create(ctx, &tables.Order{
			OrderId:     lib.GenerateOrderId(base) + string(rune('a'+i)),
			OrderStatus: status,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	result, err := f.orders.List(ctx, structs.OrderListOptions{Status: "all", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Orders, 2)
	assert.Equal(t, structs.Pagination{Total: 5, Limit: 2, Skip: 0, HasMore: true}, result.Pagination)
	assert.True(t, result.Orders[0].CreatedAt.After(result.Orders[1].CreatedAt))

	result, err = f.orders.List(ctx, structs.OrderListOptions{Status: tables.OrderStatusConfirmed, Skip: 2})
	require.NoError(t, err)
	assert.Len(t, result.Orders, 1)
	assert.Equal(t, structs.Pagination{Total: 3, Limit: DefaultOrderListLimit, Skip: 2, HasMore: false}, result.Pagination)

	_, err = f.orders.List(ctx, structs.OrderListOptions{Status: "lost"})
	assert.ErrorIs(t, err, lib.ErrValidation)
}
