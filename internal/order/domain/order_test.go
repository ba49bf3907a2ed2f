package domain

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *Order {
	items := []OrderItem{
		{ProductID: 1, ProductName: "widget", Quantity: 2, Price: decimal.NewFromFloat(9.99)},
		{ProductID: 2, ProductName: "gadget", Quantity: 1, Price: decimal.NewFromFloat(5.00)},
	}
	return NewOrder("ORD-TEST000001", "u1", decimal.NewFromFloat(24.98), ShippingInfo{
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Phone:      "555-0100",
	}, items, time.Now())
}

func TestNewOrderStartsPending(t *testing.T) {
	order := newTestOrder()

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, 3, order.TotalItems())
	assert.True(t, order.CanBeCancelled())
}

func TestLifecycleHappyPath(t *testing.T) {
	ctx := context.Background()
	order := newTestOrder()

	require.NoError(t, order.TransitionTo(ctx, OrderStatusProcessing))
	require.NoError(t, order.TransitionTo(ctx, OrderStatusShipped))
	require.NoError(t, order.TransitionTo(ctx, OrderStatusDelivered))
	assert.Equal(t, OrderStatusDelivered, order.Status)
}

func TestCancelBeforeShipment(t *testing.T) {
	ctx := context.Background()

	order := newTestOrder()
	require.NoError(t, order.TransitionTo(ctx, OrderStatusCancelled))
	assert.Equal(t, OrderStatusCancelled, order.Status)

	order = newTestOrder()
	require.NoError(t, order.TransitionTo(ctx, OrderStatusProcessing))
	require.NoError(t, order.TransitionTo(ctx, OrderStatusCancelled))
	assert.Equal(t, OrderStatusCancelled, order.Status)
}

func TestInvalidTransitions(t *testing.T) {
	ctx := context.Background()

	// 跳级发货
	order := newTestOrder()
	err := order.TransitionTo(ctx, OrderStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, OrderStatusPending, order.Status)

	// 发货后取消
	order = newTestOrder()
	require.NoError(t, order.TransitionTo(ctx, OrderStatusProcessing))
	require.NoError(t, order.TransitionTo(ctx, OrderStatusShipped))
	err = order.TransitionTo(ctx, OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, order.CanBeCancelled())

	// 终态无出边
	order = newTestOrder()
	require.NoError(t, order.TransitionTo(ctx, OrderStatusCancelled))
	err = order.TransitionTo(ctx, OrderStatusProcessing)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// pending 不是迁移目标
	order = newTestOrder()
	err = order.TransitionTo(ctx, OrderStatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		parsed, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(s), parsed)
	}

	_, err := ParseStatus("refunded")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestInitFSMAfterRehydration(t *testing.T) {
	// 仓储还原的订单没有状态机，首次迁移时惰性初始化
	order := &Order{Status: OrderStatusProcessing}
	require.NoError(t, order.TransitionTo(context.Background(), OrderStatusShipped))
	assert.Equal(t, OrderStatusShipped, order.Status)
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{Quantity: 3, Price: decimal.NewFromFloat(2.50)}
	assert.Equal(t, "7.50", item.LineTotal().StringFixed(2))
}
