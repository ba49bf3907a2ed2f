package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLineAccumulatesQuantity(t *testing.T) {
	now := time.Now()
	cart := &Cart{ID: 1, UserID: "u1"}

	cart.MergeLine(100, 2, decimal.NewFromFloat(9.99), now)
	cart.MergeLine(100, 3, decimal.NewFromFloat(9.99), now)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestMergeLineKeepsSnapshotPrice(t *testing.T) {
	now := time.Now()
	cart := &Cart{ID: 1, UserID: "u1"}

	cart.MergeLine(100, 1, decimal.NewFromFloat(9.99), now)
	// 目录价上调后再次加车，已有条目仍按原快照价计
	cart.MergeLine(100, 1, decimal.NewFromFloat(14.99), now)

	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].Price.Equal(decimal.NewFromFloat(9.99)))
	assert.Equal(t, "19.98", cart.TotalPrice().StringFixed(2))
}

func TestMergeLineSeparateProducts(t *testing.T) {
	now := time.Now()
	cart := &Cart{ID: 1, UserID: "u1"}

	cart.MergeLine(100, 2, decimal.NewFromFloat(5.00), now)
	cart.MergeLine(200, 1, decimal.NewFromFloat(3.50), now)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, "13.50", cart.TotalPrice().StringFixed(2))
}

func TestRemoveLine(t *testing.T) {
	now := time.Now()
	cart := &Cart{ID: 1, UserID: "u1"}
	cart.MergeLine(100, 2, decimal.NewFromFloat(5.00), now)
	cart.Items[0].ID = 7

	assert.False(t, cart.RemoveLine(99))
	assert.True(t, cart.RemoveLine(7))
	assert.True(t, cart.IsEmpty())
}

func TestClear(t *testing.T) {
	now := time.Now()
	cart := &Cart{ID: 1, UserID: "u1"}
	cart.MergeLine(100, 2, decimal.NewFromFloat(5.00), now)
	cart.MergeLine(200, 1, decimal.NewFromFloat(1.00), now)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.True(t, cart.TotalPrice().IsZero())
}

func TestLineLookup(t *testing.T) {
	now := time.Now()
	cart := &Cart{ID: 1, UserID: "u1"}
	cart.MergeLine(100, 2, decimal.NewFromFloat(5.00), now)
	cart.Items[0].ID = 42

	require.NotNil(t, cart.LineByProduct(100))
	assert.Nil(t, cart.LineByProduct(999))
	require.NotNil(t, cart.Line(42))
	assert.Nil(t, cart.Line(1))
}
