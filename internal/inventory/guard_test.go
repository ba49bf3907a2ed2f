package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		available int
	}{
		{"one of one", 1, 1},
		{"all of stock", 10, 10},
		{"less than stock", 3, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, Validate(tc.requested, tc.available))
		})
	}
}

func TestValidate_RejectsNonPositive(t *testing.T) {
	assert.ErrorIs(t, Validate(0, 10), ErrInvalidQuantity)
	assert.ErrorIs(t, Validate(-5, 10), ErrInvalidQuantity)
	// 数量非法优先于库存判断
	assert.ErrorIs(t, Validate(0, 0), ErrInvalidQuantity)
}

func TestValidate_RejectsInsufficientStock(t *testing.T) {
	err := Validate(5, 3)
	require.Error(t, err)

	var insufficient *InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 3, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)
}

func TestValidate_ZeroStock(t *testing.T) {
	var insufficient *InsufficientStockError
	require.True(t, errors.As(Validate(1, 0), &insufficient))
	assert.Equal(t, 0, insufficient.Available)
	assert.Equal(t, 1, insufficient.Requested)
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := &InsufficientStockError{Available: 2, Requested: 7}
	assert.Equal(t, "insufficient stock: available 2, requested 7", err.Error())

	err.ProductName = "WidgetPro"
	assert.Equal(t, "insufficient stock for WidgetPro: available 2, requested 7", err.Error())
}
