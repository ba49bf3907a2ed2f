// Package inventory 库存守卫：校验请求数量能否被当前库存满足。
// 纯函数实现，调用方显式传入当前库存，不依赖数据库。
package inventory

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity 请求数量非法（<= 0）
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// InsufficientStockError 库存不足错误，携带可用库存与请求数量
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName != "" {
		return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", e.ProductName, e.Available, e.Requested)
	}
	return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
}

// Validate 校验请求数量是否可被可用库存满足。
func Validate(requested, available int) error {
	if requested <= 0 {
		return ErrInvalidQuantity
	}
	if requested > available {
		return &InsufficientStockError{Available: available, Requested: requested}
	}
	return nil
}
