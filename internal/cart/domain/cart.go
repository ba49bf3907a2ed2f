// Package domain 购物车领域模型
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrLineNotFound 购物车条目不存在
var ErrLineNotFound = errors.New("cart item not found")

// Cart 购物车聚合根，每个用户至多一个，首次写入时惰性创建。
type Cart struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string
	Items     []CartItem
}

// CartItem 购物车条目，同一购物车内每个商品至多一条。
type CartItem struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	CartID    uint
	ProductID uint
	Quantity  int
	// Price 加入购物车时快照的单价，之后不随目录价格变动。
	Price decimal.Decimal
}

// LineTotal 条目小计
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems 商品件数合计
func (c *Cart) TotalItems() int {
	var n int
	for i := range c.Items {
		n += c.Items[i].Quantity
	}
	return n
}

// TotalPrice 按快照价计算的购物车总金额
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].LineTotal())
	}
	return total
}

// LineByProduct 按商品查找条目，不存在时返回 nil
func (c *Cart) LineByProduct(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Line 按条目 ID 查找，不存在时返回 nil
func (c *Cart) Line(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// MergeLine 合并一条商品到购物车：已存在则累加数量，否则以给定快照价
// 新建条目。价格只在条目首次创建时写入，合并不会刷新已有快照价。
func (c *Cart) MergeLine(productID uint, qty int, price decimal.Decimal, now time.Time) *CartItem {
	if line := c.LineByProduct(productID); line != nil {
		line.Quantity += qty
		line.UpdatedAt = now
		return line
	}
	c.Items = append(c.Items, CartItem{
		CartID:    c.ID,
		ProductID: productID,
		Quantity:  qty,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return &c.Items[len(c.Items)-1]
}

// RemoveLine 移除条目，条目不存在时返回 false
func (c *Cart) RemoveLine(itemID uint) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear 清空所有条目
func (c *Cart) Clear() {
	c.Items = nil
}
