// Package domain 商品目录领域模型
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound 商品不存在或已下架
var ErrProductNotFound = errors.New("product not found")

// Product 商品实体。
// 结算服务只读商品信息，库存扣减是这里唯一的写路径。
type Product struct {
	ID          uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	Active      bool
}

// InStock 是否还有可售库存
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Sellable 是否可加入购物车
func (p *Product) Sellable() bool {
	return p.Active
}
