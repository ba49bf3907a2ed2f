package domain

import "context"

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// GetByID 按 ID 读取商品，不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*Product, error)
	// List 分页列出商品
	List(ctx context.Context, offset, limit int) ([]*Product, int64, error)
	// DecrementStock 条件扣减库存：stock = stock - qty WHERE stock >= qty。
	// 返回 false 表示扣减未生效（库存不足），调用方据此中止事务。
	DecrementStock(ctx context.Context, id uint, qty int) (bool, error)
}
