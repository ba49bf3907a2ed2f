package domain

import "context"

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Save 持久化订单及其条目
	Save(ctx context.Context, order *Order) error
	// GetByID 按 ID 读取订单（含条目），不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*Order, error)
	// ListByUser 按用户分页查询订单，status 为空时不过滤
	ListByUser(ctx context.Context, userID string, status OrderStatus, limit, offset int) ([]*Order, int64, error)
	// UpdateStatus 覆写订单状态
	UpdateStatus(ctx context.Context, id uint, status OrderStatus) error
	// WithTx 在单个数据库事务内执行 fn
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
