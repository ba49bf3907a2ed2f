package domain

import "context"

// CartRepository 购物车仓储接口
type CartRepository interface {
	// GetByUserID 读取用户购物车（含条目），不存在时返回 (nil, nil)
	GetByUserID(ctx context.Context, userID string) (*Cart, error)
	// Create 持久化一个新购物车
	Create(ctx context.Context, cart *Cart) error
	// SaveItem 新增或更新一条购物车条目
	SaveItem(ctx context.Context, item *CartItem) error
	// DeleteItem 删除条目，条目不属于该购物车时返回 ErrLineNotFound
	DeleteItem(ctx context.Context, cartID, itemID uint) error
	// ClearItems 删除购物车全部条目，购物车为空时为空操作
	ClearItems(ctx context.Context, cartID uint) error
	// WithTx 在单个数据库事务内执行 fn
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
