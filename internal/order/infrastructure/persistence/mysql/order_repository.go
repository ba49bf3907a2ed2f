package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/wyfcoding/ecommerce/internal/order/domain"
	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
)

// orderRepository 订单仓储的 GORM 实现
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

// getDB 优先使用上下文中的事务句柄
func (r *orderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := contextx.GetTx(ctx); tx != nil {
		if gtx, ok := tx.(*gorm.DB); ok {
			return gtx
		}
	}
	return r.db.WithContext(ctx)
}

// Save 持久化订单及其条目，并把生成的主键回写到领域对象。
func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	model := toOrderModel(order)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}
	order.ID = model.ID
	for i := range model.Items {
		order.Items[i].ID = model.Items[i].ID
		order.Items[i].OrderID = model.Items[i].OrderID
	}
	return nil
}

// GetByID 按 ID 读取订单（含条目），不存在时返回 (nil, nil)。
func (r *orderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var model OrderModel
	err := r.getDB(ctx).Preload("Items").First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toOrder(&model), nil
}

// ListByUser 按用户分页查询订单，最近创建的在前。
func (r *orderRepository) ListByUser(ctx context.Context, userID string, status domain.OrderStatus, limit, offset int) ([]*domain.Order, int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&OrderModel{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []OrderModel
	if err := query.Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrder(&models[i]))
	}
	return orders, total, nil
}

// UpdateStatus 覆写订单状态
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	return r.getDB(ctx).Model(&OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

// WithTx 在单个数据库事务内执行 fn，事务句柄随上下文传递。
func (r *orderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(contextx.WithTx(ctx, tx))
	})
}
