package application

import (
	"context"

	"github.com/wyfcoding/ecommerce/internal/order/domain"
)

// OrderQueryService 订单查询服务
type OrderQueryService struct {
	orders domain.OrderRepository
}

// NewOrderQueryService 创建订单查询服务实例
func NewOrderQueryService(orders domain.OrderRepository) *OrderQueryService {
	return &OrderQueryService{orders: orders}
}

// GetOrder 查询单笔订单。普通用户只能查看自己的订单，管理员不受限。
func (s *OrderQueryService) GetOrder(ctx context.Context, orderID uint, userID string, isAdmin bool) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if !isAdmin && order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// ListOrders 分页查询用户订单，status 为空时不过滤状态。
func (s *OrderQueryService) ListOrders(ctx context.Context, userID, status string, limit, offset int) ([]*domain.Order, int64, error) {
	var filter domain.OrderStatus
	if status != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return nil, 0, err
		}
		filter = parsed
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.orders.ListByUser(ctx, userID, filter, limit, offset)
}
