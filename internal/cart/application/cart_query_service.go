package application

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

// CartQueryService 购物车查询服务
type CartQueryService struct {
	carts domain.CartRepository
}

// NewCartQueryService 创建购物车查询服务实例
func NewCartQueryService(carts domain.CartRepository) *CartQueryService {
	return &CartQueryService{carts: carts}
}

// GetCart 根据用户 ID 获取购物车。尚未持久化时返回空购物车值。
func (s *CartQueryService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &domain.Cart{UserID: userID}, nil
	}
	return cart, nil
}

// GetCartTotal 获取购物车总金额
func (s *CartQueryService) GetCartTotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return cart.TotalPrice(), nil
}

// GetCartItemCount 获取购物车商品件数合计
func (s *CartQueryService) GetCartItemCount(ctx context.Context, userID string) (int, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return 0, err
	}
	return cart.TotalItems(), nil
}
