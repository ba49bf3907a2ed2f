package application

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/ecommerce/internal/catalog/domain"
)

// CartApplicationService 购物车服务门面，整合命令服务和查询服务
type CartApplicationService struct {
	commandService *CartCommandService
	queryService   *CartQueryService
}

// NewCartApplicationService 创建购物车服务门面实例
func NewCartApplicationService(
	carts domain.CartRepository,
	products catalogdomain.ProductRepository,
	publisher domain.EventPublisher,
) *CartApplicationService {
	return &CartApplicationService{
		commandService: NewCartCommandService(carts, products, publisher),
		queryService:   NewCartQueryService(carts),
	}
}

// GetCart 根据用户 ID 获取购物车信息
func (s *CartApplicationService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.queryService.GetCart(ctx, userID)
}

// GetCartTotal 获取购物车总金额
func (s *CartApplicationService) GetCartTotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	return s.queryService.GetCartTotal(ctx, userID)
}

// GetCartItemCount 获取购物车商品件数
func (s *CartApplicationService) GetCartItemCount(ctx context.Context, userID string) (int, error) {
	return s.queryService.GetCartItemCount(ctx, userID)
}

// AddItem 处理添加商品到购物车
func (s *CartApplicationService) AddItem(ctx context.Context, userID string, productID uint, quantity int) (*domain.Cart, error) {
	return s.commandService.AddItem(ctx, AddItemCommand{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// UpdateItem 处理购物车条目数量变更
func (s *CartApplicationService) UpdateItem(ctx context.Context, userID string, itemID uint, quantity int) (*domain.Cart, error) {
	return s.commandService.UpdateItem(ctx, UpdateItemCommand{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: quantity,
	})
}

// RemoveItem 处理从购物车移除条目
func (s *CartApplicationService) RemoveItem(ctx context.Context, userID string, itemID uint) (*domain.Cart, error) {
	return s.commandService.RemoveItem(ctx, RemoveItemCommand{
		UserID: userID,
		ItemID: itemID,
	})
}

// ClearCart 处理清空购物车
func (s *CartApplicationService) ClearCart(ctx context.Context, userID string) error {
	return s.commandService.ClearCart(ctx, ClearCartCommand{UserID: userID})
}
