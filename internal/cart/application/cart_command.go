package application

import (
	"context"
	"errors"
	"time"

	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/ecommerce/internal/catalog/domain"
	"github.com/wyfcoding/ecommerce/internal/inventory"
	"github.com/wyfcoding/pkg/contextx"
)

// AddItemCommand 添加商品到购物车命令
type AddItemCommand struct {
	UserID    string
	ProductID uint
	Quantity  int
}

// UpdateItemCommand 修改购物车条目数量命令
type UpdateItemCommand struct {
	UserID   string
	ItemID   uint
	Quantity int
}

// RemoveItemCommand 从购物车移除条目命令
type RemoveItemCommand struct {
	UserID string
	ItemID uint
}

// ClearCartCommand 清空购物车命令
type ClearCartCommand struct {
	UserID string
}

// CartCommandService 购物车命令服务
type CartCommandService struct {
	carts     domain.CartRepository
	products  catalogdomain.ProductRepository
	publisher domain.EventPublisher
}

// NewCartCommandService 创建购物车命令服务实例
func NewCartCommandService(
	carts domain.CartRepository,
	products catalogdomain.ProductRepository,
	publisher domain.EventPublisher,
) *CartCommandService {
	return &CartCommandService{
		carts:     carts,
		products:  products,
		publisher: publisher,
	}
}

// AddItem 处理添加商品到购物车。
// 同商品重复添加时合并数量，并按合并后的总量做库存校验。
func (s *CartCommandService) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	product, err := s.products.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Sellable() {
		return nil, catalogdomain.ErrProductNotFound
	}

	var cart *domain.Cart
	err = s.carts.WithTx(ctx, func(txCtx context.Context) error {
		cart, err = s.carts.GetByUserID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}

		now := time.Now()
		if cart == nil {
			cart = &domain.Cart{UserID: cmd.UserID, CreatedAt: now, UpdatedAt: now}
			if err := s.carts.Create(txCtx, cart); err != nil {
				return err
			}
			created := domain.CartCreatedEvent{
				CartID:    cart.ID,
				UserID:    cart.UserID,
				Timestamp: now,
			}
			if err := s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.CartCreatedEventType, cmd.UserID, created); err != nil {
				return err
			}
		}

		merged := cmd.Quantity
		if line := cart.LineByProduct(cmd.ProductID); line != nil {
			merged += line.Quantity
		}
		if err := inventory.Validate(merged, product.Stock); err != nil {
			return describeProduct(err, product)
		}

		line := cart.MergeLine(cmd.ProductID, cmd.Quantity, product.Price, now)
		if err := s.carts.SaveItem(txCtx, line); err != nil {
			return err
		}

		event := domain.CartItemAddedEvent{
			CartID:    cart.ID,
			UserID:    cart.UserID,
			ProductID: cmd.ProductID,
			Quantity:  cmd.Quantity,
			Price:     line.Price.StringFixed(2),
			Timestamp: now,
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.CartItemAddedEventType, cmd.UserID, event)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem 处理购物车条目数量变更。
// 数量 <= 0 等价于移除该条目，否则按新绝对数量重新做库存校验。
func (s *CartCommandService) UpdateItem(ctx context.Context, cmd UpdateItemCommand) (*domain.Cart, error) {
	var cart *domain.Cart
	err := s.carts.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		cart, err = s.carts.GetByUserID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrLineNotFound
		}
		line := cart.Line(cmd.ItemID)
		if line == nil {
			return domain.ErrLineNotFound
		}

		now := time.Now()
		if cmd.Quantity <= 0 {
			if err := s.carts.DeleteItem(txCtx, cart.ID, line.ID); err != nil {
				return err
			}
			event := domain.CartItemRemovedEvent{
				CartID:    cart.ID,
				UserID:    cart.UserID,
				ProductID: line.ProductID,
				Timestamp: now,
			}
			cart.RemoveLine(cmd.ItemID)
			return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.CartItemRemovedEventType, cmd.UserID, event)
		}

		product, err := s.products.GetByID(txCtx, line.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return catalogdomain.ErrProductNotFound
		}
		if err := inventory.Validate(cmd.Quantity, product.Stock); err != nil {
			return describeProduct(err, product)
		}

		line.Quantity = cmd.Quantity
		line.UpdatedAt = now
		if err := s.carts.SaveItem(txCtx, line); err != nil {
			return err
		}

		event := domain.CartItemUpdatedEvent{
			CartID:    cart.ID,
			UserID:    cart.UserID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Timestamp: now,
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.CartItemUpdatedEventType, cmd.UserID, event)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem 处理从购物车移除条目
func (s *CartCommandService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	var cart *domain.Cart
	err := s.carts.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		cart, err = s.carts.GetByUserID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrLineNotFound
		}
		line := cart.Line(cmd.ItemID)
		if line == nil {
			return domain.ErrLineNotFound
		}

		if err := s.carts.DeleteItem(txCtx, cart.ID, line.ID); err != nil {
			return err
		}
		event := domain.CartItemRemovedEvent{
			CartID:    cart.ID,
			UserID:    cart.UserID,
			ProductID: line.ProductID,
			Timestamp: time.Now(),
		}
		cart.RemoveLine(cmd.ItemID)
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.CartItemRemovedEventType, cmd.UserID, event)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart 处理清空购物车。购物车不存在或已空时为空操作。
func (s *CartCommandService) ClearCart(ctx context.Context, cmd ClearCartCommand) error {
	return s.carts.WithTx(ctx, func(txCtx context.Context) error {
		cart, err := s.carts.GetByUserID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if cart == nil || cart.IsEmpty() {
			return nil
		}

		if err := s.carts.ClearItems(txCtx, cart.ID); err != nil {
			return err
		}
		event := domain.CartClearedEvent{
			CartID:    cart.ID,
			UserID:    cart.UserID,
			Timestamp: time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.CartClearedEventType, cmd.UserID, event)
	})
}

// describeProduct 给库存不足错误补充商品信息，便于客户端展示
func describeProduct(err error, product *catalogdomain.Product) error {
	var insufficient *inventory.InsufficientStockError
	if errors.As(err, &insufficient) {
		insufficient.ProductID = product.ID
		insufficient.ProductName = product.Name
	}
	return err
}
