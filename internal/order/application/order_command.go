package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	cartdomain "github.com/wyfcoding/ecommerce/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/ecommerce/internal/catalog/domain"
	"github.com/wyfcoding/ecommerce/internal/inventory"
	"github.com/wyfcoding/ecommerce/internal/order/domain"
	"github.com/wyfcoding/pkg/contextx"
)

// PlaceOrderCommand 结算下单命令
type PlaceOrderCommand struct {
	UserID          string
	ShippingAddress string
	ShippingCity    string
	ShippingPostal  string
	ShippingPhone   string
}

// UpdateStatusCommand 订单状态变更命令（管理员）
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// CancelOrderCommand 用户取消订单命令
type CancelOrderCommand struct {
	OrderID uint
	UserID  string
}

// OrderCommandService 订单命令服务：购物车结算与状态流转
type OrderCommandService struct {
	orders    domain.OrderRepository
	carts     cartdomain.CartRepository
	products  catalogdomain.ProductRepository
	numbers   domain.NumberGenerator
	publisher domain.EventPublisher
	logger    *slog.Logger
}

// NewOrderCommandService 创建订单命令服务实例
func NewOrderCommandService(
	orders domain.OrderRepository,
	carts cartdomain.CartRepository,
	products catalogdomain.ProductRepository,
	numbers domain.NumberGenerator,
	publisher domain.EventPublisher,
	logger *slog.Logger,
) *OrderCommandService {
	return &OrderCommandService{
		orders:    orders,
		carts:     carts,
		products:  products,
		numbers:   numbers,
		publisher: publisher,
		logger:    logger.With("module", "order_command"),
	}
}

// PlaceOrder 把用户购物车原子地转换为一笔订单。
// 整个流程运行在单个数据库事务内：逐条按当前库存复核、按快照价
// 计总、条件扣减库存、清空购物车，任一步失败则全部回滚。
func (s *OrderCommandService) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	var order *domain.Order
	err := s.orders.WithTx(ctx, func(txCtx context.Context) error {
		cart, err := s.carts.GetByUserID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if cart == nil || cart.IsEmpty() {
			return domain.ErrEmptyCart
		}

		// 加车校验只是参考性的，这里对每个条目按当前库存重新复核，
		// 任一条目不足则整单中止。
		items := make([]domain.OrderItem, 0, len(cart.Items))
		for i := range cart.Items {
			line := &cart.Items[i]
			product, err := s.products.GetByID(txCtx, line.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.Sellable() {
				return catalogdomain.ErrProductNotFound
			}
			if err := inventory.Validate(line.Quantity, product.Stock); err != nil {
				var insufficient *inventory.InsufficientStockError
				if errors.As(err, &insufficient) {
					insufficient.ProductID = product.ID
					insufficient.ProductName = product.Name
				}
				return err
			}
			items = append(items, domain.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				// 结算价取加入购物车时的快照价，目录改价不影响已报价的购物车
				Price: line.Price,
			})
		}

		now := time.Now()
		shipping := domain.ShippingInfo{
			Address:    cmd.ShippingAddress,
			City:       cmd.ShippingCity,
			PostalCode: cmd.ShippingPostal,
			Phone:      cmd.ShippingPhone,
		}
		order = domain.NewOrder(s.numbers.Next(), cmd.UserID, cart.TotalPrice(), shipping, items, now)

		if err := s.orders.Save(txCtx, order); err != nil {
			return err
		}

		// 条件扣减是库存的唯一权威写路径：并发结算时先提交者胜出，
		// 落败方在这里拿到 InsufficientStock 并整体回滚。
		for i := range order.Items {
			item := &order.Items[i]
			ok, err := s.products.DecrementStock(txCtx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				available := 0
				if product, err := s.products.GetByID(txCtx, item.ProductID); err == nil && product != nil {
					available = product.Stock
				}
				return &inventory.InsufficientStockError{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					Available:   available,
					Requested:   item.Quantity,
				}
			}
		}

		if err := s.carts.ClearItems(txCtx, cart.ID); err != nil {
			return err
		}

		event := domain.OrderCreatedEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			UserID:      order.UserID,
			Total:       order.Total.StringFixed(2),
			Items:       make([]domain.OrderCreatedItem, 0, len(order.Items)),
			Timestamp:   now,
		}
		for i := range order.Items {
			event.Items = append(event.Items, domain.OrderCreatedItem{
				ProductID: order.Items[i].ProductID,
				Quantity:  order.Items[i].Quantity,
				Price:     order.Items[i].Price.StringFixed(2),
			})
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.OrderCreatedEventType, order.OrderNumber, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order placed",
		"order_number", order.OrderNumber,
		"user_id", order.UserID,
		"total", order.Total.StringFixed(2),
		"items", len(order.Items),
	)
	return order, nil
}

// UpdateStatus 按生命周期迁移订单状态，非法迁移返回错误。
// 取消订单不回补库存。
func (s *OrderCommandService) UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (*domain.Order, error) {
	target, err := domain.ParseStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	old := order.Status
	if err := order.TransitionTo(ctx, target); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, order.Status); err != nil {
		return nil, err
	}

	event := domain.OrderStatusChangedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		OldStatus:   old,
		NewStatus:   order.Status,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.OrderStatusChangedEventType, order.OrderNumber, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish status change", "order_number", order.OrderNumber, "error", err)
	}
	return order, nil
}

// Cancel 用户取消自己的未发货订单
func (s *OrderCommandService) Cancel(ctx context.Context, cmd CancelOrderCommand) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.UserID != cmd.UserID {
		return nil, domain.ErrForbidden
	}

	old := order.Status
	if err := order.TransitionTo(ctx, domain.OrderStatusCancelled); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, order.Status); err != nil {
		return nil, err
	}

	event := domain.OrderStatusChangedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		OldStatus:   old,
		NewStatus:   order.Status,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.OrderStatusChangedEventType, order.OrderNumber, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish status change", "order_number", order.OrderNumber, "error", err)
	}
	return order, nil
}
