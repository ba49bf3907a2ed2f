// Package domain 订单领域模型
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/fsm"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var (
	// ErrEmptyCart 购物车为空，无法结算
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrForbidden 无权操作该订单
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidStatus 非法的订单状态值
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidTransition 当前状态下不允许的状态迁移
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ParseStatus 解析状态字符串
func ParseStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// statusEvents 目标状态与状态机事件的对应关系
var statusEvents = map[OrderStatus]string{
	OrderStatusProcessing: "PROCESS",
	OrderStatusShipped:    "SHIP",
	OrderStatusDelivered:  "DELIVER",
	OrderStatusCancelled:  "CANCEL",
}

// ShippingInfo 收货信息
type ShippingInfo struct {
	Address    string
	City       string
	PostalCode string
	Phone      string
}

// Order 订单聚合根。从购物车原子创建，条目与金额创建后不可变，
// 只有状态沿生命周期迁移。
type Order struct {
	ID          uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OrderNumber string
	UserID      string
	Status      OrderStatus
	Total       decimal.Decimal
	Shipping    ShippingInfo
	Items       []OrderItem
	fsm         *fsm.Machine[string, string]
}

// OrderItem 订单条目，从购物车条目复制数量与快照价，创建后不再变更。
type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// LineTotal 条目小计
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrder 创建订单，初始状态为 pending，时间戳由调用方显式给定。
func NewOrder(orderNumber, userID string, total decimal.Decimal, shipping ShippingInfo, items []OrderItem, now time.Time) *Order {
	o := &Order{
		OrderNumber: orderNumber,
		UserID:      userID,
		Status:      OrderStatusPending,
		Total:       total,
		Shipping:    shipping,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	o.initFSM()
	return o
}

func (o *Order) initFSM() {
	m := fsm.NewMachine[string, string](string(o.Status))
	m.AddTransition(string(OrderStatusPending), "PROCESS", string(OrderStatusProcessing))
	m.AddTransition(string(OrderStatusProcessing), "SHIP", string(OrderStatusShipped))
	m.AddTransition(string(OrderStatusShipped), "DELIVER", string(OrderStatusDelivered))
	m.AddTransition(string(OrderStatusPending), "CANCEL", string(OrderStatusCancelled))
	m.AddTransition(string(OrderStatusProcessing), "CANCEL", string(OrderStatusCancelled))
	o.fsm = m
}

// InitFSM 确保状态机已初始化（从仓储还原后调用）
func (o *Order) InitFSM() {
	if o.fsm == nil {
		o.initFSM()
	}
}

// TransitionTo 迁移到目标状态，非法迁移返回错误。
// delivered 与 cancelled 为终态，没有出边。
func (o *Order) TransitionTo(ctx context.Context, target OrderStatus) error {
	o.InitFSM()
	event, ok := statusEvents[target]
	if !ok {
		return ErrInvalidStatus
	}
	if err := o.fsm.Trigger(ctx, event); err != nil {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.Status, target)
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// CanBeCancelled 发货前可取消
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// TotalItems 商品件数合计
func (o *Order) TotalItems() int {
	var n int
	for i := range o.Items {
		n += o.Items[i].Quantity
	}
	return n
}

// NumberGenerator 订单号生成策略。实现必须保证抗冲突且与已有
// 订单行数无关。
type NumberGenerator interface {
	Next() string
}
