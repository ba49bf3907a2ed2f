package domain

import (
	"context"
	"time"
)

// 订单事件主题
const (
	OrderCreatedEventType       = "order.created"
	OrderStatusChangedEventType = "order.status.changed"
)

// EventPublisher 订单事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
	// PublishInTx 在给定数据库事务内写入事件（Outbox 模式）
	PublishInTx(ctx context.Context, tx any, topic string, key string, event any) error
}

// OrderCreatedItem 创建事件中的订单条目快照
type OrderCreatedItem struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderCreatedEvent 订单创建事件
type OrderCreatedEvent struct {
	OrderID     uint               `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	UserID      string             `json:"user_id"`
	Total       string             `json:"total"`
	Items       []OrderCreatedItem `json:"items"`
	Timestamp   time.Time          `json:"timestamp"`
}

// OrderStatusChangedEvent 订单状态变更事件
type OrderStatusChangedEvent struct {
	OrderID     uint        `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	UserID      string      `json:"user_id"`
	OldStatus   OrderStatus `json:"old_status"`
	NewStatus   OrderStatus `json:"new_status"`
	Timestamp   time.Time   `json:"timestamp"`
}
