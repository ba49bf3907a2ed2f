package domain

import (
	"context"
	"time"
)

// 购物车事件主题
const (
	CartCreatedEventType     = "cart.created"
	CartItemAddedEventType   = "cart.item.added"
	CartItemUpdatedEventType = "cart.item.updated"
	CartItemRemovedEventType = "cart.item.removed"
	CartClearedEventType     = "cart.cleared"
)

// EventPublisher 购物车事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
	// PublishInTx 在给定数据库事务内写入事件（Outbox 模式）
	PublishInTx(ctx context.Context, tx any, topic string, key string, event any) error
}

// CartCreatedEvent 购物车创建事件
type CartCreatedEvent struct {
	CartID    uint      `json:"cart_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemAddedEvent 购物车添加商品事件
type CartItemAddedEvent struct {
	CartID    uint      `json:"cart_id"`
	UserID    string    `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemUpdatedEvent 购物车条目数量变更事件
type CartItemUpdatedEvent struct {
	CartID    uint      `json:"cart_id"`
	UserID    string    `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemRemovedEvent 购物车移除商品事件
type CartItemRemovedEvent struct {
	CartID    uint      `json:"cart_id"`
	UserID    string    `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CartClearedEvent 购物车清空事件
type CartClearedEvent struct {
	CartID    uint      `json:"cart_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}
