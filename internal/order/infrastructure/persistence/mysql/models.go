// Package mysql 订单仓储的 GORM 实现
package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/order/domain"
)

// OrderModel 订单数据库模型
type OrderModel struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"`
	OrderNumber     string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID          string          `gorm:"type:varchar(64);index;not null"`
	Status          string          `gorm:"type:varchar(20);index;not null"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingAddress string          `gorm:"type:varchar(255);not null"`
	ShippingCity    string          `gorm:"type:varchar(100);not null"`
	ShippingPostal  string          `gorm:"type:varchar(20);not null"`
	ShippingPhone   string          `gorm:"type:varchar(32);not null"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单条目数据库模型
type OrderItemModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     uint            `gorm:"index;not null"`
	ProductID   uint            `gorm:"not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

func toOrder(m *OrderModel) *domain.Order {
	items := make([]domain.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, domain.OrderItem{
			ID:          m.Items[i].ID,
			OrderID:     m.Items[i].OrderID,
			ProductID:   m.Items[i].ProductID,
			ProductName: m.Items[i].ProductName,
			Quantity:    m.Items[i].Quantity,
			Price:       m.Items[i].Price,
		})
	}
	o := &domain.Order{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		OrderNumber: m.OrderNumber,
		UserID:      m.UserID,
		Status:      domain.OrderStatus(m.Status),
		Total:       m.Total,
		Shipping: domain.ShippingInfo{
			Address:    m.ShippingAddress,
			City:       m.ShippingCity,
			PostalCode: m.ShippingPostal,
			Phone:      m.ShippingPhone,
		},
		Items: items,
	}
	o.InitFSM()
	return o
}

func toOrderModel(o *domain.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, OrderItemModel{
			ID:          o.Items[i].ID,
			OrderID:     o.Items[i].OrderID,
			ProductID:   o.Items[i].ProductID,
			ProductName: o.Items[i].ProductName,
			Quantity:    o.Items[i].Quantity,
			Price:       o.Items[i].Price,
		})
	}
	return &OrderModel{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Status:          string(o.Status),
		Total:           o.Total,
		ShippingAddress: o.Shipping.Address,
		ShippingCity:    o.Shipping.City,
		ShippingPostal:  o.Shipping.PostalCode,
		ShippingPhone:   o.Shipping.Phone,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
