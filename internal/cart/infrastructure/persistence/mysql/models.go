package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

// CartModel MySQL 购物车表映射
type CartModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
	UserID    string          `gorm:"column:user_id;type:varchar(64);uniqueIndex;not null"`
	Items     []CartItemModel `gorm:"foreignKey:CartID"`
}

func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel MySQL 购物车条目表映射，(cart_id, product_id) 唯一
type CartItemModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
	CartID    uint            `gorm:"column:cart_id;uniqueIndex:idx_cart_product;not null"`
	ProductID uint            `gorm:"column:product_id;uniqueIndex:idx_cart_product;not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

func toCartModel(cart *domain.Cart) *CartModel {
	if cart == nil {
		return nil
	}
	return &CartModel{
		ID:        cart.ID,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
		UserID:    cart.UserID,
	}
}

func toCartItemModel(item *domain.CartItem) *CartItemModel {
	return &CartItemModel{
		ID:        item.ID,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
}

func toCart(model *CartModel) *domain.Cart {
	if model == nil {
		return nil
	}
	cart := &domain.Cart{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		UserID:    model.UserID,
		Items:     make([]domain.CartItem, 0, len(model.Items)),
	}
	for i := range model.Items {
		m := &model.Items[i]
		cart.Items = append(cart.Items, domain.CartItem{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
			CartID:    m.CartID,
			ProductID: m.ProductID,
			Quantity:  m.Quantity,
			Price:     m.Price,
		})
	}
	return cart
}
