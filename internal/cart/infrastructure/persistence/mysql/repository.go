package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
)

type cartRepository struct{ db *gorm.DB }

// NewCartRepository 创建购物车仓储实例
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	var model CartModel
	err := r.getDB(ctx).WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toCart(&model), nil
}

func (r *cartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	model := toCartModel(cart)
	if err := r.getDB(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	cart.ID = model.ID
	return nil
}

func (r *cartRepository) SaveItem(ctx context.Context, item *domain.CartItem) error {
	db := r.getDB(ctx)
	model := toCartItemModel(item)
	if model.ID == 0 {
		if err := db.WithContext(ctx).Create(model).Error; err != nil {
			return err
		}
		item.ID = model.ID
		return nil
	}

	return db.WithContext(ctx).
		Model(&CartItemModel{}).
		Where("id = ? AND cart_id = ?", model.ID, model.CartID).
		Updates(map[string]any{
			"quantity":   model.Quantity,
			"updated_at": model.UpdatedAt,
		}).Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID, itemID uint) error {
	res := r.getDB(ctx).WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&CartItemModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLineNotFound
	}
	return nil
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uint) error {
	return r.getDB(ctx).WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&CartItemModel{}).Error
}

func (r *cartRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(contextx.WithTx(ctx, tx))
	})
}

func (r *cartRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
