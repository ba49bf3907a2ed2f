package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
)

type productRepository struct{ db *gorm.DB }

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var model ProductModel
	err := r.getDB(ctx).WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toProduct(&model), nil
}

func (r *productRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, int64, error) {
	db := r.getDB(ctx).WithContext(ctx).Model(&ProductModel{}).Where("active = ?", true)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*ProductModel
	if err := db.Order("id").Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProduct(m))
	}
	return products, total, nil
}

// DecrementStock 条件更新保证并发结算下已提交库存永不为负。
func (r *productRepository) DecrementStock(ctx context.Context, id uint, qty int) (bool, error) {
	res := r.getDB(ctx).WithContext(ctx).
		Model(&ProductModel{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *productRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
