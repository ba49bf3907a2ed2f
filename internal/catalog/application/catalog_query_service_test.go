package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
)

type fakeProductRepository struct {
	products   map[uint]*domain.Product
	lastOffset int
	lastLimit  int
}

func (r *fakeProductRepository) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepository) List(_ context.Context, offset, limit int) ([]*domain.Product, int64, error) {
	r.lastOffset = offset
	r.lastLimit = limit
	list := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	return list, int64(len(list)), nil
}

func (r *fakeProductRepository) DecrementStock(_ context.Context, id uint, qty int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func TestGetProduct(t *testing.T) {
	repo := &fakeProductRepository{products: map[uint]*domain.Product{
		1: {ID: 1, Name: "widget", Price: decimal.NewFromFloat(9.99), Stock: 3, Active: true},
	}}
	svc := NewCatalogQueryService(repo)

	product, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "widget", product.Name)

	_, err = svc.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListProductsClampsPaging(t *testing.T) {
	repo := &fakeProductRepository{products: map[uint]*domain.Product{}}
	svc := NewCatalogQueryService(repo)

	_, _, err := svc.ListProducts(context.Background(), -5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 20, repo.lastLimit)

	_, _, err = svc.ListProducts(context.Background(), 10, 500)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastOffset)
	assert.Equal(t, 20, repo.lastLimit)
}
