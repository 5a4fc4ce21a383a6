package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// ProductUseCase exposes catalog lookups so operators can confirm archival
// after checkout.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Get returns a product of the store. Products of other stores are reported as missing.
func (u *ProductUseCase) Get(ctx context.Context, storeID, productID string) (*model.Product, error) {
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.StoreID != storeID {
		return nil, domainErrors.ErrNotFound
	}
	return product, nil
}
