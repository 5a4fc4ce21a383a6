package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// OrderUseCase serves read-only order views for store dashboards.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// ListByStore returns store orders newest first.
func (u *OrderUseCase) ListByStore(ctx context.Context, storeID string) ([]model.Order, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.ListByStore(ctx, storeID)
}

// Get returns a single order, hiding orders that belong to other stores.
func (u *OrderUseCase) Get(ctx context.Context, storeID, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.StoreID != storeID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}
