package repository

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByStore(ctx context.Context, storeID string) ([]model.Order, error)
	// Fulfill marks the order paid and archives its products in one transaction.
	// A second call for a paid order leaves address and phone untouched and
	// reports AlreadyPaid; product archival is applied on every call.
	Fulfill(ctx context.Context, id string, details model.PaymentDetails) (*model.Fulfillment, error)
}
