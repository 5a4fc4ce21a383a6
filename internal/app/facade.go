package app

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/usecase"
)

// WebhookVerifier authenticates raw webhook payloads.
type WebhookVerifier interface {
	Verify(payload []byte, header string) error
}

// EventDecoder turns verified payloads into payment events.
type EventDecoder interface {
	Decode(payload []byte) (model.PaymentEvent, error)
}

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade is the single entry point used by the HTTP layer.
type StoreFacade struct {
	verifier    WebhookVerifier
	decoder     EventDecoder
	fulfillment *usecase.FulfillmentUseCase
	orders      *usecase.OrderUseCase
	products    *usecase.ProductUseCase
	health      HealthChecker
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	verifier WebhookVerifier,
	decoder EventDecoder,
	fulfillment *usecase.FulfillmentUseCase,
	orders *usecase.OrderUseCase,
	products *usecase.ProductUseCase,
	health HealthChecker,
) *StoreFacade {
	return &StoreFacade{
		verifier:    verifier,
		decoder:     decoder,
		fulfillment: fulfillment,
		orders:      orders,
		products:    products,
		health:      health,
	}
}

// ProcessWebhook verifies, decodes and reconciles one notification. Errors keep
// their typed form so callers can map them to transport statuses.
func (f *StoreFacade) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*model.Outcome, error) {
	if err := f.verifier.Verify(payload, signature); err != nil {
		return nil, err
	}
	event, err := f.decoder.Decode(payload)
	if err != nil {
		return nil, err
	}
	return f.fulfillment.Reconcile(ctx, event)
}

// Orders lists the store's orders newest first.
func (f *StoreFacade) Orders(ctx context.Context, storeID string) ([]model.Order, error) {
	return f.orders.ListByStore(ctx, storeID)
}

// Order returns one order of the store.
func (f *StoreFacade) Order(ctx context.Context, storeID, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, storeID, orderID)
}

// Product returns one catalog product of the store.
func (f *StoreFacade) Product(ctx context.Context, storeID, productID string) (*model.Product, error) {
	return f.products.Get(ctx, storeID, productID)
}

// HealthCheck reports whether the storage backend is reachable.
func (f *StoreFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
