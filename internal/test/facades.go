package test

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// WebhookFacadeStub records webhook calls and returns configured results.
type WebhookFacadeStub struct {
	ProcessFn func(context.Context, []byte, string) (*model.Outcome, error)

	Payloads   [][]byte
	Signatures []string
}

// ProcessWebhook delegates to ProcessFn or returns an ignored outcome.
func (s *WebhookFacadeStub) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*model.Outcome, error) {
	s.Payloads = append(s.Payloads, payload)
	s.Signatures = append(s.Signatures, signature)
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, payload, signature)
	}
	return &model.Outcome{Action: model.OutcomeIgnored}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn func(context.Context, string) ([]model.Order, error)
	OrderFn  func(context.Context, string, string) (*model.Order, error)
}

// Orders returns predefined orders for the store.
func (s OrderFacadeStub) Orders(ctx context.Context, storeID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, storeID)
	}
	return nil, nil
}

// Order returns a predefined order or a stub built from the identifiers.
func (s OrderFacadeStub) Order(ctx context.Context, storeID, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, storeID, orderID)
	}
	return &model.Order{ID: orderID, StoreID: storeID}, nil
}

// ProductFacadeStub provides controllable behaviour for product endpoints.
type ProductFacadeStub struct {
	ProductFn func(context.Context, string, string) (*model.Product, error)
}

// Product returns a predefined product or one built from the identifiers.
func (s ProductFacadeStub) Product(ctx context.Context, storeID, productID string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, storeID, productID)
	}
	return &model.Product{ID: productID, StoreID: storeID}, nil
}

// HealthFacadeStub reports the configured error.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns Err.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// StoreFacadeStub aggregates facade stubs for router tests.
type StoreFacadeStub struct {
	*WebhookFacadeStub
	OrderFacadeStub
	ProductFacadeStub
	HealthFacadeStub
}
