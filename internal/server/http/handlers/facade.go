package handlers

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// WebhookFacade processes signed payment provider notifications.
type WebhookFacade interface {
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (*model.Outcome, error)
}

// OrderFacade exposes read-only order views.
type OrderFacade interface {
	Orders(ctx context.Context, storeID string) ([]model.Order, error)
	Order(ctx context.Context, storeID, orderID string) (*model.Order, error)
}

// ProductFacade exposes catalog lookups.
type ProductFacade interface {
	Product(ctx context.Context, storeID, productID string) (*model.Product, error)
}

// HealthFacade reports readiness of backing services.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	WebhookFacade
	OrderFacade
	ProductFacade
	HealthFacade
}
