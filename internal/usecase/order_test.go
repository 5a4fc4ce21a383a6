package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	testhelpers "github.com/polkiloo/storeadmin/internal/test"
)

func TestOrderUseCaseListByStore(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	now := time.Now()
	store.AddOrder(model.Order{ID: "old", StoreID: "S1", CreatedAt: now.Add(-time.Hour)})
	store.AddOrder(model.Order{ID: "new", StoreID: "S1", CreatedAt: now})
	store.AddOrder(model.Order{ID: "other", StoreID: "S2", CreatedAt: now})

	uc := NewOrderUseCase(store)
	orders, err := uc.ListByStore(context.Background(), "S1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "new" || orders[1].ID != "old" {
		t.Fatalf("unexpected orders %+v", orders)
	}

	if _, err := uc.ListByStore(context.Background(), "  "); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for blank store, got %v", err)
	}
}

func TestOrderUseCaseGetChecksStore(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	store.AddOrder(model.Order{ID: "O1", StoreID: "S1"})
	uc := NewOrderUseCase(store)

	order, err := uc.Get(context.Background(), "S1", "O1")
	if err != nil || order.ID != "O1" {
		t.Fatalf("unexpected result %+v, %v", order, err)
	}

	if _, err := uc.Get(context.Background(), "S2", "O1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected foreign order to be hidden, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "S1", "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCasePropagatesStorageErrors(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	store.Err = errors.New("db down")
	uc := NewOrderUseCase(store)

	if _, err := uc.ListByStore(context.Background(), "S1"); err == nil {
		t.Fatal("expected storage error")
	}
	if _, err := uc.Get(context.Background(), "S1", "O1"); err == nil {
		t.Fatal("expected storage error")
	}
}
