package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/storeadmin/internal/app"
	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/storage"
	"github.com/polkiloo/storeadmin/internal/test"
)

type backendStub struct {
	*test.MemoryStore
}

func (backendStub) HealthCheck(context.Context) error { return nil }
func (backendStub) Close() error                      { return nil }

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:       ":0",
		DatabaseURI:      "sqlite://stub",
		WebhookSecret:    "whsec_test",
		WebhookTolerance: time.Minute,
		AdminToken:       "admin",
		ShutdownTimeout:  time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := test.NewMemoryStore()
	store.AddOrder(model.Order{ID: "O1", StoreID: "S1"})

	var facade *app.StoreFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(fx.Annotate(backendStub{store}, fx.As(new(storage.Backend)))),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected store facade instance")
	}

	orders, err := facade.Orders(context.Background(), "S1")
	if err != nil || len(orders) != 1 {
		t.Fatalf("expected replaced backend to serve orders, got %v err=%v", orders, err)
	}
}
