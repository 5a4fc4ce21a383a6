package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storeadmin/internal/adapter/stripe"
	"github.com/polkiloo/storeadmin/internal/app"
	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/logger"
	"github.com/polkiloo/storeadmin/internal/server/http/handlers"
	"github.com/polkiloo/storeadmin/internal/server/http/router"
	"github.com/polkiloo/storeadmin/internal/storage"
	"github.com/polkiloo/storeadmin/internal/usecase"
)

// Module assembles the application graph. opts are applied last so tests can replace providers.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		stripe.Module,
		usecase.Module,
		fx.Provide(
			func(v *stripe.Verifier) app.WebhookVerifier { return v },
			func(d *stripe.Decoder) app.EventDecoder { return d },
			func(b storage.Backend) app.HealthChecker { return b },
			func(f *app.StoreFacade) handlers.StoreFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
