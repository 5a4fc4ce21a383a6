package stripe

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storeadmin/internal/config"
)

// Module exposes webhook verification and decoding to fx graph.
var Module = fx.Provide(newVerifier, NewDecoder)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newVerifier(p verifierParams) (*Verifier, error) {
	return NewVerifier(p.Config.WebhookSecret, p.Config.WebhookTolerance)
}
