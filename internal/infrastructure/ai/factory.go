// Package ai implements the chat-completion backends. Both variants share
// one contract: send a (system, user) message pair, return the assistant's
// raw text. They differ only in wire shape and authentication, so the
// orchestrator never needs to know which one it is talking to.
package ai

import (
	"net/http"

	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/ports"
)

// Factory creates provider instances for resolved backend configurations.
// One HTTP client is shared across providers; per-request deadlines come
// from the provider config, not the client.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a provider factory.
func NewFactory() *Factory {
	return &Factory{httpClient: &http.Client{}}
}

// ForConfig builds the provider for cfg. A missing credential is rejected
// here so no network call is ever attempted without one.
func (f *Factory) ForConfig(cfg domain.ProviderConfig) (ports.Provider, error) {
	if cfg.APIKey == "" {
		return nil, domain.NewConfigError("missing API key: set %s", cfg.AuthEnvVar)
	}

	switch cfg.Kind {
	case domain.ProviderKindOpenAI:
		return newOpenAIProvider(cfg, f.httpClient), nil
	case domain.ProviderKindAnthropic:
		return newAnthropicProvider(cfg, f.httpClient), nil
	default:
		return nil, domain.NewConfigError("unsupported provider kind %q", cfg.Kind)
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)
