package domain

import "time"

// ProviderKind identifies a chat-completion backend wire format.
type ProviderKind string

const (
	ProviderKindOpenAI    ProviderKind = "openai"
	ProviderKindAnthropic ProviderKind = "anthropic"
)

// Valid reports whether the kind names a supported backend.
func (k ProviderKind) Valid() bool {
	return k == ProviderKindOpenAI || k == ProviderKindAnthropic
}

// ProviderConfig is the fully resolved backend selection for one invocation.
// It is resolved once from configuration and environment and never mutated
// afterward.
type ProviderConfig struct {
	Kind       ProviderKind
	Endpoint   string
	ModelID    string
	APIKey     string
	AuthEnvVar string
	MaxTokens  int
	Timeout    time.Duration
}
