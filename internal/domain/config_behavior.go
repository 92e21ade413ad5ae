package domain

import "time"

const (
	defaultPaneMaxBytes   = 8192
	defaultMaxTokens      = 1024
	defaultTimeoutSeconds = 60
)

// DefaultProviderKind returns the configured default backend, falling back
// to OpenAI when the field is empty or unrecognized.
func (c *Config) DefaultProviderKind() ProviderKind {
	kind := ProviderKind(c.Provider.Default)
	if !kind.Valid() {
		return ProviderKindOpenAI
	}
	return kind
}

// BackendFor returns the settings block for the given backend kind.
func (c *Config) BackendFor(kind ProviderKind) (BackendSettings, bool) {
	switch kind {
	case ProviderKindOpenAI:
		return c.Provider.OpenAI, true
	case ProviderKindAnthropic:
		return c.Provider.Anthropic, true
	default:
		return BackendSettings{}, false
	}
}

// GetPaneMaxBytes returns the pane-capture size cap.
func (c *Config) GetPaneMaxBytes() int {
	if c.Pane.MaxBytes <= 0 {
		return defaultPaneMaxBytes
	}
	return c.Pane.MaxBytes
}

// IsPaneEnabled reports whether pane capture is allowed by configuration.
func (c *Config) IsPaneEnabled() bool {
	return !c.Pane.Disabled
}

// IsHistoryEnabled reports whether invocations should be logged locally.
func (c *Config) IsHistoryEnabled() bool {
	return !c.History.Disabled
}

// GetMaxTokens returns the generation cap for a backend.
func (b BackendSettings) GetMaxTokens() int {
	if b.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return b.MaxTokens
}

// GetTimeout returns the request timeout for a backend. A finite timeout is
// always returned so a hung backend cannot wedge the invoking shell.
func (b BackendSettings) GetTimeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}
