// Package ports defines the interfaces between the application core and the
// infrastructure adapters. The query service depends only on these
// abstractions, so backends and collaborators can be swapped without
// touching the orchestration logic.
package ports

import (
	"context"

	"github.com/askshell/ask/internal/domain"
)

// ConfigProvider loads configuration and resolves the effective backend
// selection for one invocation.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
	ResolveProvider(domain.Config, domain.QueryRequest) (domain.ProviderConfig, error)
}

// PaneCapturer produces the pane context from the execution environment.
// Capture never fails: an absent pane is a valid, expected state.
type PaneCapturer interface {
	Capture(context.Context, domain.Config, domain.QueryRequest) domain.PaneContext
}

// PromptBuilder selects a template variant and substitutes placeholders,
// producing the (system, user) pair sent to the provider. Building never
// fails: unknown placeholders are preserved verbatim.
type PromptBuilder interface {
	Build(domain.Config, domain.QueryRequest, domain.PaneContext) domain.ResolvedPrompt
}

// Provider is the single capability shared by all backends: send a
// (system, user) message pair to a chat-style completion endpoint and return
// the assistant's raw text.
type Provider interface {
	Name() string
	Complete(context.Context, domain.ResolvedPrompt) (string, error)
}

// ProviderFactory builds a Provider for a resolved backend configuration.
// It rejects configurations with a missing credential before any network
// call is attempted.
type ProviderFactory interface {
	ForConfig(domain.ProviderConfig) (Provider, error)
}

// CommandParser extracts a runnable command line from raw backend text.
// Parsing never fails: when no command can be isolated confidently, the
// trimmed raw text is returned as a best effort.
type CommandParser interface {
	Parse(raw string) string
}

// HistoryRepository persists the local invocation log.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}
