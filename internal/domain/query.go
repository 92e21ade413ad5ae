package domain

import (
	"context"
	"time"
)

// QueryRequest captures user intent originating from CLI or shell integration.
type QueryRequest struct {
	Context          context.Context
	Query            string
	ProviderOverride string
	ModelOverride    string
	NoPane           bool
	Raw              bool
	Timeout          time.Duration
}

// QueryResult is the canonical result propagated back to the CLI.
// Output holds the single line written to stdout: the parsed command on the
// normal path, or the unmodified backend text when Raw was requested.
type QueryResult struct {
	Output      string
	Command     string
	RawResponse string
	Provider    string
	Model       string
	UsedPane    bool
	Raw         bool
}

// QueryService exposes the use-case boundary for handling a query.
type QueryService interface {
	Run(QueryRequest) (QueryResult, error)
}
