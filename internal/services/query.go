// Package services holds the use-case orchestration.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/ports"
)

// QueryService runs the context-to-command pipeline. The stages (capture,
// build, dispatch, parse) are strictly sequential with one suspension point,
// the provider call, and no retries: the operator re-runs the command to
// retry, keeping cost predictable.
type QueryService struct {
	ConfigProvider ports.ConfigProvider
	PaneCapturer   ports.PaneCapturer
	PromptBuilder  ports.PromptBuilder
	Factory        ports.ProviderFactory
	Parser         ports.CommandParser
	History        ports.HistoryRepository
	Logger         *zap.Logger
}

// Run processes a single natural-language query.
func (s *QueryService) Run(req domain.QueryRequest) (domain.QueryResult, error) {
	if s.ConfigProvider == nil || s.PaneCapturer == nil || s.PromptBuilder == nil ||
		s.Factory == nil || s.Parser == nil || s.Logger == nil {
		return domain.QueryResult{}, errors.New("services.QueryService dependencies not satisfied")
	}
	if strings.TrimSpace(req.Query) == "" {
		return domain.QueryResult{}, domain.NewConfigError("empty query: tell me what you want to do")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.QueryResult{}, err
	}

	// CaptureContext: cannot fail; an empty pane is a valid state.
	pane := s.PaneCapturer.Capture(ctx, cfg, req)

	// BuildPrompt: cannot fail; unknown placeholders stay verbatim.
	prompt := s.PromptBuilder.Build(cfg, req, pane)

	// Dispatch: the only fallible stage besides configuration resolution.
	providerCfg, err := s.ConfigProvider.ResolveProvider(cfg, req)
	if err != nil {
		return domain.QueryResult{}, err
	}
	provider, err := s.Factory.ForConfig(providerCfg)
	if err != nil {
		return domain.QueryResult{}, err
	}

	s.Logger.Debug("dispatching prompt",
		zap.String("provider", provider.Name()),
		zap.String("model", providerCfg.ModelID),
		zap.Bool("pane", pane.Present()),
		zap.Bool("raw", req.Raw),
	)

	start := time.Now()
	rawText, err := provider.Complete(ctx, prompt)
	if err != nil {
		return domain.QueryResult{}, err
	}
	s.Logger.Debug("provider responded",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(rawText)),
	)

	result := domain.QueryResult{
		RawResponse: rawText,
		Provider:    provider.Name(),
		Model:       providerCfg.ModelID,
		UsedPane:    pane.Present(),
		Raw:         req.Raw,
	}

	// ParseOrPassthrough: raw mode surfaces the backend text untouched so
	// prompts can be validated independent of parsing.
	if req.Raw {
		result.Output = rawText
	} else {
		result.Command = s.Parser.Parse(rawText)
		result.Output = result.Command
	}

	s.record(cfg, req, result)
	return result, nil
}

// record logs the invocation best-effort; history must never fail a query.
func (s *QueryService) record(cfg domain.Config, req domain.QueryRequest, result domain.QueryResult) {
	if s.History == nil || !cfg.IsHistoryEnabled() {
		return
	}
	err := s.History.Save(domain.HistoryRecord{
		Timestamp: time.Now(),
		Query:     req.Query,
		Command:   result.Command,
		Provider:  result.Provider,
		Model:     result.Model,
		Raw:       result.Raw,
	})
	if err != nil {
		s.Logger.Warn("history save failed", zap.Error(err))
	}
}

var _ domain.QueryService = (*QueryService)(nil)
