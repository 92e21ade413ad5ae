package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/infrastructure/ai"
	"github.com/askshell/ask/internal/infrastructure/parse"
	"github.com/askshell/ask/internal/infrastructure/prompt"
	"github.com/askshell/ask/internal/ports"
)

type fakeConfigProvider struct {
	cfg         domain.Config
	provider    domain.ProviderConfig
	resolveErr  error
	loadErr     error
	resolveSeen bool
}

func (f *fakeConfigProvider) Load(context.Context) (domain.Config, error) {
	return f.cfg, f.loadErr
}

func (f *fakeConfigProvider) ResolveProvider(domain.Config, domain.QueryRequest) (domain.ProviderConfig, error) {
	f.resolveSeen = true
	return f.provider, f.resolveErr
}

type fakeCapturer struct {
	pane domain.PaneContext
}

func (f *fakeCapturer) Capture(context.Context, domain.Config, domain.QueryRequest) domain.PaneContext {
	return f.pane
}

type fakeBuilder struct {
	prompt domain.ResolvedPrompt
}

func (f *fakeBuilder) Build(domain.Config, domain.QueryRequest, domain.PaneContext) domain.ResolvedPrompt {
	return f.prompt
}

type fakeProvider struct {
	name string
	text string
	err  error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Complete(context.Context, domain.ResolvedPrompt) (string, error) {
	return f.text, f.err
}

type fakeFactory struct {
	provider ports.Provider
	err      error
}

func (f *fakeFactory) ForConfig(domain.ProviderConfig) (ports.Provider, error) {
	return f.provider, f.err
}

// spyParser records whether parsing ran at all.
type spyParser struct {
	called bool
	out    string
}

func (s *spyParser) Parse(raw string) string {
	s.called = true
	if s.out != "" {
		return s.out
	}
	return raw
}

type memoryHistory struct {
	records []domain.HistoryRecord
	saveErr error
}

func (m *memoryHistory) Save(rec domain.HistoryRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memoryHistory) Records(int, string) ([]domain.HistoryRecord, error) { return m.records, nil }
func (m *memoryHistory) Clear() error                                        { return nil }
func (m *memoryHistory) ExportJSON(string) error                             { return nil }
func (m *memoryHistory) Path() string                                        { return ":memory:" }

func newTestService(factory ports.ProviderFactory, parser ports.CommandParser, history ports.HistoryRepository) *QueryService {
	return &QueryService{
		ConfigProvider: &fakeConfigProvider{},
		PaneCapturer:   &fakeCapturer{},
		PromptBuilder:  &fakeBuilder{},
		Factory:        factory,
		Parser:         parser,
		History:        history,
		Logger:         zap.NewNop(),
	}
}

func TestRunRejectsEmptyQuery(t *testing.T) {
	svc := newTestService(&fakeFactory{}, &spyParser{}, nil)

	_, err := svc.Run(domain.QueryRequest{Query: "   "})

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindConfig, domain.KindOf(err))
}

func TestRunParsesBackendText(t *testing.T) {
	parser := &spyParser{out: "ls -la"}
	svc := newTestService(
		&fakeFactory{provider: &fakeProvider{name: "openai", text: "```ls -la```"}},
		parser,
		nil,
	)

	result, err := svc.Run(domain.QueryRequest{Query: "list files"})

	require.NoError(t, err)
	assert.True(t, parser.called)
	assert.Equal(t, "ls -la", result.Output)
	assert.Equal(t, "ls -la", result.Command)
	assert.Equal(t, "```ls -la```", result.RawResponse)
	assert.Equal(t, "openai", result.Provider)
}

func TestRunRawModeBypassesParser(t *testing.T) {
	parser := &spyParser{}
	rawText := "Here is your command:\n```ls -la```\nEnjoy."
	svc := newTestService(
		&fakeFactory{provider: &fakeProvider{name: "openai", text: rawText}},
		parser,
		nil,
	)

	result, err := svc.Run(domain.QueryRequest{Query: "list files", Raw: true})

	require.NoError(t, err)
	assert.False(t, parser.called, "raw mode must not invoke the parser")
	assert.Equal(t, rawText, result.Output)
	assert.Empty(t, result.Command)
}

func TestRunTransportFailureSkipsParser(t *testing.T) {
	parser := &spyParser{}
	svc := newTestService(
		&fakeFactory{provider: &fakeProvider{
			name: "openai",
			err:  domain.NewTransportError("connection refused", nil),
		}},
		parser,
		nil,
	)

	_, err := svc.Run(domain.QueryRequest{Query: "list files"})

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindTransport, domain.KindOf(err))
	assert.False(t, parser.called, "nothing to parse when dispatch fails")
}

func TestRunFactoryErrorStopsPipeline(t *testing.T) {
	parser := &spyParser{}
	svc := newTestService(
		&fakeFactory{err: domain.NewConfigError("no credential")},
		parser,
		nil,
	)

	_, err := svc.Run(domain.QueryRequest{Query: "list files"})

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindConfig, domain.KindOf(err))
	assert.False(t, parser.called)
}

func TestRunRecordsHistory(t *testing.T) {
	history := &memoryHistory{}
	svc := newTestService(
		&fakeFactory{provider: &fakeProvider{name: "openai", text: "```pwd```"}},
		&spyParser{out: "pwd"},
		history,
	)

	_, err := svc.Run(domain.QueryRequest{Query: "where am i"})

	require.NoError(t, err)
	require.Len(t, history.records, 1)
	assert.Equal(t, "where am i", history.records[0].Query)
	assert.Equal(t, "pwd", history.records[0].Command)
}

func TestRunHistoryFailureDoesNotFailQuery(t *testing.T) {
	history := &memoryHistory{saveErr: domain.NewConfigError("disk full")}
	svc := newTestService(
		&fakeFactory{provider: &fakeProvider{name: "openai", text: "pwd"}},
		&spyParser{},
		history,
	)

	_, err := svc.Run(domain.QueryRequest{Query: "where am i"})

	assert.NoError(t, err)
}

func TestRunHistoryDisabledByConfig(t *testing.T) {
	history := &memoryHistory{}
	svc := newTestService(
		&fakeFactory{provider: &fakeProvider{name: "openai", text: "pwd"}},
		&spyParser{},
		history,
	)
	svc.ConfigProvider = &fakeConfigProvider{
		cfg: domain.Config{History: domain.HistorySettings{Disabled: true}},
	}

	_, err := svc.Run(domain.QueryRequest{Query: "where am i"})

	require.NoError(t, err)
	assert.Empty(t, history.records)
}

// TestRunEndToEnd wires the real prompt engine, HTTP client, and parser
// against a stub completion endpoint.
func TestRunEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"` + "```git reset --soft HEAD~1```" + `"}}]}`))
	}))
	defer server.Close()

	svc := &QueryService{
		ConfigProvider: &fakeConfigProvider{
			provider: domain.ProviderConfig{
				Kind:     domain.ProviderKindOpenAI,
				Endpoint: server.URL,
				ModelID:  "gpt-4o-mini",
				APIKey:   "sk-test",
			},
		},
		PaneCapturer:  &fakeCapturer{},
		PromptBuilder: prompt.NewEngine(),
		Factory:       ai.NewFactory(),
		Parser:        parse.NewCommandParser(),
		Logger:        zap.NewNop(),
	}

	result, err := svc.Run(domain.QueryRequest{Query: "how can I undo git commit"})

	require.NoError(t, err)
	assert.Equal(t, "git reset --soft HEAD~1", result.Output)
	assert.False(t, result.UsedPane)
}
