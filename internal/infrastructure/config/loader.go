// Package config loads YAML configuration and resolves the effective
// provider selection for an invocation.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/ports"
)

// Environment variables recognized by the loader.
const (
	EnvConfigPath = "ASK_CONFIG"
	EnvProvider   = "ASK_PROVIDER"
	EnvModel      = "ASK_MODEL"
	EnvEndpoint   = "ASK_ENDPOINT"
)

// FileLoader loads configuration from ~/.ask/config.yaml (overridable via
// ASK_CONFIG). A default file is written on first use.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path means the default
// location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, domain.NewConfigError("create config dir %s: %v", filepath.Dir(path), err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, domain.NewConfigError("write default config %s: %v", path, err)
			}
			return cfg, nil
		}
		return domain.Config{}, domain.NewConfigError("read config %s: %v", path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, domain.NewConfigError("parse config %s: %v", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// ResolveProvider implements ports.ConfigProvider. Precedence for the
// backend and model: CLI flag, then environment, then the config file. The
// credential itself is read from the backend's configured environment
// variable; its absence is reported later by the provider factory, before
// any request is issued.
func (l *FileLoader) ResolveProvider(cfg domain.Config, req domain.QueryRequest) (domain.ProviderConfig, error) {
	name := pick(req.ProviderOverride, os.Getenv(EnvProvider))
	kind := cfg.DefaultProviderKind()
	if name != "" {
		kind = domain.ProviderKind(name)
		if !kind.Valid() {
			return domain.ProviderConfig{}, domain.NewConfigError("unknown provider %q (want openai or anthropic)", name)
		}
	}

	settings, ok := cfg.BackendFor(kind)
	if !ok {
		return domain.ProviderConfig{}, domain.NewConfigError("no settings for provider %q", kind)
	}

	resolved := domain.ProviderConfig{
		Kind:       kind,
		Endpoint:   pick(os.Getenv(EnvEndpoint), settings.Endpoint, defaultEndpoint(kind)),
		ModelID:    pick(req.ModelOverride, os.Getenv(EnvModel), settings.ModelID, defaultModelID(kind)),
		AuthEnvVar: pick(settings.AuthEnvVar, defaultAuthEnvVar(kind)),
		MaxTokens:  settings.GetMaxTokens(),
		Timeout:    settings.GetTimeout(),
	}
	if req.Timeout > 0 {
		resolved.Timeout = req.Timeout
	}
	resolved.APIKey = os.Getenv(resolved.AuthEnvVar)

	return resolved, nil
}

// Path returns the config file location after override resolution.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".ask", "config.yaml")
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Provider: domain.ProviderSettings{
			Default: string(domain.ProviderKindOpenAI),
			OpenAI: domain.BackendSettings{
				Endpoint:   "https://api.openai.com/v1/chat/completions",
				ModelID:    "gpt-4o-mini",
				AuthEnvVar: "OPENAI_API_KEY",
				MaxTokens:  1024,
			},
			Anthropic: domain.BackendSettings{
				Endpoint:   "https://api.anthropic.com/v1/messages",
				ModelID:    "claude-sonnet-4-20250514",
				AuthEnvVar: "ANTHROPIC_API_KEY",
				MaxTokens:  1024,
			},
		},
	}
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Provider.Default == "" {
		cfg.Provider.Default = string(domain.ProviderKindOpenAI)
	}
	if cfg.Provider.OpenAI.AuthEnvVar == "" {
		cfg.Provider.OpenAI.AuthEnvVar = "OPENAI_API_KEY"
	}
	if cfg.Provider.Anthropic.AuthEnvVar == "" {
		cfg.Provider.Anthropic.AuthEnvVar = "ANTHROPIC_API_KEY"
	}
	return cfg
}

func defaultEndpoint(kind domain.ProviderKind) string {
	switch kind {
	case domain.ProviderKindAnthropic:
		return "https://api.anthropic.com/v1/messages"
	default:
		return "https://api.openai.com/v1/chat/completions"
	}
}

func defaultModelID(kind domain.ProviderKind) string {
	switch kind {
	case domain.ProviderKindAnthropic:
		return "claude-sonnet-4-20250514"
	default:
		return "gpt-4o-mini"
	}
}

func defaultAuthEnvVar(kind domain.ProviderKind) string {
	switch kind {
	case domain.ProviderKindAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
