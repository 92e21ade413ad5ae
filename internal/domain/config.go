package domain

// Config mirrors ~/.ask/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Provider            ProviderSettings `yaml:"provider"`
	Prompts             PromptSettings   `yaml:"prompts"`
	Pane                PaneSettings     `yaml:"pane"`
	History             HistorySettings  `yaml:"history"`
}

// ProviderSettings selects and configures the chat-completion backends.
type ProviderSettings struct {
	Default   string          `yaml:"default"`
	OpenAI    BackendSettings `yaml:"openai"`
	Anthropic BackendSettings `yaml:"anthropic"`
}

// BackendSettings configures a single backend. Credentials are never stored
// in the file, only the name of the environment variable holding them.
type BackendSettings struct {
	Endpoint       string `yaml:"endpoint"`
	ModelID        string `yaml:"model_id"`
	AuthEnvVar     string `yaml:"auth_env_var"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// PromptSettings holds operator overrides for the four template slots.
// Empty fields fall back to the built-in defaults.
type PromptSettings struct {
	System       string `yaml:"system,omitempty"`
	User         string `yaml:"user,omitempty"`
	SystemNoPane string `yaml:"system_no_pane,omitempty"`
	UserNoPane   string `yaml:"user_no_pane,omitempty"`
}

// PaneSettings configures pane-context capture.
type PaneSettings struct {
	Disabled bool `yaml:"disabled"`
	MaxBytes int  `yaml:"max_bytes"`
}

// HistorySettings configures the local invocation log.
type HistorySettings struct {
	Disabled bool `yaml:"disabled"`
}
