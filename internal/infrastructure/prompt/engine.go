// Package prompt renders the (system, user) message pair from templates.
//
// Substitution is forgiving: it is a single literal text pass,
// placeholders inside substituted content are not re-substituted, and tokens
// the engine does not recognize are preserved verbatim. Template overrides
// are operator-supplied and may be malformed; a broken override should still
// produce a usable prompt.
package prompt

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/ports"
)

// Environment variables overriding the four template slots. Environment wins
// over the config file, which wins over the built-in defaults.
const (
	EnvSystemWithPane    = "ASK_PROMPT_SYSTEM"
	EnvUserWithPane      = "ASK_PROMPT_USER"
	EnvSystemWithoutPane = "ASK_PROMPT_SYSTEM_NO_PANE"
	EnvUserWithoutPane   = "ASK_PROMPT_USER_NO_PANE"
)

// Engine implements ports.PromptBuilder.
type Engine struct{}

// NewEngine builds a prompt engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Build selects the template variant from pane presence and substitutes
// placeholders. Selection is a hard branch: with-pane templates are used if
// and only if the captured pane is non-empty.
func (e *Engine) Build(cfg domain.Config, req domain.QueryRequest, pane domain.PaneContext) domain.ResolvedPrompt {
	set := resolveTemplates(cfg)

	tmpl := set.WithoutPane
	if pane.Present() {
		tmpl = set.WithPane
	}

	vars := map[string]string{
		"query": req.Query,
		"pane":  pane.Text,
		"shell": detectShell(),
		"os":    runtime.GOOS,
	}

	return domain.ResolvedPrompt{
		System: Substitute(tmpl.System, vars),
		User:   Substitute(tmpl.User, vars),
	}
}

// Substitute replaces {name} tokens with their values in a single pass.
// strings.Replacer does not rescan replaced text, so a placeholder token
// embedded in substituted content stays literal. Unknown tokens are left
// untouched.
func Substitute(tmpl string, vars map[string]string) string {
	if len(vars) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// resolveTemplates applies the override precedence per slot.
func resolveTemplates(cfg domain.Config) domain.TemplateSet {
	set := defaultTemplates()

	set.WithPane.System = pick(os.Getenv(EnvSystemWithPane), cfg.Prompts.System, set.WithPane.System)
	set.WithPane.User = pick(os.Getenv(EnvUserWithPane), cfg.Prompts.User, set.WithPane.User)
	set.WithoutPane.System = pick(os.Getenv(EnvSystemWithoutPane), cfg.Prompts.SystemNoPane, set.WithoutPane.System)
	set.WithoutPane.User = pick(os.Getenv(EnvUserWithoutPane), cfg.Prompts.UserNoPane, set.WithoutPane.User)

	return set
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func detectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "sh"
}

var _ ports.PromptBuilder = (*Engine)(nil)
