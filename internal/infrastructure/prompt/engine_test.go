package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askshell/ask/internal/domain"
)

func TestBuildSelectsVariantFromPanePresence(t *testing.T) {
	engine := NewEngine()
	cfg := domain.Config{}
	req := domain.QueryRequest{Query: "undo last commit"}

	tests := []struct {
		name     string
		pane     domain.PaneContext
		wantPane bool
	}{
		{name: "no pane selects without-pane variant", pane: domain.PaneContext{}, wantPane: false},
		{name: "pane selects with-pane variant", pane: domain.PaneContext{Text: "fatal: not a git repository"}, wantPane: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := engine.Build(cfg, req, tt.pane)

			assert.Contains(t, resolved.User, "undo last commit")
			if tt.wantPane {
				assert.Contains(t, resolved.System, "You can see the user's most recent terminal output")
				assert.Contains(t, resolved.User, "fatal: not a git repository")
			} else {
				assert.Contains(t, resolved.System, "You have no view of the user's terminal")
				assert.NotContains(t, resolved.User, "terminal output")
			}
		})
	}
}

func TestSubstituteIsSinglePass(t *testing.T) {
	// A placeholder token arriving inside substituted content must stay
	// literal: substitution never rescans its own output.
	out := Substitute("run: {query}", map[string]string{
		"query": "echo {pane}",
		"pane":  "should not appear",
	})
	assert.Equal(t, "run: echo {pane}", out)
}

func TestSubstitutePreservesUnknownTokens(t *testing.T) {
	out := Substitute("{query} in {cwd}", map[string]string{"query": "list files"})
	assert.Equal(t, "list files in {cwd}", out)
}

func TestSubstituteEmptyValues(t *testing.T) {
	out := Substitute("pane: {pane}; q: {query}", map[string]string{"pane": "", "query": "x"})
	assert.Equal(t, "pane: ; q: x", out)
}

func TestResolveTemplatesPrecedence(t *testing.T) {
	cfg := domain.Config{
		Prompts: domain.PromptSettings{
			System:     "config system {query}",
			UserNoPane: "config user-no-pane {query}",
		},
	}

	t.Run("config overrides default", func(t *testing.T) {
		set := resolveTemplates(cfg)
		assert.Equal(t, "config system {query}", set.WithPane.System)
		assert.Equal(t, "config user-no-pane {query}", set.WithoutPane.User)
		// untouched slots keep the built-in defaults
		assert.Equal(t, defaultUserWithPane, set.WithPane.User)
	})

	t.Run("environment overrides config", func(t *testing.T) {
		t.Setenv(EnvSystemWithPane, "env system {query}")
		set := resolveTemplates(cfg)
		assert.Equal(t, "env system {query}", set.WithPane.System)
	})
}

func TestBuildWithMalformedOverrideDoesNotFail(t *testing.T) {
	t.Setenv(EnvUserWithoutPane, "oops {queyr} {")
	engine := NewEngine()

	resolved := engine.Build(domain.Config{}, domain.QueryRequest{Query: "q"}, domain.PaneContext{})

	// the typo'd token and the dangling brace survive verbatim
	assert.Equal(t, "oops {queyr} {", resolved.User)
}
