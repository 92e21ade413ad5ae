// Package pane reads the terminal snapshot supplied by the shell
// integration. The snapshot arrives through the environment only: either
// inline in ASK_PANE or, since pane dumps can exceed comfortable environment
// sizes, as a file path in ASK_PANE_FILE written by the shell hook.
package pane

import (
	"context"
	"os"
	"strings"

	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/ports"
)

const (
	// EnvPane carries pane text inline.
	EnvPane = "ASK_PANE"
	// EnvPaneFile points at a file holding pane text.
	EnvPaneFile = "ASK_PANE_FILE"
	// EnvNoPane suppresses capture entirely when set to a truthy value.
	EnvNoPane = "ASK_NO_PANE"
)

// EnvCapturer implements ports.PaneCapturer from environment variables.
type EnvCapturer struct{}

// NewEnvCapturer builds the capturer.
func NewEnvCapturer() *EnvCapturer {
	return &EnvCapturer{}
}

// Capture never fails. A missing or suppressed pane yields an empty
// PaneContext, which downstream selects the without-pane templates.
func (c *EnvCapturer) Capture(_ context.Context, cfg domain.Config, req domain.QueryRequest) domain.PaneContext {
	if req.NoPane || !cfg.IsPaneEnabled() || isTruthy(os.Getenv(EnvNoPane)) {
		return domain.PaneContext{}
	}

	text := os.Getenv(EnvPane)
	if text == "" {
		if path := os.Getenv(EnvPaneFile); path != "" {
			if data, err := os.ReadFile(path); err == nil {
				text = string(data)
			}
		}
	}

	text = strings.TrimRight(text, "\n")
	return domain.PaneContext{Text: clampTail(text, cfg.GetPaneMaxBytes())}
}

// clampTail keeps the most recent output when the snapshot exceeds the cap:
// the tail of a pane is what the user was just looking at.
func clampTail(text string, maxBytes int) string {
	if maxBytes <= 0 || len(text) <= maxBytes {
		return text
	}
	cut := text[len(text)-maxBytes:]
	// resume at the next full line so we never hand the model a torn one
	if idx := strings.IndexByte(cut, '\n'); idx >= 0 && idx+1 < len(cut) {
		cut = cut[idx+1:]
	}
	return cut
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

var _ ports.PaneCapturer = (*EnvCapturer)(nil)
