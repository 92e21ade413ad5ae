package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/askshell/ask/internal/app"
	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/infrastructure/pane"
	"github.com/askshell/ask/internal/infrastructure/prompt"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, credentials and pane availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}
}

func runDoctor(ctx context.Context, out io.Writer, container *app.Container) error {
	cfg, err := container.ConfigLoader.Load(ctx)
	if err != nil {
		fmt.Fprintf(out, "✗ config: %v\n", err)
		return err
	}
	fmt.Fprintf(out, "✓ config: %s\n", container.ConfigLoader.Path())

	providerCfg, err := container.ConfigLoader.ResolveProvider(cfg, domain.QueryRequest{})
	if err != nil {
		fmt.Fprintf(out, "✗ provider: %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ provider: %s (%s)\n", providerCfg.Kind, providerCfg.ModelID)
		if providerCfg.APIKey == "" {
			fmt.Fprintf(out, "✗ credential: %s is not set\n", providerCfg.AuthEnvVar)
		} else {
			fmt.Fprintf(out, "✓ credential: %s is set\n", providerCfg.AuthEnvVar)
		}
	}

	reportPane(out, cfg)
	reportPromptOverrides(out)

	if container.History != nil {
		fmt.Fprintf(out, "✓ history: %s\n", container.History.Path())
	} else {
		fmt.Fprintln(out, "- history: unavailable")
	}
	return nil
}

func reportPane(out io.Writer, cfg domain.Config) {
	switch {
	case !cfg.IsPaneEnabled():
		fmt.Fprintln(out, "- pane: disabled in config")
	case os.Getenv(pane.EnvPane) != "" || os.Getenv(pane.EnvPaneFile) != "":
		fmt.Fprintln(out, "✓ pane: context supplied by shell integration")
	default:
		fmt.Fprintln(out, "- pane: nothing supplied (run inside the shell integration, see `ask init`)")
	}
}

func reportPromptOverrides(out io.Writer) {
	slots := []struct {
		name string
		env  string
	}{
		{"system", prompt.EnvSystemWithPane},
		{"user", prompt.EnvUserWithPane},
		{"system_no_pane", prompt.EnvSystemWithoutPane},
		{"user_no_pane", prompt.EnvUserWithoutPane},
	}
	for _, slot := range slots {
		if os.Getenv(slot.env) != "" {
			fmt.Fprintf(out, "✓ prompt override: %s (via %s)\n", slot.name, slot.env)
		}
	}
}
