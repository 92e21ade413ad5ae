// Package cli wires the cobra command tree.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/askshell/ask/internal/app"
	"github.com/askshell/ask/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Debug bool
}

// NewRootCmd wires the cobra root command. The root command itself runs the
// pipeline so the shell integration can call `ask <words...>` directly.
func NewRootCmd(opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(opts.Debug)
	if err != nil {
		return nil, err
	}

	var (
		provider string
		model    string
		raw      bool
		debug    bool
		noPane   bool
		timeout  time.Duration
	)

	root := &cobra.Command{
		Use:   "ask [request...]",
		Short: "ask turns a natural-language request into a shell command",
		Long: `ask sends your request, together with a snapshot of recent terminal
output supplied by the shell integration, to a configured LLM backend and
prints a single candidate command. It never executes anything itself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if debug {
				container.LogLevel.SetLevel(zapcore.DebugLevel)
			}

			runCtx := cmd.Context()
			req := domain.QueryRequest{
				Context:          runCtx,
				Query:            strings.Join(args, " "),
				ProviderOverride: provider,
				ModelOverride:    model,
				NoPane:           noPane,
				// Debug mode surfaces the raw backend text so prompts can be
				// validated independent of the parser.
				Raw:     raw || debug,
				Timeout: timeout,
			}

			result, err := container.QueryService.Run(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Output)
			return nil
		},
	}

	root.Flags().StringVarP(&provider, "provider", "p", "", "backend to use (openai or anthropic)")
	root.Flags().StringVarP(&model, "model", "m", "", "override the model identifier")
	root.Flags().BoolVar(&raw, "raw", false, "print the backend response without command extraction")
	root.Flags().BoolVar(&debug, "debug", false, "verbose diagnostics plus raw passthrough")
	root.Flags().BoolVar(&noPane, "no-pane", false, "suppress pane context for this request")
	root.Flags().DurationVar(&timeout, "timeout", 0, "override the request timeout")

	root.AddCommand(newInitCommand())
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand())

	return root, nil
}
