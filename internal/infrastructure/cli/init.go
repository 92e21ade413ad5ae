package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askshell/ask/assets"
)

// newInitCommand emits the shell hook on stdout so it can be wired with
// `eval "$(ask init zsh)"` from a shell rc file.
func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [bash|zsh]",
		Short: "Print the shell integration snippet",
		Long: `Print the shell function that captures the current tmux pane and hands
the suggested command back to your shell. Add to your rc file:

  eval "$(ask init zsh)"    # ~/.zshrc
  eval "$(ask init bash)"   # ~/.bashrc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			}
			hook, err := hookFor(shell)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), hook)
			return nil
		},
	}
}

func hookFor(shell string) (string, error) {
	if shell == "" {
		shell = filepath.Base(os.Getenv("SHELL"))
	}
	switch strings.ToLower(shell) {
	case "zsh":
		return assets.ZshHook, nil
	case "bash":
		return assets.BashHook, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (want bash or zsh)", shell)
	}
}
