package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askshell/ask/internal/app"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
		clear  bool
		export string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.History == nil {
				return errors.New("history store unavailable")
			}
			if clear {
				if err := container.History.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
				return nil
			}
			if export != "" {
				if err := container.History.ExportJSON(export); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "History exported to %s\n", export)
				return nil
			}

			records, err := container.History.Records(limit, search)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
				return nil
			}
			for _, rec := range records {
				line := rec.Command
				if rec.Raw {
					line = "(raw) " + rec.Query
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-40s  %s\n",
					rec.Timestamp.Format("2006-01-02 15:04"), line, rec.Query)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries to show")
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by query or command substring")
	cmd.Flags().BoolVar(&clear, "clear", false, "delete all history entries")
	cmd.Flags().StringVar(&export, "export", "", "export history to a jsonl file")

	return cmd
}
