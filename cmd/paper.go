package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JiYeong0127/paperdeck/internal/domain"
)

func newPaperCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "paper <id>",
		Short: "Show one paper and record it as recently viewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var paper domain.Paper
			fetch := func(ctx context.Context) error {
				var err error
				paper, err = app.search.GetPaper(ctx, args[0])
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(paper)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching paper...", fetch); err != nil {
				return err
			}

			rendered, err := app.paperRenderer(paper)
			if err != nil {
				return fmt.Errorf("render paper: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
