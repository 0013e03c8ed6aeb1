package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	papersadapter "github.com/JiYeong0127/paperdeck/internal/adapters/render/papers"
)

func newHistoryCmd(app *app) *cobra.Command {
	var clear bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently viewed papers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clear {
				if err := app.history.Clear(cmd.Context()); err != nil {
					return err
				}

				_, err := fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return err
			}

			views, err := app.history.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			rendered, err := app.historyRenderer(views, papersadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Forget all recently viewed papers")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
