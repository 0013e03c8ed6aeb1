package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JiYeong0127/paperdeck/internal/domain"
)

func newSearchCmd(app *app) *cobra.Command {
	var field string
	var yearFrom int
	var yearTo int
	var sortBy string
	var page int
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the paper catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := domain.SearchQuery{
				Text:     strings.Join(args, " "),
				Field:    field,
				YearFrom: yearFrom,
				YearTo:   yearTo,
				Sort:     domain.SearchSort(sortBy),
				Page:     page,
				PerPage:  limit,
			}

			var results domain.SearchPage
			fetch := func(ctx context.Context) error {
				var err error
				results, err = app.search.Search(ctx, query)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Searching papers...", fetch); err != nil {
				return err
			}

			rendered, err := app.searchRenderer(results, query.Normalize())
			if err != nil {
				return fmt.Errorf("render search results: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "Restrict matches to a field of study")
	cmd.Flags().IntVar(&yearFrom, "year-from", 0, "Earliest publication year")
	cmd.Flags().IntVar(&yearTo, "year-to", 0, "Latest publication year")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: relevance, recency or citations")
	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().IntVar(&limit, "limit", 0, "Results per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
