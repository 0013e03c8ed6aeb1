package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	papersadapter "github.com/JiYeong0127/paperdeck/internal/adapters/render/papers"
	"github.com/JiYeong0127/paperdeck/internal/domain"
)

func newBookmarksCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "List and manage bookmarked papers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var list []domain.Bookmark
			fetch := func(ctx context.Context) error {
				var err error
				list, err = app.bookmarks.List(ctx)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading bookmarks...", fetch); err != nil {
				return err
			}

			rendered, err := app.bookmarksRenderer(list, papersadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render bookmarks: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.AddCommand(
		newBookmarksAddCmd(app),
		newBookmarksRemoveCmd(app),
		newBookmarksToggleCmd(app),
	)

	return cmd
}

// The mutation subcommands silence cobra's own error echo: the flow already
// prints one notice per outcome on stderr, and that line is the whole story
// for the user. The returned error still drives a non-zero exit.

func newBookmarksAddCmd(app *app) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:           "add <paper-id>",
		Short:         "Bookmark a paper",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.bookmarks.Add(cmd.Context(), args[0], notes)
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Attach a note to the bookmark")

	return cmd
}

func newBookmarksRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <paper-id>",
		Short:         "Remove the bookmark for a paper",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.bookmarks.Remove(cmd.Context(), args[0])
		},
	}
}

func newBookmarksToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:           "toggle <paper-id>",
		Short:         "Bookmark a paper, or remove the bookmark it already has",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.bookmarks.Toggle(cmd.Context(), args[0])
		},
	}
}
