package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pd",
		Short:         "Paperdeck (pd): search papers and manage bookmarks",
		Long:          "pd (Paperdeck) searches the paper catalog, shows paper details, and keeps your bookmarks and recently viewed history in sync from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(rootCmd)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSearchCmd(app),
		newPaperCmd(app),
		newBookmarksCmd(app),
		newAuthCmd(app),
		newAccountCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
