package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JiYeong0127/paperdeck/internal/application"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the signed-in account",
	}

	cmd.AddCommand(
		newAccountShowCmd(app),
		newAccountSetNameCmd(app),
		newAccountPasswdCmd(app),
	)

	return cmd
}

func newAccountShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the account profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := app.accounts.Me(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(account)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nmember since %s\n",
				account.DisplayName, account.Email, account.CreatedAt.Format("2 Jan 2006"))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAccountSetNameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-name <name>",
		Short: "Change the public display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.accounts.UpdateDisplayName(cmd.Context(), application.UpdateDisplayNameCommand{
				DisplayName: args[0],
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Display name is now %s\n", account.DisplayName)
			return err
		},
	}
}

func newAccountPasswdCmd(app *app) *cobra.Command {
	var current string
	var next string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.accounts.ChangePassword(cmd.Context(), application.ChangePasswordCommand{
				Current: current,
				Next:    next,
			}); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return err
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current password")
	cmd.Flags().StringVar(&next, "new", "", "New password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}
