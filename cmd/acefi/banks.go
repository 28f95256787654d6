package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/acefi/internal/cli"
	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/wizard"
	"github.com/spf13/cobra"
)

func banksCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "banks",
		Short: "List banks accounts can be verified against",
		Long: `Fetch the SMEPlug bank directory and print it sorted by name.
Use --search to filter by a case-insensitive substring of the bank name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			dir, err := newBankService(cfg, slog.Default())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			banks, err := cli.WithSpinner(cmd.ErrOrStderr(), "Loading banks...", func() ([]model.Bank, error) {
				return dir.ListBanks(ctx)
			})
			if err != nil {
				return common.NewUserError(wizard.ErrTextBanksFailed, err)
			}
			if len(banks) == 0 {
				return common.NewUserError(wizard.ErrTextNoBanks, nil)
			}

			return printBanks(cmd, banks, search)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter banks by name")
	return cmd
}

func printBanks(cmd *cobra.Command, banks []model.Bank, search string) error {
	out := cmd.OutOrStdout()
	matches := wizard.FilterBanks(wizard.SortBanks(banks), search)

	if len(matches) == 0 {
		msg := fmt.Sprintf("No banks match %q", search)
		if hints := wizard.SuggestBanks(banks, search, 3); len(hints) > 0 {
			msg += ". Did you mean: " + strings.Join(hints, ", ") + "?"
		}
		_, err := fmt.Fprintln(out, cli.FormatWarning(msg))
		return err
	}

	if err := cli.WriteBankTable(out, matches); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("%d of %d banks", len(matches), len(banks))))
	return err
}
