package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/acefi/internal/cli"
	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/service"
	"github.com/Veraticus/acefi/internal/wizard"
	"github.com/spf13/cobra"
)

func resolveCmd() *cobra.Command {
	var (
		bankCode string
		account  string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Look up the name on a bank account",
		Example: `  acefi resolve --bank-code 058 --account 0123456789`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := resolveInput(bankCode, account)
			if err != nil {
				return err
			}

			cfg := loadConfig()
			banks, err := newBankService(cfg, slog.Default())
			if err != nil {
				return err
			}

			acct, err := resolveAccount(cmd, banks, in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderAccount(acct))
			return err
		},
	}

	cmd.Flags().StringVar(&bankCode, "bank-code", "", "bank code (see acefi banks)")
	cmd.Flags().StringVar(&account, "account", "", "10-digit account number")
	_ = cmd.MarkFlagRequired("bank-code")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

// resolveInput applies the same input rules as the sign-up form.
func resolveInput(bankCode, account string) (wizard.ResolveInput, error) {
	bankCode = strings.TrimSpace(bankCode)
	if bankCode == "" {
		return wizard.ResolveInput{}, common.NewUserError("Please select a bank", nil)
	}

	number := wizard.SanitizeAccountNumber(account)
	if !wizard.IsValidAccountNumber(number) {
		return wizard.ResolveInput{}, common.NewUserError(wizard.HintAccountNumberLength, nil)
	}
	return wizard.ResolveInput{BankCode: bankCode, AccountNumber: number}, nil
}

func resolveAccount(cmd *cobra.Command, banks service.BankService, in wizard.ResolveInput) (model.ResolvedAccount, error) {
	ctx := cmd.Context()
	type lookup struct {
		name string
		bank string
	}

	res, err := cli.WithSpinner(cmd.ErrOrStderr(), "Verifying account...", func() (lookup, error) {
		name, err := banks.ResolveAccount(ctx, in.BankCode, in.AccountNumber)
		if err != nil {
			return lookup{}, err
		}
		// The bank name is display-only; a directory failure falls back to the code.
		bank := in.BankCode
		if list, err := banks.ListBanks(ctx); err == nil {
			for _, b := range list {
				if b.Code == in.BankCode {
					bank = b.Name
					break
				}
			}
		}
		return lookup{name: name, bank: bank}, nil
	})
	switch {
	case errors.Is(err, common.ErrAccountNotFound):
		return model.ResolvedAccount{}, common.NewUserError(wizard.ErrTextAccountNotFound, err)
	case err != nil:
		return model.ResolvedAccount{}, common.NewUserError(wizard.ErrTextResolveFailed, err)
	}

	return model.ResolvedAccount{
		AccountNumber: in.AccountNumber,
		AccountName:   res.name,
		BankName:      res.bank,
		BankCode:      in.BankCode,
	}, nil
}
