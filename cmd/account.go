package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"personal-ledger/app"
	"personal-ledger/domain"
)

func newAccountCommand(ledger *app.LedgerService) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
		Long:  `Provides commands to open accounts for registered clients and list them.`,
	}

	var open app.OpenAccountCommand
	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account for a client",
		Long: `Opens an account with the next sequential number. Accounts are checking
accounts with the configured withdrawal limits unless --basic is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := ledger.OpenAccount(open)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Account %d created successfully for %s!",
				account.Number(), account.Owner().Profile.Name))
			return nil
		},
	}
	openCmd.Flags().StringVar(&open.TaxID, "tax-id", "", "Client tax id (CPF) (required)")
	openCmd.Flags().BoolVar(&open.Basic, "basic", false, "Open an account without withdrawal limits")
	_ = openCmd.MarkFlagRequired("tax-id")

	var list app.ListAccountsQuery
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long:  `Lists every account in the ledger, or only those of one client with --tax-id.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := ledger.ListAccounts(list)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				printFailure(out, "No accounts registered.")
				return nil
			}
			for _, s := range summaries {
				fmt.Fprintln(out, strings.Repeat("=", 60))
				printSummary(out, s)
			}
			fmt.Fprintln(out, strings.Repeat("=", 60))
			return nil
		},
	}
	listCmd.Flags().StringVar(&list.TaxID, "tax-id", "", "Only list accounts of this client")

	accountCmd.AddCommand(openCmd, listCmd)
	return accountCmd
}

func printSummary(out io.Writer, s domain.AccountSummary) {
	fmt.Fprintf(out, "Branch:\t\t%s\n", s.Branch)
	fmt.Fprintf(out, "Account:\t%d\n", s.Number)
	fmt.Fprintf(out, "Holder:\t\t%s\n", s.Holder)
	fmt.Fprintf(out, "Balance:\t$ %s\n", domain.FormatAmount(s.Balance))
	if s.Limits != nil {
		fmt.Fprintf(out, "Limit:\t\t$ %s\n", domain.FormatAmount(s.Limits.PerOperation))
	}
	if s.WithdrawalsRemaining != nil {
		fmt.Fprintf(out, "Withdrawals left today: %d\n", *s.WithdrawalsRemaining)
	}
}
