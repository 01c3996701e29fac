package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"personal-ledger/app"
	"personal-ledger/domain"
)

func newTransactionCommand(ledger *app.LedgerService) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Perform deposits and withdrawals",
		Long:  `Provides commands for depositing into and withdrawing from a client's account.`,
	}

	var (
		depTaxID   string
		depAccount int
		depAmount  amountValue
	)
	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit funds into an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !depAmount.set {
				return errors.New("amount (--amount) is required")
			}
			err := ledger.Deposit(app.DepositCommand{
				TaxID:         depTaxID,
				AccountNumber: depAccount,
				Amount:        depAmount.amount,
			})
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Deposit of $ %s completed successfully!", domain.FormatAmount(depAmount.amount)))
			return nil
		},
	}
	addAccountFlags(depositCmd.Flags(), &depTaxID, &depAccount)
	depositCmd.Flags().Var(&depAmount, "amount", "Amount to deposit, e.g. 100.50 (required)")
	_ = depositCmd.MarkFlagRequired("tax-id")

	var (
		wdTaxID   string
		wdAccount int
		wdAmount  amountValue
	)
	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw funds from an account",
		Long: `Removes an amount from an account. The balance must cover it and, for checking
accounts, both the per-withdrawal limit and the daily withdrawal count apply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !wdAmount.set {
				return errors.New("amount (--amount) is required")
			}
			err := ledger.Withdraw(app.WithdrawCommand{
				TaxID:         wdTaxID,
				AccountNumber: wdAccount,
				Amount:        wdAmount.amount,
			})
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Withdrawal of $ %s completed successfully!", domain.FormatAmount(wdAmount.amount)))
			return nil
		},
	}
	addAccountFlags(withdrawCmd.Flags(), &wdTaxID, &wdAccount)
	withdrawCmd.Flags().Var(&wdAmount, "amount", "Amount to withdraw, e.g. 100.50 (required)")
	_ = withdrawCmd.MarkFlagRequired("tax-id")

	transactionCmd.AddCommand(depositCmd, withdrawCmd)
	return transactionCmd
}
