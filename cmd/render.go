package cmd

import (
	"errors"
	"fmt"
	"io"

	"personal-ledger/domain"
)

func printSuccess(out io.Writer, msg string) {
	fmt.Fprintf(out, "\n=== %s ===\n", msg)
}

func printFailure(out io.Writer, msg string) {
	fmt.Fprintf(out, "\n@@@ %s @@@\n", msg)
}

// printError renders err with a message the user can act on, followed by the
// underlying detail.
func printError(out io.Writer, err error) {
	printFailure(out, "Operation failed: "+explain(err))
	fmt.Fprintf(out, "Error: %v\n", err)
}

func explain(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "the amount must be a positive number."
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "you do not have enough balance."
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "the amount exceeds the withdrawal limit."
	case errors.Is(err, domain.ErrDailyWithdrawalLimitExceeded):
		return "maximum number of daily withdrawals reached."
	case errors.Is(err, domain.ErrAccountNotOwned):
		return "the account does not belong to this client."
	case errors.Is(err, domain.ErrClientNotFound):
		return "client not found!"
	case errors.Is(err, domain.ErrClientExists):
		return "a client with this CPF already exists!"
	case errors.Is(err, domain.ErrInvalidTaxID):
		return "invalid CPF, check the format and digits."
	case errors.Is(err, domain.ErrNoAccounts):
		return "client has no account."
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account not found."
	default:
		return "invalid request."
	}
}
