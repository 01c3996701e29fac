package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"personal-ledger/domain"
)

// amountValue is a pflag.Value holding a decimal amount.
type amountValue struct {
	amount decimal.Decimal
	set    bool
}

var _ pflag.Value = (*amountValue)(nil)

func (v *amountValue) Set(raw string) error {
	amount, err := domain.ParseAmount(raw)
	if err != nil {
		return err
	}
	v.amount = amount
	v.set = true
	return nil
}

func (v *amountValue) String() string {
	if !v.set {
		return ""
	}
	return v.amount.String()
}

func (v *amountValue) Type() string {
	return "amount"
}

func addAccountFlags(fs *pflag.FlagSet, taxID *string, number *int) {
	fs.StringVar(taxID, "tax-id", "", "Client tax id (CPF), with or without punctuation (required)")
	fs.IntVar(number, "account", 0, "Account number (defaults to the client's first account)")
}
