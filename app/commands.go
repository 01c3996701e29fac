package app

import (
	"github.com/shopspring/decimal"
)

// --- Command Struct Definitions ---
// Commands represent the intent to perform an action or change state in the system.

type RegisterClientCommand struct {
	Name      string
	BirthDate string // dd-mm-yyyy
	TaxID     string
	Address   string
}

type OpenAccountCommand struct {
	TaxID string
	// Basic opens an account without withdrawal limits.
	Basic bool
}

// AccountNumber 0 selects the client's first account.
type DepositCommand struct {
	TaxID         string
	AccountNumber int
	Amount        decimal.Decimal
}

type WithdrawCommand struct {
	TaxID         string
	AccountNumber int
	Amount        decimal.Decimal
}

// --- Query Structures (Input for Read Operations) ---

type GetStatementQuery struct {
	TaxID         string
	AccountNumber int
}

// An empty TaxID lists every account in the ledger.
type ListAccountsQuery struct {
	TaxID string
}
