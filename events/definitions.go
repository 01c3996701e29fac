package events

import (
	"github.com/shopspring/decimal"

	"personal-ledger/shared"
)

type DepositMadeEvent struct {
	BaseEvent
	Amount decimal.Decimal `json:"amount"`
}

func (e DepositMadeEvent) Kind() shared.TransactionKind { return shared.Deposit }

func (e DepositMadeEvent) Value() decimal.Decimal { return e.Amount }

func (e DepositMadeEvent) SignedAmount() decimal.Decimal { return e.Amount }

type WithdrawalMadeEvent struct {
	BaseEvent
	Amount decimal.Decimal `json:"amount"`
}

func (e WithdrawalMadeEvent) Kind() shared.TransactionKind { return shared.Withdrawal }

func (e WithdrawalMadeEvent) Value() decimal.Decimal { return e.Amount }

func (e WithdrawalMadeEvent) SignedAmount() decimal.Decimal { return e.Amount.Neg() }
