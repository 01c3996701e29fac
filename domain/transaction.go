package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"personal-ledger/events"
	"personal-ledger/shared"
)

// Transaction is a requested monetary movement. Deposit and Withdrawal are the
// only implementations.
type Transaction interface {
	Kind() shared.TransactionKind
	Amount() decimal.Decimal
	// Register validates the transaction against the account and, when every
	// rule passes, applies it to the balance and records it in the history.
	Register(account *Account) error

	// validate runs with the account lock held.
	validate(account *Account) error
	signedAmount() decimal.Decimal
	record(aggregateID string, sequence int, at time.Time) events.Event
}

type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() shared.TransactionKind { return shared.Deposit }

func (d Deposit) Amount() decimal.Decimal { return d.amount }

func (d Deposit) Register(account *Account) error {
	return account.register(d)
}

func (d Deposit) validate(_ *Account) error {
	if !d.amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be positive: %s", ErrInvalidAmount, d.amount.String())
	}
	return nil
}

func (d Deposit) signedAmount() decimal.Decimal { return d.amount }

func (d Deposit) record(aggregateID string, sequence int, at time.Time) events.Event {
	return events.DepositMadeEvent{
		BaseEvent: events.NewBaseEvent(aggregateID, sequence, events.DepositMadeType, at),
		Amount:    d.amount,
	}
}

type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() shared.TransactionKind { return shared.Withdrawal }

func (w Withdrawal) Amount() decimal.Decimal { return w.amount }

func (w Withdrawal) Register(account *Account) error {
	return account.register(w)
}

// validate checks, in order: positive amount, sufficient balance, then for
// checking accounts the per-operation cap and the daily count.
func (w Withdrawal) validate(a *Account) error {
	if !w.amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal amount must be positive: %s", ErrInvalidAmount, w.amount.String())
	}
	if w.amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: requested %s, available %s",
			ErrInsufficientFunds, w.amount.String(), a.balance.String())
	}
	if a.limits == nil {
		return nil
	}
	if w.amount.GreaterThan(a.limits.PerOperation) {
		return fmt.Errorf("%w: requested %s, limit per withdrawal %s",
			ErrWithdrawalLimitExceeded, w.amount.String(), a.limits.PerOperation.String())
	}
	if done := a.history.CountWithdrawalsOn(a.clock.Now()); done >= a.limits.Daily {
		return fmt.Errorf("%w: %d of %d withdrawals already made today",
			ErrDailyWithdrawalLimitExceeded, done, a.limits.Daily)
	}
	return nil
}

func (w Withdrawal) signedAmount() decimal.Decimal { return w.amount.Neg() }

func (w Withdrawal) record(aggregateID string, sequence int, at time.Time) events.Event {
	return events.WithdrawalMadeEvent{
		BaseEvent: events.NewBaseEvent(aggregateID, sequence, events.WithdrawalMadeType, at),
		Amount:    w.amount,
	}
}
