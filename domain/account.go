package domain

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"personal-ledger/shared"
)

// WithdrawalLimits turns an account into a checking account: each withdrawal
// is capped at PerOperation and at most Daily withdrawals are allowed per
// calendar day. Deposits are never limited.
type WithdrawalLimits struct {
	PerOperation decimal.Decimal `json:"perOperation"`
	Daily        int             `json:"daily"`
}

func DefaultWithdrawalLimits() WithdrawalLimits {
	return WithdrawalLimits{
		PerOperation: decimal.NewFromInt(500),
		Daily:        3,
	}
}

func (l WithdrawalLimits) validate() error {
	if !l.PerOperation.IsPositive() {
		return NewDomainError("per-operation withdrawal limit must be positive: %s", l.PerOperation.String())
	}
	if l.Daily < 0 {
		return NewDomainError("daily withdrawal limit cannot be negative: %d", l.Daily)
	}
	return nil
}

// Account holds a balance and the history that explains it. The balance only
// changes through Register on a Deposit or Withdrawal, and every change is
// recorded in the history under the same lock.
type Account struct {
	mu sync.Mutex

	number  int
	branch  string
	balance decimal.Decimal
	owner   *Client
	history *History
	limits  *WithdrawalLimits
	clock   Clock
}

type AccountOption func(*Account)

func WithBranch(branch string) AccountOption {
	return func(a *Account) {
		if branch != "" {
			a.branch = branch
		}
	}
}

func WithClock(clock Clock) AccountOption {
	return func(a *Account) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// NewAccount opens a plain account with a zero balance and an empty history.
func NewAccount(number int, owner *Client, opts ...AccountOption) (*Account, error) {
	if owner == nil {
		return nil, NewDomainError("account %d must have an owner", number)
	}
	if number <= 0 {
		return nil, NewDomainError("account number must be positive: %d", number)
	}

	a := &Account{
		number:  number,
		branch:  shared.DefaultBranch,
		balance: decimal.Zero,
		owner:   owner,
		clock:   SystemClock{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.history = newHistory(a.ID(), a.clock)
	return a, nil
}

// NewCheckingAccount opens an account whose withdrawals are bound by limits.
func NewCheckingAccount(number int, owner *Client, limits WithdrawalLimits, opts ...AccountOption) (*Account, error) {
	if err := limits.validate(); err != nil {
		return nil, err
	}
	a, err := NewAccount(number, owner, opts...)
	if err != nil {
		return nil, err
	}
	a.limits = &limits
	return a, nil
}

// ID identifies the account across the ledger as "<branch>-<number>".
func (a *Account) ID() string {
	return a.branch + "-" + strconv.Itoa(a.number)
}

func (a *Account) Number() int { return a.number }

func (a *Account) Branch() string { return a.branch }

func (a *Account) Owner() *Client { return a.owner }

func (a *Account) History() *History { return a.history }

// Limits returns a copy of the withdrawal limits; ok is false for plain accounts.
func (a *Account) Limits() (limits WithdrawalLimits, ok bool) {
	if a.limits == nil {
		return WithdrawalLimits{}, false
	}
	return *a.limits, true
}

func (a *Account) IsChecking() bool {
	return a.limits != nil
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	return NewDeposit(amount).Register(a)
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	return NewWithdrawal(amount).Register(a)
}

// WithdrawalsRemainingToday reports how many more withdrawals the daily limit
// allows; ok is false for plain accounts.
func (a *Account) WithdrawalsRemainingToday() (remaining int, ok bool) {
	if a.limits == nil {
		return 0, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.remainingOn(a.clock.Now()), true
}

// remainingOn expects a.mu held and a.limits set.
func (a *Account) remainingOn(now time.Time) int {
	remaining := a.limits.Daily - a.history.CountWithdrawalsOn(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Statement returns the history read-out. Taken under the account lock so the
// statement balance matches Balance at that instant.
func (a *Account) Statement() Statement {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Statement()
}

func (a *Account) register(tx Transaction) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := tx.validate(a); err != nil {
		return err
	}

	newBalance := a.balance.Add(tx.signedAmount())
	if newBalance.IsNegative() {
		log.Printf("CRITICAL: Invariant Violation! Account %s balance negative after %s: %s + %s = %s",
			a.ID(), tx.Kind(), a.balance.String(), tx.signedAmount().String(), newBalance.String())
		return fmt.Errorf("invariant violation: negative balance registering %s on account %s", tx.Kind(), a.ID())
	}

	a.balance = newBalance
	a.history.append(tx)
	return nil
}
