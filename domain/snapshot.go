package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountSummary is a point-in-time read model of an account for listings.
type AccountSummary struct {
	AccountID            string            `json:"accountId"`
	Number               int               `json:"number"`
	Branch               string            `json:"branch"`
	Holder               string            `json:"holder"`
	Balance              decimal.Decimal   `json:"balance"`
	Transactions         int               `json:"transactions"`
	Limits               *WithdrawalLimits `json:"limits,omitempty"`
	WithdrawalsRemaining *int              `json:"withdrawalsRemaining,omitempty"`
	Timestamp            time.Time         `json:"timestamp"`
}

func Summarize(account *Account) AccountSummary {
	account.mu.Lock()
	defer account.mu.Unlock()

	now := account.clock.Now()
	summary := AccountSummary{
		AccountID:    account.ID(),
		Number:       account.number,
		Branch:       account.branch,
		Holder:       account.owner.Profile.Name,
		Balance:      account.balance,
		Transactions: account.history.Len(),
		Timestamp:    now,
	}
	if account.limits != nil {
		limits := *account.limits
		remaining := account.remainingOn(now)
		summary.Limits = &limits
		summary.WithdrawalsRemaining = &remaining
	}
	return summary
}
