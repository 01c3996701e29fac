package domain_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"personal-ledger/domain"
	"personal-ledger/shared"
)

// Helper to create decimals in tests, panics on error
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeClock is a settable clock for deterministic daily-limit tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var day1 = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

func newClient(t *testing.T, name string) *domain.Client {
	t.Helper()
	return domain.NewClient(domain.Person{Name: name, TaxID: "52998224725"})
}

func newChecking(t *testing.T, clock domain.Clock) (*domain.Client, *domain.Account) {
	t.Helper()
	client := newClient(t, "Alice")
	acc, err := domain.NewCheckingAccount(1, client, domain.DefaultWithdrawalLimits(), domain.WithClock(clock))
	if err != nil {
		t.Fatalf("NewCheckingAccount failed: %v", err)
	}
	if err := client.AddAccount(acc); err != nil {
		t.Fatalf("AddAccount failed: %v", err)
	}
	return client, acc
}

func statementSum(st domain.Statement) decimal.Decimal {
	sum := decimal.Zero
	for line := range st.Lines() {
		if line.Kind == shared.Withdrawal {
			sum = sum.Sub(line.Amount)
		} else {
			sum = sum.Add(line.Amount)
		}
	}
	return sum
}
