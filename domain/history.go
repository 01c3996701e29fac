package domain

import (
	"encoding/json"
	"iter"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"personal-ledger/events"
	"personal-ledger/shared"
)

// History is the append-only log of transactions registered against one
// account. Entries are only added by a successful registration.
type History struct {
	mu          sync.RWMutex
	aggregateID string
	clock       Clock
	entries     []events.Event
}

func newHistory(aggregateID string, clock Clock) *History {
	return &History{
		aggregateID: aggregateID,
		clock:       clock,
		entries:     make([]events.Event, 0),
	}
}

// append records tx stamped with the history's clock.
func (h *History) append(tx Transaction) events.Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	event := tx.record(h.aggregateID, len(h.entries)+1, h.clock.Now())
	h.entries = append(h.entries, event)
	return event
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Entries returns a copy of the recorded events in insertion order.
func (h *History) Entries() []events.Event {
	h.mu.RLock()
	defer h.mu.RUnlock()

	copied := make([]events.Event, len(h.entries))
	copy(copied, h.entries)
	return copied
}

// CountWithdrawalsOn returns how many withdrawals were recorded on the
// calendar day of date, using date's location to decide where days begin.
func (h *History) CountWithdrawalsOn(date time.Time) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, e := range h.entries {
		if e.Kind() == shared.Withdrawal && sameDay(e.GetBase().Timestamp, date) {
			count++
		}
	}
	return count
}

// Statement captures the entries recorded so far. Later appends do not
// change a statement already taken.
func (h *History) Statement() Statement {
	h.mu.RLock()
	defer h.mu.RUnlock()

	captured := h.entries[:len(h.entries):len(h.entries)]
	balance := decimal.Zero
	for _, e := range captured {
		balance = balance.Add(e.SignedAmount())
	}
	return Statement{
		AccountID: h.aggregateID,
		Balance:   balance,
		TakenAt:   h.clock.Now(),
		entries:   captured,
	}
}

type StatementLine struct {
	Sequence  int                    `json:"sequence"`
	Kind      shared.TransactionKind `json:"kind"`
	Amount    decimal.Decimal        `json:"amount"`
	Timestamp time.Time              `json:"timestamp"`
}

// Statement is a read-only view of an account history plus the balance the
// captured entries add up to.
type Statement struct {
	AccountID string
	Balance   decimal.Decimal
	TakenAt   time.Time

	entries []events.Event
}

// Lines yields the statement lines in insertion order. The sequence can be
// ranged over any number of times.
func (s Statement) Lines() iter.Seq[StatementLine] {
	return func(yield func(StatementLine) bool) {
		for _, e := range s.entries {
			base := e.GetBase()
			line := StatementLine{
				Sequence:  base.Sequence,
				Kind:      e.Kind(),
				Amount:    e.Value(),
				Timestamp: base.Timestamp,
			}
			if !yield(line) {
				return
			}
		}
	}
}

func (s Statement) Len() int {
	return len(s.entries)
}

func (s Statement) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s Statement) MarshalJSON() ([]byte, error) {
	lines := make([]StatementLine, 0, len(s.entries))
	for line := range s.Lines() {
		lines = append(lines, line)
	}
	return json.Marshal(struct {
		AccountID string          `json:"accountId"`
		Balance   decimal.Decimal `json:"balance"`
		TakenAt   time.Time       `json:"takenAt"`
		Lines     []StatementLine `json:"lines"`
	}{
		AccountID: s.AccountID,
		Balance:   s.Balance,
		TakenAt:   s.TakenAt,
		Lines:     lines,
	})
}
