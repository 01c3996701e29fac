package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"personal-ledger/shared"
)

type EventType string

type BaseEvent struct {
	EventID     uuid.UUID `json:"eventId"`
	AggregateID string    `json:"aggregateId"`
	Sequence    int       `json:"sequence"` // Position in the account history, starting at 1.
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
}

// Event is a transaction that has been registered against an account.
type Event interface {
	GetBase() BaseEvent
	Kind() shared.TransactionKind
	Value() decimal.Decimal
	SignedAmount() decimal.Decimal
}

func (e BaseEvent) GetBase() BaseEvent {
	return e
}

const (
	DepositMadeType    EventType = "DepositMade"
	WithdrawalMadeType EventType = "WithdrawalMade"
)

func NewBaseEvent(aggregateID string, sequence int, eventType EventType, at time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New(),
		AggregateID: aggregateID,
		Sequence:    sequence,
		Timestamp:   at,
		Type:        eventType,
	}
}
