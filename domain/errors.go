package domain

import "fmt"

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

// Rejections reported by transaction registration.
var (
	ErrInvalidAmount                = NewDomainError("invalid amount")
	ErrInsufficientFunds            = NewDomainError("insufficient funds")
	ErrWithdrawalLimitExceeded      = NewDomainError("withdrawal limit exceeded")
	ErrDailyWithdrawalLimitExceeded = NewDomainError("daily withdrawal limit exceeded")
	ErrAccountNotOwned              = NewDomainError("account not owned by client")
)

var (
	ErrAccountNotFound = NewDomainError("account not found")
	ErrClientNotFound  = NewDomainError("client not found")
	ErrClientExists    = NewDomainError("client already exists")
	ErrInvalidTaxID    = NewDomainError("invalid tax id")
	ErrNoAccounts      = NewDomainError("client has no accounts")
)
