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

var (
	// ErrUnknownCurrency marks a currency code that has no entry in the active
	// rate table. It is always surfaced to the caller, never silently treated
	// as rate 1.
	ErrUnknownCurrency = NewDomainError("unknown currency")

	// ErrInvalidRate marks a rate table entry that is zero or negative.
	// Conversion never divides by such a rate.
	ErrInvalidRate = NewDomainError("invalid exchange rate")

	ErrAccountNotFound = NewDomainError("account not found")
	ErrAccountExists   = NewDomainError("account already exists")
)
