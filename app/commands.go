package app

import (
	"time"

	"github.com/shopspring/decimal"

	"networth-ledger/shared"
)

// --- Command Struct Definitions ---
// Commands represent the intent to change the stored dataset.

type AddAccountCommand struct {
	AccountID      string // generated when empty
	Name           string
	Type           string
	InitialBalance decimal.Decimal
	Currency       shared.Currency
}

type RecordTransactionCommand struct {
	TransactionID        string // generated when empty
	Date                 time.Time
	Amount               decimal.Decimal // magnitude; sign comes from Type
	Type                 shared.TransactionType
	Category             string
	SourceAccountID      string
	DestinationAccountID string           // transfers only
	DestinationAmount    *decimal.Decimal // cross-currency transfers only
	Note                 string
}

type AddHoldingCommand struct {
	HoldingID    string // generated when empty
	Symbol       string
	Name         string
	Quantity     decimal.Decimal
	CostBasis    decimal.Decimal
	CurrentPrice decimal.Decimal
	Currency     shared.Currency
}

type SetRateCommand struct {
	Currency shared.Currency
	Rate     decimal.Decimal
}

type SetBaseCurrencyCommand struct {
	Currency shared.Currency
}

// --- Query Structures (Input for Read Operations) ---
// A zero At means "now". Comparison instants are chosen by the caller; the
// engine itself has no notion of month-over-month versus year-over-year.

type BalanceQuery struct {
	AccountID string
	At        time.Time
}

type AtQuery struct {
	At time.Time
}

type ComparisonQuery struct {
	At         time.Time
	PreviousAt time.Time
}

type ExpensesQuery struct {
	Month time.Time
}

type SeriesQuery struct {
	From time.Time
	To   time.Time
}

// --- Query Results ---

// Balance is an amount tagged with the currency it is expressed in.
type Balance struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency shared.Currency `json:"currency"`
}

// NetWorthComparison pairs net worth at two instants with the derived change.
type NetWorthComparison struct {
	Current       Balance         `json:"current"`
	Previous      Balance         `json:"previous"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}
