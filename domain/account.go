package domain

import (
	"github.com/shopspring/decimal"

	"networth-ledger/shared"
)

// Account describes a tracked money account. It is immutable once handed to the
// engine: balances are always derived by replaying transactions on top of
// InitialBalance, never stored back.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Type is a free-form category tag ("Bank", "Cash", ...), used only for
	// allocation grouping.
	Type string `json:"type"`

	// InitialBalance is the signed balance before any recorded transaction, in
	// the account's own currency. It is not tied to an opening date.
	InitialBalance decimal.Decimal `json:"initialBalance"`

	Currency shared.Currency `json:"currency"`
}
