package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"networth-ledger/shared"
)

// RateTable maps a currency code to its rate against one implicit anchor
// currency. The anchor's own entry must be exactly 1; every conversion pivots
// through it. The base currency of aggregate outputs is chosen separately and
// need not be the anchor.
type RateTable map[shared.Currency]decimal.Decimal

// Rate returns the table entry for c, or an error wrapping ErrUnknownCurrency
// when the code is absent and ErrInvalidRate when the entry is zero or negative.
func (r RateTable) Rate(c shared.Currency) (decimal.Decimal, error) {
	rate, ok := r[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, c)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s has rate %s", ErrInvalidRate, c, rate)
	}
	return rate, nil
}

// Clone returns an independent copy of the table.
func (r RateTable) Clone() RateTable {
	if r == nil {
		return nil
	}
	out := make(RateTable, len(r))
	for c, rate := range r {
		out[c] = rate
	}
	return out
}

// Convert converts an amount between two currency codes by pivoting through the
// anchor currency: (amount / rates[from]) * rates[to]. Same-currency conversion
// is an exact identity and never touches the table, so it holds even for codes
// absent from it. No rounding is applied; rounding for display belongs to the
// presentation layer.
func Convert(amount decimal.Decimal, from, to shared.Currency, rates RateTable) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	fromRate, err := rates.Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := rates.Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Div(fromRate).Mul(toRate), nil
}
