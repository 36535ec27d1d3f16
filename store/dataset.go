package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"networth-ledger/domain"
	"networth-ledger/shared"
)

// Dataset is the fully-materialized snapshot exchanged with the engine: the
// three collections, the active rate table and the base currency for aggregate
// outputs. A store hands out and accepts whole datasets; there is no partial
// load.
type Dataset struct {
	BaseCurrency shared.Currency        `json:"baseCurrency"`
	Rates        domain.RateTable       `json:"rates"`
	Accounts     []domain.Account       `json:"accounts"`
	Transactions []domain.Transaction   `json:"transactions"`
	Holdings     []domain.PortfolioItem `json:"holdings"`
}

// NewDataset returns an empty dataset whose rate table anchors the given base
// currency at 1.
func NewDataset(base shared.Currency) *Dataset {
	return &Dataset{
		BaseCurrency: base,
		Rates:        domain.RateTable{base: decimal.NewFromInt(1)},
	}
}

// Clone returns a deep copy. Decimal values are immutable, so copying the
// slices and the rate map is enough.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	return &Dataset{
		BaseCurrency: d.BaseCurrency,
		Rates:        d.Rates.Clone(),
		Accounts:     append([]domain.Account(nil), d.Accounts...),
		Transactions: append([]domain.Transaction(nil), d.Transactions...),
		Holdings:     append([]domain.PortfolioItem(nil), d.Holdings...),
	}
}

// Ledger builds the immutable query snapshot over this dataset's collections.
func (d *Dataset) Ledger() *domain.Ledger {
	return domain.NewLedger(d.Accounts, d.Transactions, d.Holdings)
}

// Validate checks the invariant that the base currency and every currency
// referenced by an account or holding has a positive entry in the rate table.
// Violations are reported, never repaired.
func (d *Dataset) Validate() error {
	if d.BaseCurrency == "" {
		return domain.NewDomainError("base currency is not set")
	}
	if _, err := d.Rates.Rate(d.BaseCurrency); err != nil {
		return fmt.Errorf("base currency: %w", err)
	}
	for _, a := range d.Accounts {
		if _, err := d.Rates.Rate(a.Currency); err != nil {
			return fmt.Errorf("account %s: %w", a.ID, err)
		}
	}
	for _, h := range d.Holdings {
		if _, err := d.Rates.Rate(h.Currency); err != nil {
			return fmt.Errorf("holding %s: %w", h.Symbol, err)
		}
	}
	return nil
}
