package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"networth-ledger/shared"
)

// Bucket is a name/value pair for charting and allocation reports.
type Bucket struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// PortfolioBucketName labels the synthetic allocation bucket holding the total
// portfolio market value.
const PortfolioBucketName = "Portfolio"

// AllocationByType groups current per-account balances by the account's type
// tag, converted to the base currency, plus one synthetic bucket for the total
// portfolio value when any holdings exist. Buckets appear in first-seen order.
func (l *Ledger) AllocationByType(now time.Time, rates RateTable, base shared.Currency) ([]Bucket, error) {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, a := range l.accounts {
		converted, err := Convert(l.AccountBalanceAt(a, now), a.Currency, base, rates)
		if err != nil {
			return nil, fmt.Errorf("allocation for account %s: %w", a.ID, err)
		}
		if _, seen := totals[a.Type]; !seen {
			order = append(order, a.Type)
		}
		totals[a.Type] = totals[a.Type].Add(converted)
	}

	buckets := make([]Bucket, 0, len(order)+1)
	for _, name := range order {
		buckets = append(buckets, Bucket{Name: name, Value: totals[name]})
	}
	if len(l.holdings) > 0 {
		stats, err := l.PortfolioStats(rates, base)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, Bucket{Name: PortfolioBucketName, Value: stats.TotalValue})
	}
	return buckets, nil
}

// ExpensesByCategory groups Expense transactions dated within the calendar
// month of month by category, converted from the source account's currency to
// the base currency, sorted descending by amount. The sort is stable, so
// equal-valued categories keep first-seen order. Expenses on unknown accounts
// are excluded, matching the balance fold policy.
func (l *Ledger) ExpensesByCategory(month time.Time, rates RateTable, base shared.Currency) ([]Bucket, error) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, tx := range l.transactions {
		if tx.Type != shared.Expense {
			continue
		}
		if tx.Date.Before(start) || !tx.Date.Before(end) {
			continue
		}
		account, ok := l.Account(tx.SourceAccountID)
		if !ok {
			continue
		}
		converted, err := Convert(tx.Amount, account.Currency, base, rates)
		if err != nil {
			return nil, fmt.Errorf("expense %s: %w", tx.ID, err)
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(converted)
	}

	buckets := make([]Bucket, 0, len(order))
	for _, name := range order {
		buckets = append(buckets, Bucket{Name: name, Value: totals[name]})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Value.GreaterThan(buckets[j].Value)
	})
	return buckets, nil
}
