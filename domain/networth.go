package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"networth-ledger/shared"
)

// NetWorthAt is the month-end cash balance plus the current portfolio market
// value, both in the base currency. Holdings are always valued at the latest
// known price even for past instants; only the cash side is replayed.
func (l *Ledger) NetWorthAt(instant time.Time, rates RateTable, base shared.Currency) (decimal.Decimal, error) {
	cash, err := l.CashBalanceAt(instant, rates, base)
	if err != nil {
		return decimal.Zero, err
	}
	stats, err := l.PortfolioStats(rates, base)
	if err != nil {
		return decimal.Zero, err
	}
	return cash.Add(stats.TotalValue), nil
}

// PercentageChange is (current - previous) / previous * 100, with a zero
// previous value reported as 0 rather than infinity. Month-over-month versus
// year-over-year is purely the caller's choice of instants; there is no mode
// here.
func PercentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}

// NetWorthPoint is one monthly sample of a net worth series.
type NetWorthPoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// NetWorthSeries samples net worth once per calendar month from the month of
// from through the month of to, inclusive. Each point is recomputed from
// scratch.
func (l *Ledger) NetWorthSeries(from, to time.Time, rates RateTable, base shared.Currency) ([]NetWorthPoint, error) {
	var points []NetWorthPoint
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(to) {
		value, err := l.NetWorthAt(cur, rates, base)
		if err != nil {
			return nil, err
		}
		points = append(points, NetWorthPoint{Date: cur, Value: value})
		cur = cur.AddDate(0, 1, 0)
	}
	return points, nil
}
