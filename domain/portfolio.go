package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"networth-ledger/shared"
)

// PortfolioItem is one holding. CostBasis is the total amount paid for the
// whole position, not a per-unit price. CurrentPrice is the latest known
// per-unit price; there is no historical price series, so valuation always uses
// it regardless of the instant queried elsewhere.
type PortfolioItem struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	CostBasis    decimal.Decimal `json:"costBasis"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	Currency     shared.Currency `json:"currency"`
}

// MarketValue is quantity times the latest known price, in the item's currency.
func (p PortfolioItem) MarketValue() decimal.Decimal {
	return p.Quantity.Mul(p.CurrentPrice)
}

// PortfolioStats aggregates cost basis, market value and gain/loss across all
// holdings, expressed in one base currency.
type PortfolioStats struct {
	TotalCost       decimal.Decimal `json:"totalCost"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	GainLoss        decimal.Decimal `json:"gainLoss"`
	GainLossPercent decimal.Decimal `json:"gainLossPercent"`
}

// PortfolioStats values every holding at its latest known price and converts
// both cost and value into the base currency. A zero or negative total cost
// reports a gain/loss of 0%, never a division blow-up.
func (l *Ledger) PortfolioStats(rates RateTable, base shared.Currency) (PortfolioStats, error) {
	totalCost := decimal.Zero
	totalValue := decimal.Zero
	for _, item := range l.holdings {
		cost, err := Convert(item.CostBasis, item.Currency, base, rates)
		if err != nil {
			return PortfolioStats{}, fmt.Errorf("cost basis for holding %s: %w", item.Symbol, err)
		}
		value, err := Convert(item.MarketValue(), item.Currency, base, rates)
		if err != nil {
			return PortfolioStats{}, fmt.Errorf("market value for holding %s: %w", item.Symbol, err)
		}
		totalCost = totalCost.Add(cost)
		totalValue = totalValue.Add(value)
	}

	stats := PortfolioStats{
		TotalCost:  totalCost,
		TotalValue: totalValue,
		GainLoss:   totalValue.Sub(totalCost),
	}
	if totalCost.IsPositive() {
		stats.GainLossPercent = stats.GainLoss.Div(totalCost).Mul(decimal.NewFromInt(100))
	}
	return stats, nil
}
