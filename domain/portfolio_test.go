package domain_test

import (
	"errors"
	"testing"

	"networth-ledger/domain"
	"networth-ledger/shared"
)

func TestLedger_PortfolioStats(t *testing.T) {
	rates := domain.RateTable{shared.USD: dec("1"), shared.EUR: dec("0.9")}

	t.Run("Success", func(t *testing.T) {
		holdings := []domain.PortfolioItem{
			{ID: "h-1", Symbol: "VTI", Quantity: dec("10"), CostBasis: dec("500"), CurrentPrice: dec("60"), Currency: shared.USD},
		}
		l := domain.NewLedger(nil, nil, holdings)
		stats, err := l.PortfolioStats(rates, shared.USD)
		if err != nil {
			t.Fatalf("PortfolioStats failed: %v", err)
		}
		if !stats.TotalCost.Equal(dec("500")) {
			t.Errorf("expected total cost 500, got %s", stats.TotalCost)
		}
		if !stats.TotalValue.Equal(dec("600")) { // 10 * 60
			t.Errorf("expected total value 600, got %s", stats.TotalValue)
		}
		if !stats.GainLoss.Equal(dec("100")) {
			t.Errorf("expected gain 100, got %s", stats.GainLoss)
		}
		if !stats.GainLossPercent.Equal(dec("20")) { // 100 / 500 * 100
			t.Errorf("expected gain percent 20, got %s", stats.GainLossPercent)
		}
	})

	t.Run("ConvertsHoldingsToBase", func(t *testing.T) {
		holdings := []domain.PortfolioItem{
			{ID: "h-1", Symbol: "VWCE", Quantity: dec("9"), CostBasis: dec("90"), CurrentPrice: dec("10"), Currency: shared.EUR},
		}
		l := domain.NewLedger(nil, nil, holdings)
		stats, err := l.PortfolioStats(rates, shared.USD)
		if err != nil {
			t.Fatalf("PortfolioStats failed: %v", err)
		}
		if !stats.TotalCost.Equal(dec("100")) { // 90 / 0.9
			t.Errorf("expected total cost 100, got %s", stats.TotalCost)
		}
		if !stats.TotalValue.Equal(dec("100")) { // 9 * 10 / 0.9
			t.Errorf("expected total value 100, got %s", stats.TotalValue)
		}
	})

	t.Run("EmptyPortfolio", func(t *testing.T) {
		l := domain.NewLedger(nil, nil, nil)
		stats, err := l.PortfolioStats(rates, shared.USD)
		if err != nil {
			t.Fatalf("PortfolioStats failed: %v", err)
		}
		if !stats.TotalValue.IsZero() || !stats.TotalCost.IsZero() {
			t.Errorf("expected zero stats, got cost %s value %s", stats.TotalCost, stats.TotalValue)
		}
	})

	t.Run("ZeroCostReportsZeroPercent", func(t *testing.T) {
		holdings := []domain.PortfolioItem{
			{ID: "h-1", Symbol: "GRANT", Quantity: dec("5"), CostBasis: dec("0"), CurrentPrice: dec("20"), Currency: shared.USD},
		}
		l := domain.NewLedger(nil, nil, holdings)
		stats, err := l.PortfolioStats(rates, shared.USD)
		if err != nil {
			t.Fatalf("PortfolioStats failed: %v", err)
		}
		if !stats.GainLoss.Equal(dec("100")) {
			t.Errorf("expected gain 100, got %s", stats.GainLoss)
		}
		if !stats.GainLossPercent.IsZero() {
			t.Errorf("expected gain percent 0 on zero cost, got %s", stats.GainLossPercent)
		}
	})

	t.Run("FailOnUnknownCurrency", func(t *testing.T) {
		holdings := []domain.PortfolioItem{
			{ID: "h-1", Symbol: "N225", Quantity: dec("1"), CostBasis: dec("100"), CurrentPrice: dec("100"), Currency: "JPY"},
		}
		l := domain.NewLedger(nil, nil, holdings)
		_, err := l.PortfolioStats(rates, shared.USD)
		if !errors.Is(err, domain.ErrUnknownCurrency) {
			t.Errorf("expected ErrUnknownCurrency, got %v", err)
		}
	})
}

func TestPortfolioItem_MarketValue(t *testing.T) {
	item := domain.PortfolioItem{Quantity: dec("2.5"), CurrentPrice: dec("40")}
	if got := item.MarketValue(); !got.Equal(dec("100")) {
		t.Errorf("expected 100, got %s", got)
	}
}
