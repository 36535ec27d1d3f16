package domain_test

import (
	"testing"
	"time"

	"networth-ledger/domain"
	"networth-ledger/shared"
)

func TestLedger_AllocationByType(t *testing.T) {
	rates := domain.RateTable{shared.USD: dec("1"), shared.EUR: dec("0.9")}
	now := day(2024, time.March, 15)

	t.Run("GroupsByTypeInFirstSeenOrder", func(t *testing.T) {
		accounts := []domain.Account{
			{ID: "acc-1", Type: "Bank", InitialBalance: dec("100"), Currency: shared.USD},
			{ID: "acc-2", Type: "Cash", InitialBalance: dec("20"), Currency: shared.USD},
			{ID: "acc-3", Type: "Bank", InitialBalance: dec("45"), Currency: shared.EUR},
		}
		l := domain.NewLedger(accounts, nil, nil)
		buckets, err := l.AllocationByType(now, rates, shared.USD)
		if err != nil {
			t.Fatalf("AllocationByType failed: %v", err)
		}
		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
		if buckets[0].Name != "Bank" || !buckets[0].Value.Equal(dec("150")) { // 100 + 45/0.9
			t.Errorf("expected Bank=150 first, got %s=%s", buckets[0].Name, buckets[0].Value)
		}
		if buckets[1].Name != "Cash" || !buckets[1].Value.Equal(dec("20")) {
			t.Errorf("expected Cash=20 second, got %s=%s", buckets[1].Name, buckets[1].Value)
		}
	})

	t.Run("PortfolioBucketOnlyWhenHoldingsExist", func(t *testing.T) {
		accounts := []domain.Account{
			{ID: "acc-1", Type: "Bank", InitialBalance: dec("100"), Currency: shared.USD},
		}

		l := domain.NewLedger(accounts, nil, nil)
		buckets, err := l.AllocationByType(now, rates, shared.USD)
		if err != nil {
			t.Fatalf("AllocationByType failed: %v", err)
		}
		if len(buckets) != 1 {
			t.Fatalf("expected no portfolio bucket without holdings, got %d buckets", len(buckets))
		}

		holdings := []domain.PortfolioItem{
			{ID: "h-1", Symbol: "VTI", Quantity: dec("2"), CostBasis: dec("100"), CurrentPrice: dec("60"), Currency: shared.USD},
		}
		l = domain.NewLedger(accounts, nil, holdings)
		buckets, err = l.AllocationByType(now, rates, shared.USD)
		if err != nil {
			t.Fatalf("AllocationByType failed: %v", err)
		}
		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
		last := buckets[len(buckets)-1]
		if last.Name != domain.PortfolioBucketName || !last.Value.Equal(dec("120")) {
			t.Errorf("expected Portfolio=120 last, got %s=%s", last.Name, last.Value)
		}
	})
}

func TestLedger_ExpensesByCategory(t *testing.T) {
	rates := domain.RateTable{shared.USD: dec("1"), shared.EUR: dec("0.9")}
	accounts := []domain.Account{
		{ID: "acc-usd", Type: "Bank", InitialBalance: dec("1000"), Currency: shared.USD},
		{ID: "acc-eur", Type: "Bank", InitialBalance: dec("1000"), Currency: shared.EUR},
	}

	t.Run("FiltersToCalendarMonthAndSortsDescending", func(t *testing.T) {
		txs := []domain.Transaction{
			{ID: "tx-1", Date: day(2024, time.March, 3), Amount: dec("40"), Type: shared.Expense, Category: "Food", SourceAccountID: "acc-usd"},
			{ID: "tx-2", Date: day(2024, time.March, 10), Amount: dec("90"), Type: shared.Expense, Category: "Rent", SourceAccountID: "acc-usd"},
			{ID: "tx-3", Date: day(2024, time.March, 20), Amount: dec("20"), Type: shared.Expense, Category: "Food", SourceAccountID: "acc-usd"},
			// Outside the month, must be ignored.
			{ID: "tx-4", Date: day(2024, time.February, 28), Amount: dec("500"), Type: shared.Expense, Category: "Travel", SourceAccountID: "acc-usd"},
			{ID: "tx-5", Date: day(2024, time.April, 1), Amount: dec("500"), Type: shared.Expense, Category: "Travel", SourceAccountID: "acc-usd"},
			// Income is not an expense.
			{ID: "tx-6", Date: day(2024, time.March, 15), Amount: dec("300"), Type: shared.Income, SourceAccountID: "acc-usd"},
		}
		l := domain.NewLedger(accounts, txs, nil)
		buckets, err := l.ExpensesByCategory(day(2024, time.March, 15), rates, shared.USD)
		if err != nil {
			t.Fatalf("ExpensesByCategory failed: %v", err)
		}
		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
		if buckets[0].Name != "Rent" || !buckets[0].Value.Equal(dec("90")) {
			t.Errorf("expected Rent=90 first, got %s=%s", buckets[0].Name, buckets[0].Value)
		}
		if buckets[1].Name != "Food" || !buckets[1].Value.Equal(dec("60")) { // 40 + 20
			t.Errorf("expected Food=60 second, got %s=%s", buckets[1].Name, buckets[1].Value)
		}
	})

	t.Run("ConvertsFromSourceAccountCurrency", func(t *testing.T) {
		txs := []domain.Transaction{
			{ID: "tx-1", Date: day(2024, time.March, 3), Amount: dec("45"), Type: shared.Expense, Category: "Food", SourceAccountID: "acc-eur"},
		}
		l := domain.NewLedger(accounts, txs, nil)
		buckets, err := l.ExpensesByCategory(day(2024, time.March, 1), rates, shared.USD)
		if err != nil {
			t.Fatalf("ExpensesByCategory failed: %v", err)
		}
		if len(buckets) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(buckets))
		}
		if !buckets[0].Value.Equal(dec("50")) { // 45 / 0.9
			t.Errorf("expected 50, got %s", buckets[0].Value)
		}
	})

	t.Run("EqualTotalsKeepFirstSeenOrder", func(t *testing.T) {
		txs := []domain.Transaction{
			{ID: "tx-1", Date: day(2024, time.March, 3), Amount: dec("30"), Type: shared.Expense, Category: "Food", SourceAccountID: "acc-usd"},
			{ID: "tx-2", Date: day(2024, time.March, 4), Amount: dec("30"), Type: shared.Expense, Category: "Fuel", SourceAccountID: "acc-usd"},
		}
		l := domain.NewLedger(accounts, txs, nil)
		buckets, err := l.ExpensesByCategory(day(2024, time.March, 1), rates, shared.USD)
		if err != nil {
			t.Fatalf("ExpensesByCategory failed: %v", err)
		}
		if buckets[0].Name != "Food" || buckets[1].Name != "Fuel" {
			t.Errorf("expected stable Food,Fuel order, got %s,%s", buckets[0].Name, buckets[1].Name)
		}
	})

	t.Run("ExcludesDanglingAccounts", func(t *testing.T) {
		txs := []domain.Transaction{
			{ID: "tx-1", Date: day(2024, time.March, 3), Amount: dec("30"), Type: shared.Expense, Category: "Food", SourceAccountID: "acc-gone"},
		}
		l := domain.NewLedger(accounts, txs, nil)
		buckets, err := l.ExpensesByCategory(day(2024, time.March, 1), rates, shared.USD)
		if err != nil {
			t.Fatalf("ExpensesByCategory failed: %v", err)
		}
		if len(buckets) != 0 {
			t.Errorf("expected no buckets, got %d", len(buckets))
		}
	})
}
