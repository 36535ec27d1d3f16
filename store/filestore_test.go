package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"networth-ledger/domain"
	"networth-ledger/shared"
	"networth-ledger/store"
)

// Helper to create decimals in tests, panics on error
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleDataset() *store.Dataset {
	ds := store.NewDataset(shared.USD)
	ds.Rates[shared.EUR] = dec("0.9")
	ds.Accounts = []domain.Account{
		{ID: "acc-1", Name: "Checking", Type: "Bank", InitialBalance: dec("100.50"), Currency: shared.USD},
	}
	ds.Transactions = []domain.Transaction{
		{
			ID:              "tx-1",
			Date:            time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Amount:          dec("25"),
			Type:            shared.Expense,
			Category:        "Food",
			SourceAccountID: "acc-1",
		},
	}
	ds.Holdings = []domain.PortfolioItem{
		{ID: "h-1", Symbol: "VTI", Quantity: dec("10"), CostBasis: dec("500"), CurrentPrice: dec("60"), Currency: shared.USD},
	}
	return ds
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networth.json")
	fs := store.NewFileStore(path, shared.USD, nil)

	original := sampleDataset()
	if err := fs.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.BaseCurrency != shared.USD {
		t.Errorf("expected base USD, got %s", loaded.BaseCurrency)
	}
	if !loaded.Rates[shared.EUR].Equal(dec("0.9")) {
		t.Errorf("expected EUR rate 0.9, got %s", loaded.Rates[shared.EUR])
	}
	if len(loaded.Accounts) != 1 || !loaded.Accounts[0].InitialBalance.Equal(dec("100.50")) {
		t.Errorf("account did not survive the round trip: %+v", loaded.Accounts)
	}
	if len(loaded.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(loaded.Transactions))
	}
	tx := loaded.Transactions[0]
	if !tx.Date.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("transaction date mismatch: got %s", tx.Date)
	}
	if tx.Type != shared.Expense || tx.Category != "Food" {
		t.Errorf("transaction fields mismatch: %+v", tx)
	}
	if len(loaded.Holdings) != 1 || loaded.Holdings[0].Symbol != "VTI" {
		t.Errorf("holding did not survive the round trip: %+v", loaded.Holdings)
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	fs := store.NewFileStore(path, shared.EUR, nil)

	ds, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.BaseCurrency != shared.EUR {
		t.Errorf("expected configured base EUR, got %s", ds.BaseCurrency)
	}
	if !ds.Rates[shared.EUR].Equal(dec("1")) {
		t.Errorf("expected base rate anchored at 1, got %s", ds.Rates[shared.EUR])
	}
	if len(ds.Accounts) != 0 || len(ds.Transactions) != 0 || len(ds.Holdings) != 0 {
		t.Errorf("expected empty collections, got %+v", ds)
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networth.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	fs := store.NewFileStore(path, shared.USD, nil)
	if _, err := fs.Load(); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestFileStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "networth.json")
	fs := store.NewFileStore(path, shared.USD, nil)
	if err := fs.Save(sampleDataset()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file should have been renamed away, stat err: %v", err)
	}
}

func TestMemoryStore_CopiesOnLoadAndSave(t *testing.T) {
	ms := store.NewMemoryStore(sampleDataset(), shared.USD)

	first, err := ms.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Mutating a loaded snapshot must not leak into the store.
	first.Accounts[0].Name = "Mutated"
	first.Rates[shared.EUR] = dec("0.1")

	second, err := ms.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if second.Accounts[0].Name != "Checking" {
		t.Errorf("stored account name changed: %s", second.Accounts[0].Name)
	}
	if !second.Rates[shared.EUR].Equal(dec("0.9")) {
		t.Errorf("stored rate changed: %s", second.Rates[shared.EUR])
	}
}

func TestDataset_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		if err := sampleDataset().Validate(); err != nil {
			t.Errorf("expected valid dataset, got %v", err)
		}
	})

	t.Run("FailOnMissingBase", func(t *testing.T) {
		ds := sampleDataset()
		ds.BaseCurrency = ""
		var domainErr *domain.DomainError
		if err := ds.Validate(); !errors.As(err, &domainErr) {
			t.Errorf("expected DomainError, got %v", err)
		}
	})

	t.Run("FailOnAccountCurrencyWithoutRate", func(t *testing.T) {
		ds := sampleDataset()
		ds.Accounts = append(ds.Accounts, domain.Account{ID: "acc-2", Currency: "JPY"})
		if err := ds.Validate(); !errors.Is(err, domain.ErrUnknownCurrency) {
			t.Errorf("expected ErrUnknownCurrency, got %v", err)
		}
	})

	t.Run("FailOnZeroRate", func(t *testing.T) {
		ds := sampleDataset()
		ds.Rates[shared.EUR] = dec("0")
		ds.Accounts[0].Currency = shared.EUR
		if err := ds.Validate(); !errors.Is(err, domain.ErrInvalidRate) {
			t.Errorf("expected ErrInvalidRate, got %v", err)
		}
	})

	t.Run("FailOnHoldingCurrencyWithoutRate", func(t *testing.T) {
		ds := sampleDataset()
		ds.Holdings[0].Currency = "CHF"
		if err := ds.Validate(); !errors.Is(err, domain.ErrUnknownCurrency) {
			t.Errorf("expected ErrUnknownCurrency, got %v", err)
		}
	})
}
