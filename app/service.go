package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"networth-ledger/domain"
	"networth-ledger/shared"
	"networth-ledger/store"
)

// LedgerService is the application layer: commands load the dataset from the
// store, validate against the domain rules, and persist the changed snapshot;
// queries load the dataset and answer through a fresh domain.Ledger. The
// service holds no state of its own between calls.
type LedgerService struct {
	store store.Store
	log   *logrus.Logger
}

func NewLedgerService(st store.Store, log *logrus.Logger) *LedgerService {
	if log == nil {
		log = logrus.New()
	}
	if st == nil {
		log.Fatal("LedgerService requires a non-nil store")
	}
	return &LedgerService{store: st, log: log}
}

// --- Command Handlers ---

func (s *LedgerService) AddAccount(cmd AddAccountCommand) (string, error) {
	if cmd.Currency == "" {
		return "", domain.NewDomainError("account currency cannot be empty")
	}
	ds, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load dataset: %w", err)
	}

	id := cmd.AccountID
	if id == "" {
		id = uuid.NewString()
	}
	for _, a := range ds.Accounts {
		if a.ID == id {
			return "", fmt.Errorf("%w: %s", domain.ErrAccountExists, id)
		}
	}
	if _, err := ds.Rates.Rate(cmd.Currency); err != nil {
		return "", fmt.Errorf("account currency: %w", err)
	}

	ds.Accounts = append(ds.Accounts, domain.Account{
		ID:             id,
		Name:           cmd.Name,
		Type:           cmd.Type,
		InitialBalance: cmd.InitialBalance,
		Currency:       cmd.Currency,
	})
	if err := s.store.Save(ds); err != nil {
		return "", fmt.Errorf("save dataset: %w", err)
	}
	s.log.WithFields(logrus.Fields{"account": id, "currency": cmd.Currency, "type": cmd.Type}).Info("account added")
	return id, nil
}

func (s *LedgerService) RecordTransaction(cmd RecordTransactionCommand) (string, error) {
	if !cmd.Type.Valid() {
		return "", domain.NewDomainError("unknown transaction type %q", cmd.Type)
	}
	if cmd.Amount.IsNegative() {
		return "", domain.NewDomainError("transaction amount is a magnitude and cannot be negative: %s", cmd.Amount)
	}
	if cmd.DestinationAmount != nil && cmd.DestinationAmount.IsNegative() {
		return "", domain.NewDomainError("destination amount cannot be negative: %s", cmd.DestinationAmount)
	}

	ds, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load dataset: %w", err)
	}
	if !accountExists(ds, cmd.SourceAccountID) {
		return "", fmt.Errorf("%w: source account %s", domain.ErrAccountNotFound, cmd.SourceAccountID)
	}

	tx := domain.Transaction{
		ID:              cmd.TransactionID,
		Date:            dateOnly(cmd.Date),
		Amount:          cmd.Amount,
		Type:            cmd.Type,
		Category:        cmd.Category,
		SourceAccountID: cmd.SourceAccountID,
		Note:            cmd.Note,
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	switch cmd.Type {
	case shared.Transfer:
		if cmd.DestinationAccountID == "" {
			return "", domain.NewDomainError("transfer requires a destination account")
		}
		if !accountExists(ds, cmd.DestinationAccountID) {
			return "", fmt.Errorf("%w: destination account %s", domain.ErrAccountNotFound, cmd.DestinationAccountID)
		}
		tx.DestinationAccountID = cmd.DestinationAccountID
		tx.DestinationAmount = cmd.DestinationAmount
		// Category has no meaning on transfers.
		tx.Category = ""
		if tx.SelfTransfer() {
			s.log.WithField("transaction", tx.ID).Warn("transfer debits and credits the same account; it will have no balance effect")
		}
	default:
		// DestinationAmount is meaningful only for transfers.
		tx.DestinationAmount = nil
	}

	ds.Transactions = append(ds.Transactions, tx)
	if err := s.store.Save(ds); err != nil {
		return "", fmt.Errorf("save dataset: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"transaction": tx.ID,
		"type":        tx.Type,
		"amount":      tx.Amount.String(),
		"source":      tx.SourceAccountID,
	}).Info("transaction recorded")
	return tx.ID, nil
}

func (s *LedgerService) AddHolding(cmd AddHoldingCommand) (string, error) {
	if cmd.Symbol == "" {
		return "", domain.NewDomainError("holding symbol cannot be empty")
	}
	if cmd.Currency == "" {
		return "", domain.NewDomainError("holding currency cannot be empty")
	}
	if cmd.Quantity.IsNegative() || cmd.CostBasis.IsNegative() || cmd.CurrentPrice.IsNegative() {
		return "", domain.NewDomainError("holding quantity, cost basis and price cannot be negative")
	}

	ds, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load dataset: %w", err)
	}
	if _, err := ds.Rates.Rate(cmd.Currency); err != nil {
		return "", fmt.Errorf("holding currency: %w", err)
	}

	id := cmd.HoldingID
	if id == "" {
		id = uuid.NewString()
	}
	ds.Holdings = append(ds.Holdings, domain.PortfolioItem{
		ID:           id,
		Symbol:       cmd.Symbol,
		Name:         cmd.Name,
		Quantity:     cmd.Quantity,
		CostBasis:    cmd.CostBasis,
		CurrentPrice: cmd.CurrentPrice,
		Currency:     cmd.Currency,
	})
	if err := s.store.Save(ds); err != nil {
		return "", fmt.Errorf("save dataset: %w", err)
	}
	s.log.WithFields(logrus.Fields{"holding": id, "symbol": cmd.Symbol}).Info("holding added")
	return id, nil
}

func (s *LedgerService) SetRate(cmd SetRateCommand) error {
	if cmd.Currency == "" {
		return domain.NewDomainError("rate currency cannot be empty")
	}
	if !cmd.Rate.IsPositive() {
		return fmt.Errorf("%w: %s has rate %s", domain.ErrInvalidRate, cmd.Currency, cmd.Rate)
	}
	ds, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if ds.Rates == nil {
		ds.Rates = domain.RateTable{}
	}
	ds.Rates[cmd.Currency] = cmd.Rate
	if err := s.store.Save(ds); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	s.log.WithFields(logrus.Fields{"currency": cmd.Currency, "rate": cmd.Rate.String()}).Info("exchange rate set")
	return nil
}

func (s *LedgerService) SetBaseCurrency(cmd SetBaseCurrencyCommand) error {
	if cmd.Currency == "" {
		return domain.NewDomainError("base currency cannot be empty")
	}
	ds, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if _, err := ds.Rates.Rate(cmd.Currency); err != nil {
		return fmt.Errorf("base currency: %w", err)
	}
	ds.BaseCurrency = cmd.Currency
	if err := s.store.Save(ds); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	s.log.WithField("currency", cmd.Currency).Info("base currency set")
	return nil
}

// --- Query Handlers ---
// Queries never mutate the dataset. Queries that convert between currencies
// validate the rate-table invariant up front so a broken table surfaces as one
// clear error instead of failing mid-aggregation.

func (s *LedgerService) AccountBalance(q BalanceQuery) (Balance, error) {
	_, ledger, err := s.snapshot(false)
	if err != nil {
		return Balance{}, err
	}
	account, ok := ledger.Account(q.AccountID)
	if !ok {
		return Balance{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, q.AccountID)
	}
	return Balance{
		Amount:   ledger.AccountBalanceAt(account, orNow(q.At)),
		Currency: account.Currency,
	}, nil
}

func (s *LedgerService) CashBalance(q AtQuery) (Balance, error) {
	ds, ledger, err := s.snapshot(true)
	if err != nil {
		return Balance{}, err
	}
	amount, err := ledger.CashBalanceAt(orNow(q.At), ds.Rates, ds.BaseCurrency)
	if err != nil {
		return Balance{}, err
	}
	return Balance{Amount: amount, Currency: ds.BaseCurrency}, nil
}

func (s *LedgerService) NetWorth(q AtQuery) (Balance, error) {
	ds, ledger, err := s.snapshot(true)
	if err != nil {
		return Balance{}, err
	}
	amount, err := ledger.NetWorthAt(orNow(q.At), ds.Rates, ds.BaseCurrency)
	if err != nil {
		return Balance{}, err
	}
	return Balance{Amount: amount, Currency: ds.BaseCurrency}, nil
}

func (s *LedgerService) CompareNetWorth(q ComparisonQuery) (NetWorthComparison, error) {
	ds, ledger, err := s.snapshot(true)
	if err != nil {
		return NetWorthComparison{}, err
	}
	current, err := ledger.NetWorthAt(orNow(q.At), ds.Rates, ds.BaseCurrency)
	if err != nil {
		return NetWorthComparison{}, err
	}
	previous, err := ledger.NetWorthAt(q.PreviousAt, ds.Rates, ds.BaseCurrency)
	if err != nil {
		return NetWorthComparison{}, err
	}
	return NetWorthComparison{
		Current:       Balance{Amount: current, Currency: ds.BaseCurrency},
		Previous:      Balance{Amount: previous, Currency: ds.BaseCurrency},
		ChangePercent: domain.PercentageChange(current, previous),
	}, nil
}

func (s *LedgerService) PortfolioStats() (domain.PortfolioStats, shared.Currency, error) {
	ds, ledger, err := s.snapshot(true)
	if err != nil {
		return domain.PortfolioStats{}, "", err
	}
	stats, err := ledger.PortfolioStats(ds.Rates, ds.BaseCurrency)
	if err != nil {
		return domain.PortfolioStats{}, "", err
	}
	return stats, ds.BaseCurrency, nil
}

func (s *LedgerService) Allocation(q AtQuery) ([]domain.Bucket, error) {
	ds, ledger, err := s.snapshot(true)
	if err != nil {
		return nil, err
	}
	return ledger.AllocationByType(orNow(q.At), ds.Rates, ds.BaseCurrency)
}

func (s *LedgerService) ExpenseBreakdown(q ExpensesQuery) ([]domain.Bucket, error) {
	ds, ledger, err := s.snapshot(true)
	if err != nil {
		return nil, err
	}
	return ledger.ExpensesByCategory(orNow(q.Month), ds.Rates, ds.BaseCurrency)
}

func (s *LedgerService) NetWorthSeries(q SeriesQuery) ([]domain.NetWorthPoint, error) {
	ds, ledger, err := s.snapshot(true)
	if err != nil {
		return nil, err
	}
	from := q.From
	if from.IsZero() {
		from = earliestDate(ds.Transactions)
	}
	if from.IsZero() {
		return nil, nil
	}
	return ledger.NetWorthSeries(from, orNow(q.To), ds.Rates, ds.BaseCurrency)
}

// Dataset returns the raw stored snapshot, for listing and for the export
// collaborator, which consumes the collections without the valuation engine.
func (s *LedgerService) Dataset() (*store.Dataset, error) {
	ds, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return ds, nil
}

// --- helpers ---

func (s *LedgerService) snapshot(validate bool) (*store.Dataset, *domain.Ledger, error) {
	ds, err := s.store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	if validate {
		if err := ds.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return ds, ds.Ledger(), nil
}

func accountExists(ds *store.Dataset, id string) bool {
	for _, a := range ds.Accounts {
		if a.ID == id {
			return true
		}
	}
	return false
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

// dateOnly truncates to midnight UTC; transaction dates carry no time-of-day.
func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func earliestDate(txs []domain.Transaction) time.Time {
	var min time.Time
	for _, tx := range txs {
		if min.IsZero() || tx.Date.Before(min) {
			min = tx.Date
		}
	}
	return min
}
