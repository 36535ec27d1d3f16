package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"networth-ledger/shared"
)

// Ledger is an immutable snapshot of the caller-owned collections. Every query
// is a pure function of this snapshot plus a rate table and a target instant;
// nothing is mutated and nothing is cached between calls, so concurrent readers
// need no locking. Consistency of the snapshot itself is the caller's job.
type Ledger struct {
	accounts     []Account
	transactions []Transaction
	holdings     []PortfolioItem

	byID map[string]Account
}

// NewLedger builds a snapshot over the given collections. The slices are
// retained as-is; callers must not mutate them while the ledger is in use.
func NewLedger(accounts []Account, transactions []Transaction, holdings []PortfolioItem) *Ledger {
	byID := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Ledger{
		accounts:     accounts,
		transactions: transactions,
		holdings:     holdings,
		byID:         byID,
	}
}

// Account looks up an account by id.
func (l *Ledger) Account(id string) (Account, bool) {
	a, ok := l.byID[id]
	return a, ok
}

// Accounts returns a copy of the account collection.
func (l *Ledger) Accounts() []Account {
	return append([]Account(nil), l.accounts...)
}

// Transactions returns a copy of the transaction log.
func (l *Ledger) Transactions() []Transaction {
	return append([]Transaction(nil), l.transactions...)
}

// Holdings returns a copy of the portfolio collection.
func (l *Ledger) Holdings() []PortfolioItem {
	return append([]PortfolioItem(nil), l.holdings...)
}

// AccountBalanceAt replays every transaction touching the account, dated up to
// the end of the calendar month containing instant, on top of the initial
// balance. The month-end cutoff makes the result identical for every instant
// within the same month, which is what monthly reporting wants; same-day
// ordering within a month is deliberately ignored. The result is in the
// account's own currency.
func (l *Ledger) AccountBalanceAt(account Account, instant time.Time) decimal.Decimal {
	cutoff := monthEnd(instant)
	balance := account.InitialBalance
	for _, tx := range l.transactions {
		if tx.Date.After(cutoff) {
			continue
		}
		balance = balance.Add(l.effectOn(account.ID, tx))
	}
	return balance
}

// CashBalanceAt is the sum of every independently replayed per-account balance
// converted into the base currency. It is defined account-by-account, not as
// one global fold: for a cross-currency transfer each account's ledger carries
// its own leg, and the aggregate is simply the sum of the converted balances.
// Aggregate value is not conserved when a recorded destination amount differs
// from the rate-implied conversion; that reflects real spread and is intended.
func (l *Ledger) CashBalanceAt(instant time.Time, rates RateTable, base shared.Currency) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range l.accounts {
		converted, err := Convert(l.AccountBalanceAt(a, instant), a.Currency, base, rates)
		if err != nil {
			return decimal.Zero, fmt.Errorf("cash balance for account %s: %w", a.ID, err)
		}
		total = total.Add(converted)
	}
	return total, nil
}

// effectOn is the signed effect of one transaction on the given account, in
// that account's own currency. Transactions referencing account ids absent from
// the snapshot are excluded from the fold rather than failing it, so partial
// data still produces a best-effort balance. Same-account transfers fold to
// zero.
func (l *Ledger) effectOn(accountID string, tx Transaction) decimal.Decimal {
	switch tx.Type {
	case shared.Income:
		if tx.SourceAccountID == accountID && l.known(tx.SourceAccountID) {
			return tx.Amount
		}
	case shared.Expense:
		if tx.SourceAccountID == accountID && l.known(tx.SourceAccountID) {
			return tx.Amount.Neg()
		}
	case shared.Transfer:
		if tx.SelfTransfer() {
			return decimal.Zero
		}
		if !l.known(tx.SourceAccountID) || !l.known(tx.DestinationAccountID) {
			return decimal.Zero
		}
		if tx.SourceAccountID == accountID {
			return tx.Amount.Neg()
		}
		if tx.DestinationAccountID == accountID {
			return tx.DestinationLeg()
		}
	}
	return decimal.Zero
}

func (l *Ledger) known(accountID string) bool {
	_, ok := l.byID[accountID]
	return ok
}

// monthEnd returns the last instant of the calendar month containing t, in UTC.
func monthEnd(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
}
