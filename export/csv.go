// Package export dumps the raw collections as CSV for spreadsheet use. It
// consumes the stored dataset directly and never calls into the valuation
// engine: amounts are written exactly as recorded, unconverted and unrounded.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"networth-ledger/store"
)

const dateLayout = "2006-01-02"

// WriteAll writes accounts.csv, transactions.csv and holdings.csv into dir,
// creating it if needed.
func WriteAll(dir string, ds *store.Dataset) error {
	if ds == nil {
		return fmt.Errorf("cannot export nil dataset")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory %s: %w", dir, err)
	}
	if err := writeAccounts(filepath.Join(dir, "accounts.csv"), ds); err != nil {
		return err
	}
	if err := writeTransactions(filepath.Join(dir, "transactions.csv"), ds); err != nil {
		return err
	}
	return writeHoldings(filepath.Join(dir, "holdings.csv"), ds)
}

func writeAccounts(path string, ds *store.Dataset) error {
	rows := [][]string{{"id", "name", "type", "initialBalance", "currency"}}
	for _, a := range ds.Accounts {
		rows = append(rows, []string{a.ID, a.Name, a.Type, a.InitialBalance.String(), string(a.Currency)})
	}
	return writeCSV(path, rows)
}

func writeTransactions(path string, ds *store.Dataset) error {
	rows := [][]string{{"id", "date", "type", "amount", "category", "sourceAccountId", "destinationAccountId", "destinationAmount", "note"}}
	for _, tx := range ds.Transactions {
		destAmount := ""
		if tx.DestinationAmount != nil {
			destAmount = tx.DestinationAmount.String()
		}
		rows = append(rows, []string{
			tx.ID,
			tx.Date.Format(dateLayout),
			string(tx.Type),
			tx.Amount.String(),
			tx.Category,
			tx.SourceAccountID,
			tx.DestinationAccountID,
			destAmount,
			tx.Note,
		})
	}
	return writeCSV(path, rows)
}

func writeHoldings(path string, ds *store.Dataset) error {
	rows := [][]string{{"id", "symbol", "name", "quantity", "costBasis", "currentPrice", "currency"}}
	for _, h := range ds.Holdings {
		rows = append(rows, []string{h.ID, h.Symbol, h.Name, h.Quantity.String(), h.CostBasis.String(), h.CurrentPrice.String(), string(h.Currency)})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	// WriteAll flushes, so only the file close can still fail.
	if err := csv.NewWriter(f).WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
