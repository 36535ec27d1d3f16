package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"networth-ledger/app"
	"networth-ledger/shared"
)

// Variables to hold flag values for transaction commands
var (
	txDate       string
	txAmountStr  string
	txType       string
	txCategory   string
	txFromID     string
	txToID       string
	txDestAmount string
	txNote       string
)

// txCmd represents the transaction command group
var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Record and list transactions",
	Long: `Provides commands for appending income, expense and transfer transactions
to the log. Amounts are magnitudes; the sign is implied by the type.`,
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long: `Appends one transaction. Transfers require --to; a cross-currency transfer
may carry --dest-amount, the amount actually credited to the destination
account in its own currency.`,
	Run: func(cmd *cobra.Command, args []string) {
		if txFromID == "" {
			exitWithError(fmt.Errorf("source account (--from) is required"))
		}
		if txAmountStr == "" {
			exitWithError(fmt.Errorf("amount (--amount) is required"))
		}

		amount, err := parseAmount("amount", txAmountStr)
		if err != nil {
			exitWithError(err)
		}
		date, err := parseDate(txDate)
		if err != nil {
			exitWithError(err)
		}

		var destAmount *decimal.Decimal
		if txDestAmount != "" {
			parsed, err := parseAmount("destination amount", txDestAmount)
			if err != nil {
				exitWithError(err)
			}
			destAmount = &parsed
		}

		id, err := ledgerService.RecordTransaction(app.RecordTransactionCommand{
			Date:                 date,
			Amount:               amount,
			Type:                 shared.TransactionType(txType),
			Category:             txCategory,
			SourceAccountID:      txFromID,
			DestinationAccountID: txToID,
			DestinationAmount:    destAmount,
			Note:                 txNote,
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to record transaction: %w", err))
		}

		fmt.Printf("Recorded %s of %s. ID: %s\n", txType, amount.StringFixed(2), id)
	},
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := ledgerService.Dataset()
		if err != nil {
			exitWithError(fmt.Errorf("failed to list transactions: %w", err))
		}
		if len(ds.Transactions) == 0 {
			fmt.Println("No transactions recorded.")
			return
		}
		fmt.Printf("%-38s %-10s %-8s %12s %-14s %s\n", "ID", "DATE", "TYPE", "AMOUNT", "CATEGORY", "ACCOUNTS")
		for _, tx := range ds.Transactions {
			accounts := tx.SourceAccountID
			if tx.Type == shared.Transfer {
				accounts = fmt.Sprintf("%s -> %s", tx.SourceAccountID, tx.DestinationAccountID)
				if tx.DestinationAmount != nil {
					accounts += fmt.Sprintf(" (credited %s)", tx.DestinationAmount.StringFixed(2))
				}
			}
			fmt.Printf("%-38s %-10s %-8s %12s %-14s %s\n",
				tx.ID, tx.Date.Format(dateLayout), tx.Type, tx.Amount.StringFixed(2), tx.Category, accounts)
		}
	},
}

func init() {
	rootCmd.AddCommand(txCmd)

	txCmd.AddCommand(txAddCmd)
	txAddCmd.Flags().StringVar(&txDate, "date", "", "Transaction date YYYY-MM-DD (defaults to today)")
	txAddCmd.Flags().StringVar(&txAmountStr, "amount", "", "Amount magnitude (required)")
	txAddCmd.Flags().StringVar(&txType, "type", "Expense", "Transaction type: Income, Expense or Transfer")
	txAddCmd.Flags().StringVar(&txCategory, "category", "", "Free-text category (ignored for transfers)")
	txAddCmd.Flags().StringVar(&txFromID, "from", "", "Source account ID (required)")
	txAddCmd.Flags().StringVar(&txToID, "to", "", "Destination account ID (transfers only)")
	txAddCmd.Flags().StringVar(&txDestAmount, "dest-amount", "", "Amount credited to the destination account (cross-currency transfers)")
	txAddCmd.Flags().StringVar(&txNote, "note", "", "Free-text note")
	_ = txAddCmd.MarkFlagRequired("from")
	_ = txAddCmd.MarkFlagRequired("amount")

	txCmd.AddCommand(txListCmd)
}
