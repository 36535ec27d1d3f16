package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"networth-ledger/app"
	"networth-ledger/config"
	"networth-ledger/shared"
	"networth-ledger/store"
)

var (
	// Shared application service instance, built after flag parsing.
	ledgerService *app.LedgerService
	appLog        *logrus.Logger

	dataFile     string
	baseCurrency string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "networth",
	Short: "A CLI for the multi-currency net-worth ledger",
	Long: `networth manages accounts, transactions, portfolio holdings and exchange
rates in a local JSON data file, and answers point-in-time queries: account
balances, cash balance, net worth, allocation and expense breakdowns.

Balances are reconstructed by replaying the transaction log; nothing is stored
pre-aggregated.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg := config.Load()

	appLog = logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	appLog.SetLevel(level)

	rootCmd.PersistentFlags().StringVar(&dataFile, "data", cfg.DataFile, "path to the JSON data file")
	rootCmd.PersistentFlags().StringVar(&baseCurrency, "base", cfg.BaseCurrency, "base currency for a new data file")

	// The store and service depend on persistent flag values, so they are
	// built after parsing rather than here.
	cobra.OnInitialize(func() {
		st := store.NewFileStore(dataFile, shared.Currency(baseCurrency), appLog)
		ledgerService = app.NewLedgerService(st, appLog)
	})
}

// Helper function to print errors and exit.
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD flag value; an empty value means now.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %v", name, value, err)
	}
	return amount, nil
}
