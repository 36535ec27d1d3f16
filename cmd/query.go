package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"networth-ledger/app"
)

// Variables for query flags
var (
	queryAccountID string
	queryAt        string
	queryCompare   string
	queryMonth     string
	queryFrom      string
	queryTo        string
	queryJSON      bool
)

// queryCmd represents the query command group
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query balances, net worth and breakdowns",
	Long: `Provides read-only point-in-time queries. All balance queries use a
month-end snapshot: any date within a calendar month yields the balance at the
end of that month.`,
}

var queryBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Account balance in the account's own currency",
	Run: func(cmd *cobra.Command, args []string) {
		if queryAccountID == "" {
			exitWithError(fmt.Errorf("account ID (--id) is required"))
		}
		at, err := parseDate(queryAt)
		if err != nil {
			exitWithError(err)
		}
		balance, err := ledgerService.AccountBalance(app.BalanceQuery{AccountID: queryAccountID, At: at})
		if err != nil {
			exitWithError(fmt.Errorf("failed to get balance: %w", err))
		}
		fmt.Printf("Account '%s' balance: %s %s\n", queryAccountID, balance.Amount.StringFixed(2), balance.Currency)
	},
}

var queryCashCmd = &cobra.Command{
	Use:   "cash",
	Short: "Aggregate cash balance across all accounts, in the base currency",
	Run: func(cmd *cobra.Command, args []string) {
		at, err := parseDate(queryAt)
		if err != nil {
			exitWithError(err)
		}
		balance, err := ledgerService.CashBalance(app.AtQuery{At: at})
		if err != nil {
			exitWithError(fmt.Errorf("failed to get cash balance: %w", err))
		}
		fmt.Printf("Cash balance: %s %s\n", balance.Amount.StringFixed(2), balance.Currency)
	},
}

var queryNetWorthCmd = &cobra.Command{
	Use:   "networth",
	Short: "Net worth (cash + portfolio value) in the base currency",
	Long: `Computes net worth at a date. With --compare month or --compare year the
same computation is repeated one month or one year earlier and the percentage
change is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		at, err := parseDate(queryAt)
		if err != nil {
			exitWithError(err)
		}

		if queryCompare == "" {
			balance, err := ledgerService.NetWorth(app.AtQuery{At: at})
			if err != nil {
				exitWithError(fmt.Errorf("failed to get net worth: %w", err))
			}
			fmt.Printf("Net worth: %s %s\n", balance.Amount.StringFixed(2), balance.Currency)
			return
		}

		instant := at
		if instant.IsZero() {
			instant = time.Now().UTC()
		}
		var previous time.Time
		switch queryCompare {
		case "month":
			previous = instant.AddDate(0, -1, 0)
		case "year":
			previous = instant.AddDate(-1, 0, 0)
		default:
			exitWithError(fmt.Errorf("invalid --compare %q, expected 'month' or 'year'", queryCompare))
		}

		comparison, err := ledgerService.CompareNetWorth(app.ComparisonQuery{At: instant, PreviousAt: previous})
		if err != nil {
			exitWithError(fmt.Errorf("failed to compare net worth: %w", err))
		}
		fmt.Printf("Net worth:  %s %s\n", comparison.Current.Amount.StringFixed(2), comparison.Current.Currency)
		fmt.Printf("Previous:   %s %s\n", comparison.Previous.Amount.StringFixed(2), comparison.Previous.Currency)
		fmt.Printf("Change:     %s%%\n", comparison.ChangePercent.StringFixed(2))
	},
}

var queryPortfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio cost basis, market value and gain/loss",
	Run: func(cmd *cobra.Command, args []string) {
		stats, currency, err := ledgerService.PortfolioStats()
		if err != nil {
			exitWithError(fmt.Errorf("failed to get portfolio stats: %w", err))
		}
		fmt.Printf("Total cost:  %s %s\n", stats.TotalCost.StringFixed(2), currency)
		fmt.Printf("Total value: %s %s\n", stats.TotalValue.StringFixed(2), currency)
		fmt.Printf("Gain/loss:   %s %s (%s%%)\n", stats.GainLoss.StringFixed(2), currency, stats.GainLossPercent.StringFixed(2))
	},
}

var queryAllocationCmd = &cobra.Command{
	Use:   "allocation",
	Short: "Current balances grouped by account type, plus portfolio value",
	Run: func(cmd *cobra.Command, args []string) {
		at, err := parseDate(queryAt)
		if err != nil {
			exitWithError(err)
		}
		buckets, err := ledgerService.Allocation(app.AtQuery{At: at})
		if err != nil {
			exitWithError(fmt.Errorf("failed to get allocation: %w", err))
		}
		if queryJSON {
			printJSON(buckets)
			return
		}
		for _, b := range buckets {
			fmt.Printf("%-14s %14s\n", b.Name, b.Value.StringFixed(2))
		}
	},
}

var queryExpensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Expenses within a calendar month grouped by category",
	Run: func(cmd *cobra.Command, args []string) {
		month, err := parseDate(queryMonth)
		if err != nil {
			exitWithError(err)
		}
		buckets, err := ledgerService.ExpenseBreakdown(app.ExpensesQuery{Month: month})
		if err != nil {
			exitWithError(fmt.Errorf("failed to get expense breakdown: %w", err))
		}
		if queryJSON {
			printJSON(buckets)
			return
		}
		if len(buckets) == 0 {
			fmt.Println("No expenses in that month.")
			return
		}
		for _, b := range buckets {
			fmt.Printf("%-20s %14s\n", b.Name, b.Value.StringFixed(2))
		}
	},
}

var queryHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Monthly net worth series",
	Long: `Samples net worth once per calendar month between --from and --to. With no
--from the series starts at the earliest recorded transaction.`,
	Run: func(cmd *cobra.Command, args []string) {
		from, err := parseDate(queryFrom)
		if err != nil {
			exitWithError(err)
		}
		to, err := parseDate(queryTo)
		if err != nil {
			exitWithError(err)
		}
		points, err := ledgerService.NetWorthSeries(app.SeriesQuery{From: from, To: to})
		if err != nil {
			exitWithError(fmt.Errorf("failed to get net worth series: %w", err))
		}
		if queryJSON {
			printJSON(points)
			return
		}
		if len(points) == 0 {
			fmt.Println("No history available.")
			return
		}
		for _, p := range points {
			fmt.Printf("%s  %14s\n", p.Date.Format("2006-01"), p.Value.StringFixed(2))
		}
	},
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitWithError(fmt.Errorf("failed to marshal output: %w", err))
	}
	fmt.Println(string(data))
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.PersistentFlags().BoolVar(&queryJSON, "json", false, "Emit JSON instead of text")

	queryCmd.AddCommand(queryBalanceCmd)
	queryBalanceCmd.Flags().StringVar(&queryAccountID, "id", "", "Account ID to query (required)")
	queryBalanceCmd.Flags().StringVar(&queryAt, "at", "", "Date YYYY-MM-DD (defaults to today)")
	_ = queryBalanceCmd.MarkFlagRequired("id")

	queryCmd.AddCommand(queryCashCmd)
	queryCashCmd.Flags().StringVar(&queryAt, "at", "", "Date YYYY-MM-DD (defaults to today)")

	queryCmd.AddCommand(queryNetWorthCmd)
	queryNetWorthCmd.Flags().StringVar(&queryAt, "at", "", "Date YYYY-MM-DD (defaults to today)")
	queryNetWorthCmd.Flags().StringVar(&queryCompare, "compare", "", "Compare against 'month' or 'year' earlier")

	queryCmd.AddCommand(queryPortfolioCmd)

	queryCmd.AddCommand(queryAllocationCmd)
	queryAllocationCmd.Flags().StringVar(&queryAt, "at", "", "Date YYYY-MM-DD (defaults to today)")

	queryCmd.AddCommand(queryExpensesCmd)
	queryExpensesCmd.Flags().StringVar(&queryMonth, "month", "", "Any date within the month YYYY-MM-DD (defaults to the current month)")

	queryCmd.AddCommand(queryHistoryCmd)
	queryHistoryCmd.Flags().StringVar(&queryFrom, "from", "", "Series start YYYY-MM-DD (defaults to the earliest transaction)")
	queryHistoryCmd.Flags().StringVar(&queryTo, "to", "", "Series end YYYY-MM-DD (defaults to today)")
}
