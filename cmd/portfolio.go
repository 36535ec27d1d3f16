package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"networth-ledger/app"
	"networth-ledger/shared"
)

// Variables to hold flag values for holding commands
var (
	holdingSymbol   string
	holdingName     string
	holdingQuantity string
	holdingCost     string
	holdingPrice    string
	holdingCurrency string
)

// holdingCmd represents the holding command group
var holdingCmd = &cobra.Command{
	Use:   "holding",
	Short: "Manage portfolio holdings",
	Long: `Provides commands for adding and listing portfolio holdings. Cost basis is
the total amount paid for the position; the current price is the latest known
per-unit price in the holding's own currency.`,
}

var holdingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a holding",
	Run: func(cmd *cobra.Command, args []string) {
		if holdingSymbol == "" {
			exitWithError(fmt.Errorf("symbol (--symbol) is required"))
		}
		if holdingCurrency == "" {
			exitWithError(fmt.Errorf("currency (--currency) is required"))
		}

		quantity, err := parseAmount("quantity", holdingQuantity)
		if err != nil {
			exitWithError(err)
		}
		cost, err := parseAmount("cost basis", holdingCost)
		if err != nil {
			exitWithError(err)
		}
		price, err := parseAmount("current price", holdingPrice)
		if err != nil {
			exitWithError(err)
		}

		id, err := ledgerService.AddHolding(app.AddHoldingCommand{
			Symbol:       holdingSymbol,
			Name:         holdingName,
			Quantity:     quantity,
			CostBasis:    cost,
			CurrentPrice: price,
			Currency:     shared.Currency(holdingCurrency),
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to add holding: %w", err))
		}

		fmt.Printf("Added holding %s x %s. ID: %s\n", holdingSymbol, quantity.String(), id)
	},
}

var holdingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List holdings",
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := ledgerService.Dataset()
		if err != nil {
			exitWithError(fmt.Errorf("failed to list holdings: %w", err))
		}
		if len(ds.Holdings) == 0 {
			fmt.Println("No holdings recorded.")
			return
		}
		fmt.Printf("%-10s %-20s %12s %14s %14s  %s\n", "SYMBOL", "NAME", "QUANTITY", "COST BASIS", "VALUE", "CURRENCY")
		for _, h := range ds.Holdings {
			fmt.Printf("%-10s %-20s %12s %14s %14s  %s\n",
				h.Symbol, h.Name, h.Quantity.String(), h.CostBasis.StringFixed(2), h.MarketValue().StringFixed(2), h.Currency)
		}
	},
}

func init() {
	rootCmd.AddCommand(holdingCmd)

	holdingCmd.AddCommand(holdingAddCmd)
	holdingAddCmd.Flags().StringVar(&holdingSymbol, "symbol", "", "Ticker-like symbol (required)")
	holdingAddCmd.Flags().StringVar(&holdingName, "name", "", "Display name")
	holdingAddCmd.Flags().StringVar(&holdingQuantity, "quantity", "0", "Quantity held (may be fractional)")
	holdingAddCmd.Flags().StringVar(&holdingCost, "cost", "0", "Total amount paid for the position")
	holdingAddCmd.Flags().StringVar(&holdingPrice, "price", "0", "Latest known per-unit price")
	holdingAddCmd.Flags().StringVar(&holdingCurrency, "currency", "", "Currency code (required)")
	_ = holdingAddCmd.MarkFlagRequired("symbol")
	_ = holdingAddCmd.MarkFlagRequired("currency")

	holdingCmd.AddCommand(holdingListCmd)
}
