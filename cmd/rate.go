package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"networth-ledger/app"
	"networth-ledger/shared"
)

// Variables to hold flag values for rate commands
var (
	rateCurrency string
	rateValue    string
	rateBaseCur  string
)

// rateCmd represents the rate command group
var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Manage the exchange-rate table",
	Long: `Provides commands for maintaining the static rate table. Rates are expressed
against one anchor currency whose own rate is exactly 1; conversions always
pivot through it. The base currency of aggregate outputs is chosen separately
and need not be the anchor.`,
}

var rateSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the rate for a currency",
	Run: func(cmd *cobra.Command, args []string) {
		if rateCurrency == "" {
			exitWithError(fmt.Errorf("currency (--currency) is required"))
		}
		if rateValue == "" {
			exitWithError(fmt.Errorf("rate (--rate) is required"))
		}
		rate, err := parseAmount("rate", rateValue)
		if err != nil {
			exitWithError(err)
		}

		err = ledgerService.SetRate(app.SetRateCommand{
			Currency: shared.Currency(rateCurrency),
			Rate:     rate,
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to set rate: %w", err))
		}
		fmt.Printf("Set rate %s = %s\n", rateCurrency, rate.String())
	},
}

var rateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rates and the base currency",
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := ledgerService.Dataset()
		if err != nil {
			exitWithError(fmt.Errorf("failed to list rates: %w", err))
		}
		fmt.Printf("Base currency: %s\n", ds.BaseCurrency)
		codes := make([]shared.Currency, 0, len(ds.Rates))
		for c := range ds.Rates {
			codes = append(codes, c)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		for _, c := range codes {
			fmt.Printf("  %s: %s\n", c, ds.Rates[c].String())
		}
	},
}

var rateBaseCmd = &cobra.Command{
	Use:   "base",
	Short: "Set the base currency for aggregate outputs",
	Run: func(cmd *cobra.Command, args []string) {
		if rateBaseCur == "" {
			exitWithError(fmt.Errorf("currency (--currency) is required"))
		}
		err := ledgerService.SetBaseCurrency(app.SetBaseCurrencyCommand{
			Currency: shared.Currency(rateBaseCur),
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to set base currency: %w", err))
		}
		fmt.Printf("Base currency set to %s\n", rateBaseCur)
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)

	rateCmd.AddCommand(rateSetCmd)
	rateSetCmd.Flags().StringVar(&rateCurrency, "currency", "", "Currency code (required)")
	rateSetCmd.Flags().StringVar(&rateValue, "rate", "", "Rate against the anchor currency (required)")
	_ = rateSetCmd.MarkFlagRequired("currency")
	_ = rateSetCmd.MarkFlagRequired("rate")

	rateCmd.AddCommand(rateListCmd)

	rateCmd.AddCommand(rateBaseCmd)
	rateBaseCmd.Flags().StringVar(&rateBaseCur, "currency", "", "Currency code (required)")
	_ = rateBaseCmd.MarkFlagRequired("currency")
}
