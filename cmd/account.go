package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"networth-ledger/app"
	"networth-ledger/shared"
)

// Variables to hold flag values for account commands
var (
	accountID       string
	accountName     string
	accountType     string
	accountCurrency string
	accountInitial  string
)

// accountCmd represents the account command group
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage tracked accounts",
	Long:  `Provides commands for adding and listing the money accounts whose balances the ledger reconstructs.`,
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an account",
	Long: `Adds an account with an initial balance in its own currency. The initial
balance is the balance before any recorded transaction. The currency must
already have an exchange-rate entry (see 'networth rate set').`,
	Run: func(cmd *cobra.Command, args []string) {
		if accountName == "" {
			exitWithError(fmt.Errorf("account name (--name) is required"))
		}
		if accountCurrency == "" {
			exitWithError(fmt.Errorf("currency (--currency) is required"))
		}

		initial, err := parseAmount("initial balance", accountInitial)
		if err != nil {
			exitWithError(err)
		}

		id, err := ledgerService.AddAccount(app.AddAccountCommand{
			AccountID:      accountID,
			Name:           accountName,
			Type:           accountType,
			InitialBalance: initial,
			Currency:       shared.Currency(accountCurrency),
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to add account: %w", err))
		}

		fmt.Printf("Added account '%s' (%s, %s). ID: %s\n", accountName, accountType, accountCurrency, id)
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := ledgerService.Dataset()
		if err != nil {
			exitWithError(fmt.Errorf("failed to list accounts: %w", err))
		}
		if len(ds.Accounts) == 0 {
			fmt.Println("No accounts recorded.")
			return
		}
		fmt.Printf("%-38s %-20s %-10s %12s  %s\n", "ID", "NAME", "TYPE", "INITIAL", "CURRENCY")
		for _, a := range ds.Accounts {
			fmt.Printf("%-38s %-20s %-10s %12s  %s\n", a.ID, a.Name, a.Type, a.InitialBalance.StringFixed(2), a.Currency)
		}
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)

	accountCmd.AddCommand(accountAddCmd)
	accountAddCmd.Flags().StringVar(&accountID, "id", "", "Account ID (generated when omitted)")
	accountAddCmd.Flags().StringVar(&accountName, "name", "", "Display name (required)")
	accountAddCmd.Flags().StringVar(&accountType, "type", "Bank", "Free-form category tag, e.g. Bank, Cash")
	accountAddCmd.Flags().StringVar(&accountCurrency, "currency", "", "Currency code (required)")
	accountAddCmd.Flags().StringVar(&accountInitial, "initial", "0", "Balance before any recorded transaction")
	_ = accountAddCmd.MarkFlagRequired("name")
	_ = accountAddCmd.MarkFlagRequired("currency")

	accountCmd.AddCommand(accountListCmd)
}
