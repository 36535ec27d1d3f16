package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"networth-ledger/export"
)

var exportDir string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the raw collections as CSV",
	Long: `Writes accounts.csv, transactions.csv and holdings.csv into a directory.
The export consumes the raw data; amounts are written exactly as recorded,
without conversion or rounding.`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := ledgerService.Dataset()
		if err != nil {
			exitWithError(fmt.Errorf("failed to load data for export: %w", err))
		}
		if err := export.WriteAll(exportDir, ds); err != nil {
			exitWithError(fmt.Errorf("failed to export: %w", err))
		}
		fmt.Printf("Exported %d accounts, %d transactions and %d holdings to %s\n",
			len(ds.Accounts), len(ds.Transactions), len(ds.Holdings), exportDir)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "dir", "export", "Directory to write CSV files into")
}
