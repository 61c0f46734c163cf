// =============================================================================
// 7 Aromas Production Planner - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// ('process', 'version') attach to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (aromas)
//   ├── processCmd (aromas process)
//   └── versionCmd (aromas version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file, overridable with the
// --config flag.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aromas",
	Short: "7 Aromas production planner - turn marketplace order exports into production worksheets",
	Long: `The 7 Aromas production planner ingests a marketplace order-export
spreadsheet (XLSX or CSV) and derives a manufacturing plan: how many units
of each scent must be produced per product category, which orders ship
today or tomorrow, what packaging stock to pick, and how much wax and
fragrance concentrate the batch will need.

The result is a printable HTML worksheet plus an XLSX export of the
flattened (category, scent, quantity) totals.

Example Usage:
  aromas process Order.toship.20260830.xlsx
  aromas process --horizon urgent export.csv   # only orders shipping in 24h
  aromas process --config ./my.yaml export.csv`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional; defaults apply when absent)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
