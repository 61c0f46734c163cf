// =============================================================================
// 7 Aromas Production Planner - Process Command
// =============================================================================
//
// This file defines the 'process' command, the main command of the tool. It
// orchestrates the pipeline for one order export.
//
// COMMAND USAGE:
//   aromas process [flags] <order-export>
//
// FLAGS:
//   --horizon   : Deadline horizon: all, urgent, 3days, week, or a day count
//   --output    : Override the configured output directory
//   --dry-run   : Plan and print the summary without writing output files
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Read the order-export table (CSV or XLSX)
//   3. Run the planning engine
//   4. Render the HTML worksheet and the XLSX export
//   5. Archive the input (when configured)
//   6. Print the summary
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hugofreire-dev01/sistema-7aromas/internal/config"
	"github.com/hugofreire-dev01/sistema-7aromas/internal/planner"
	"github.com/hugofreire-dev01/sistema-7aromas/internal/report"
	"github.com/hugofreire-dev01/sistema-7aromas/internal/tabular"
	"github.com/hugofreire-dev01/sistema-7aromas/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// horizon selects the deadline horizon; empty means the configured default.
var horizon string

// outputDir overrides the configured output directory when non-empty.
var outputDir string

// dryRun plans and prints the summary without writing any files.
var dryRun bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <order-export>",
	Short: "Derive a production plan from a marketplace order export",
	Long: `The process command reads one marketplace order-export file (XLSX or
CSV), classifies every order line into a product category, resolves bundle
multipliers and assorted-variant expansions into scent-level quantities,
and aggregates everything into a production plan.

Outputs, written to the output directory:
  - <name>.html : printable production worksheet (cards, urgency list,
                  stock picking summary, material estimates, scent chart)
  - <name>.xlsx : flattened (category, scent, quantity) export

The --horizon flag limits the plan to orders whose ship-by date falls
within the window; rows with no parseable date are always included.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&horizon,
		"horizon",
		"",
		"Deadline horizon: all, urgent, 3days, week, or a day count (default from config)",
	)

	processCmd.Flags().StringVar(
		&outputDir,
		"output",
		"",
		"Output directory (overrides the configured output_dir)",
	)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Plan and print the summary without writing output files",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess executes the pipeline for one order export.
func runProcess(inputPath string) error {
	startTime := time.Now()
	log := &stdoutLogger{verbose: verbose}

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	horizonValue := horizon
	if horizonValue == "" {
		horizonValue = cfg.DefaultHorizon
	}
	horizonDays, err := config.ParseHorizon(horizonValue)
	if err != nil {
		return err
	}
	log.Debug("Using deadline horizon of %d day(s)", horizonDays)

	// =========================================================================
	// STEP 2: READ THE ORDER EXPORT
	// =========================================================================

	log.Info("Reading %s", inputPath)
	table, err := tabular.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	log.Debug("Read %d data row(s), %d column(s)", len(table.Rows), len(table.Headers))

	// =========================================================================
	// STEP 3: RUN THE PLANNING ENGINE
	// =========================================================================

	eng := planner.NewWithOptions(log, planner.Options{
		FragranceLoad:  cfg.FragranceLoad,
		ColumnKeywords: cfg.PlannerKeywords(),
	})

	now := time.Now()
	plan, err := eng.Process(table, horizonDays, now)
	if err != nil {
		var schemaErr *planner.SchemaError
		if errors.As(err, &schemaErr) {
			// Unresolvable schema: show what WAS found so the user can
			// check they uploaded the right export.
			return fmt.Errorf("this does not look like a marketplace order export: %w", err)
		}
		return err
	}

	// =========================================================================
	// STEP 4: WRITE OUTPUTS
	// =========================================================================

	var htmlPath, xlsxPath string
	if dryRun {
		log.Info("Dry run: skipping output files")
	} else {
		if err := utils.EnsureDir(cfg.OutputDir); err != nil {
			return err
		}
		baseName := utils.BuildOutputName(cfg.OutputNameFormat, inputPath, now)

		htmlPath = filepath.Join(cfg.OutputDir, baseName+".html")
		worksheet, err := report.RenderHTML(plan, filepath.Base(inputPath), cfg.TopScents, now)
		if err != nil {
			return err
		}
		if err := os.WriteFile(htmlPath, worksheet, 0644); err != nil {
			return fmt.Errorf("failed to write worksheet: %w", err)
		}

		xlsxPath = filepath.Join(cfg.OutputDir, baseName+".xlsx")
		if err := report.WriteExcel(plan, xlsxPath); err != nil {
			return err
		}
	}

	// =========================================================================
	// STEP 5: ARCHIVE THE INPUT
	// =========================================================================

	if cfg.ArchiveInputs && !dryRun {
		archived, err := utils.ArchiveFile(inputPath, cfg.ArchiveDir)
		if err != nil {
			// Outputs are already written; a failed move is not fatal.
			log.Warn("Failed to archive input: %v", err)
		} else {
			log.Debug("Archived input to %s", archived)
		}
	}

	// =========================================================================
	// STEP 6: PRINT SUMMARY
	// =========================================================================

	fmt.Println("\n=== Production Plan ===")
	fmt.Printf("Rows planned:    %d of %d\n", plan.RowsPlanned, plan.RowsRead)
	fmt.Printf("Pieces to make:  %s\n", planner.FormatQuantity(plan.Production.TotalUnits()))
	fmt.Printf("Urgent items:    %d\n", len(plan.Urgent))
	fmt.Printf("Categories:      %d\n", len(plan.Production))
	fmt.Printf("Revenue:         %s (%d orders)\n", plan.Finance.Revenue.StringFixed(2), plan.Finance.OrderCount)
	if !dryRun {
		fmt.Printf("Worksheet:       %s\n", htmlPath)
		fmt.Printf("Excel export:    %s\n", xlsxPath)
	}
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime).Round(time.Millisecond))

	return nil
}
