// =============================================================================
// 7 Aromas Production Planner - Main Entry Point
// =============================================================================
//
// CLI entry point for the 7 Aromas production planner. It initializes the
// Cobra CLI framework and delegates command execution to the cmd package.
//
// USAGE:
//   aromas process <order-export>  - Turn a marketplace export into a
//                                    production worksheet
//   aromas version                 - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : core business logic (planner, tabular reader, config,
//                  report rendering)
//   - pkg/       : shared utilities
//
// =============================================================================

package main

import (
	"github.com/hugofreire-dev01/sistema-7aromas/cmd"
)

func main() {
	cmd.Execute()
}
