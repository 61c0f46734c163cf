// =============================================================================
// 7 Aromas Production Planner - Version Command
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version and BuildDate are stamped at build time:
//   go build -ldflags "-X 'cmd.Version=1.1.0' -X 'cmd.BuildDate=2026-08-30'"
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, and Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("7 Aromas Production Planner")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Go Version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
