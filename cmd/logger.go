// =============================================================================
// 7 Aromas Production Planner - CLI Logger
// =============================================================================

package cmd

import "fmt"

// stdoutLogger implements planner.Logger on top of plain stdout. Debug
// output is gated on the --verbose flag.
type stdoutLogger struct {
	verbose bool
}

func (l *stdoutLogger) Debug(msg string, args ...interface{}) {
	if l.verbose {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *stdoutLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *stdoutLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *stdoutLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
