package cli

import (
	"fmt"

	"github.com/fatih/color"
)

// consoleDiagnostics writes collector output to the console, colored the
// way the interactive tool always has: red for skips, bright red for
// warnings, plain text for informational lines.
type consoleDiagnostics struct{}

func (consoleDiagnostics) Infof(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func (consoleDiagnostics) Skipf(format string, args ...interface{}) {
	color.Red(format, args...)
}

func (consoleDiagnostics) Warnf(format string, args ...interface{}) {
	color.HiRed(format, args...)
}
