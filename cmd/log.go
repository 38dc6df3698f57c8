package cmd

import (
	"fmt"
	"os"
)

// verbose logs to stderr when -v is set, so rendered times on stdout
// stay pipeable.
func verbose(format string, a ...any) {
	if Verbose >= 1 {
		fmt.Fprintln(os.Stderr, verboseStyle.Render(vPrefix+fmt.Sprintf(format, a...)))
	}
}

// vVerbose logs to stderr when -vv or more is set.
func vVerbose(format string, a ...any) {
	if Verbose > 1 {
		fmt.Fprintln(os.Stderr, verboseStyle.Render(vPrefix+fmt.Sprintf(format, a...)))
	}
}
