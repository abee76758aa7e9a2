package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// startSpinner begins a terminal spinner with the given message. The returned
// cleanup function stops it and must be called before printing anything else.
// In verbose mode the spinner is suppressed so log lines stay readable.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	if verbose {
		return nil, func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()

	return s, func() {
		s.Stop()
	}
}

func printSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Printf("%s %s\n", color.RedString("✗"), fmt.Sprintf(format, args...))
}

func printHint(format string, args ...any) {
	fmt.Printf("%s %s\n", color.YellowString("→"), fmt.Sprintf(format, args...))
}
