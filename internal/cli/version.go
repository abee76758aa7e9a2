package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("Build version: %s\n", orNA(buildVersion))
		fmt.Printf("Build date: %s\n", orNA(buildDate))
		fmt.Printf("Build commit: %s\n", orNA(buildCommit))
	},
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
