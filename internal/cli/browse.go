package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/llm-secrets/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse stored thoughts in an interactive terminal UI",
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	services, _, err := buildServices(cmd.Context())
	if err != nil {
		return err
	}
	defer services.Close()

	return tui.Run(cmd.Context(), services.Thoughts)
}
