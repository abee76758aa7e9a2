package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/llm-secrets/models"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Show the state of the encryption key",
	Long: `key prints the configured algorithm and the key file location. The key
material itself is never displayed.`,
	RunE: runKey,
}

func runKey(cmd *cobra.Command, _ []string) error {
	services, cfg, err := buildServices(cmd.Context())
	if err != nil {
		return err
	}
	defer services.Close()

	status := color.RedString("missing")
	if services.Keys.KeyFileExists() {
		status = color.GreenString("present")
	}

	fmt.Printf("algorithm: %s\n", cfg.App.Algorithm)
	fmt.Printf("key size:  %d bits\n", models.KeySize*8)
	fmt.Printf("key file:  %s (%s)\n", services.Keys.KeyFilePath(), status)

	return nil
}
