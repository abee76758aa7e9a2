package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored encrypted thoughts",
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	services, _, err := buildServices(cmd.Context())
	if err != nil {
		return err
	}
	defer services.Close()

	records, err := services.Artifacts.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		printHint("no encrypted thoughts stored yet")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %s  %6d bytes  %s\n",
			color.CyanString(rec.ID),
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.SizeBytes,
			rec.FilePath,
		)
	}
	fmt.Printf("\n%d encrypted thought(s)\n", len(records))

	return nil
}
