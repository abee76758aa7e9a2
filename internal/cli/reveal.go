// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var revealCopy bool

var revealCmd = &cobra.Command{
	Use:   "reveal <id>",
	Short: "Decrypt a stored thought and print it",
	Long: `reveal decrypts the artifact with the given id using the local key and
prints the plaintext. With --copy the plaintext goes to the clipboard
instead of stdout, so it never lands in the terminal scrollback.`,
	Args: cobra.ExactArgs(1),
	RunE: runReveal,
}

func init() {
	revealCmd.Flags().BoolVar(&revealCopy, "copy", false, "copy the plaintext to the clipboard instead of printing it")
}

func runReveal(cmd *cobra.Command, args []string) error {
	services, _, err := buildServices(cmd.Context())
	if err != nil {
		return err
	}
	defer services.Close()

	_, stop := startSpinner("Decrypting...", verbose)
	plaintext, err := services.Thoughts.Reveal(cmd.Context(), args[0])
	stop()
	if err != nil {
		return err
	}

	if revealCopy {
		if err := clipboard.WriteAll(plaintext); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		printSuccess("decrypted thought copied to clipboard")
		return nil
	}

	fmt.Println(plaintext)
	return nil
}
