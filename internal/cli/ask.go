// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/llm-secrets/internal/service"
)

var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask the assistant and receive only the public part of its answer",
	Long: `ask sends a prompt to the assistant, runs the generated answer through
the privacy pipeline and prints the public remainder. Private spans are
encrypted and stored before anything is shown. Without arguments an
interactive session starts; type "exit" or "quit" to leave it.`,
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	services, _, err := buildServices(cmd.Context())
	if err != nil {
		return err
	}
	defer services.Close()

	if len(args) > 0 {
		return askOnce(cmd.Context(), services, strings.Join(args, " "))
	}

	fmt.Println(color.CyanString("llmsecrets interactive session"))
	printHint("private thoughts are encrypted before anything is displayed")
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.CyanString("you> "))
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		prompt := strings.TrimSpace(in.Text())
		if prompt == "" {
			continue
		}
		if prompt == "exit" || prompt == "quit" {
			return nil
		}
		if err := askOnce(cmd.Context(), services, prompt); err != nil {
			printError(err.Error())
		}
		fmt.Println()
	}
}

func askOnce(ctx context.Context, services *service.Services, prompt string) error {
	_, stop := startSpinner("Thinking...", verbose)
	response := services.Generator.Respond(prompt)
	result := services.Pipeline.Process(ctx, response)
	stop()

	public := strings.TrimSpace(result.PublicText)
	if public == "" {
		printHint("the whole answer was private; nothing to show")
	} else {
		fmt.Println(public)
	}

	for _, rec := range result.Stored {
		printSuccess("encrypted thought stored as %s (%d bytes)", rec.ID, rec.SizeBytes)
	}
	for _, spanErr := range result.Errors {
		printError("span %d failed at %s stage: %v", spanErr.SpanIndex, spanErr.Stage, spanErr.Err)
	}

	return nil
}
