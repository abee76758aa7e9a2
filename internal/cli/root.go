// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli wires the privacy pipeline into a cobra command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/llm-secrets/internal/config"
	"github.com/MKhiriev/llm-secrets/internal/logger"
	"github.com/MKhiriev/llm-secrets/internal/service"
)

var (
	flagKeyFile     string
	flagArtifactDir string
	flagIndexDSN    string
	flagAlgorithm   string
	flagConfigPath  string
	verbose         bool
)

var log = logger.Nop()

var rootCmd = &cobra.Command{
	Use:   "llmsecrets",
	Short: "Keep a language model's private thoughts encrypted at rest",
	Long: `llmsecrets separates the private portions of generated text from the
public remainder, encrypts each private span with a locally managed key and
stores the ciphertext on disk. Only the public remainder is ever shown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagKeyFile, "key-file", "", "path to the symmetric key file")
	rootCmd.PersistentFlags().StringVar(&flagArtifactDir, "dir", "", "directory for encrypted artifacts")
	rootCmd.PersistentFlags().StringVar(&flagIndexDSN, "index", "", "sqlite DSN of the artifact index")
	rootCmd.PersistentFlags().StringVar(&flagAlgorithm, "algorithm", "", "encryption algorithm (aes-gcm or xchacha20-poly1305)")
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(revealCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// SetBuildInfo records ldflags-injected build metadata for the version
// command. Empty values render as N/A.
func SetBuildInfo(version, date, commit string) {
	buildVersion, buildDate, buildCommit = version, date, commit
}

// Execute runs the command tree with the given logger. Errors are printed
// here because the logger writes to a file, not the terminal.
func Execute(l *logger.Logger) error {
	log = l
	err := rootCmd.Execute()
	if err != nil {
		printError(err.Error())
	}
	return err
}

// buildServices resolves configuration from flags, environment and config
// file, then constructs the full service graph.
func buildServices(ctx context.Context) (*service.Services, *config.StructuredConfig, error) {
	overrides := &config.StructuredConfig{
		App:          config.App{Algorithm: flagAlgorithm},
		Storage:      config.Storage{KeyFile: flagKeyFile, ArtifactDir: flagArtifactDir, IndexDSN: flagIndexDSN},
		JSONFilePath: flagConfigPath,
	}

	cfg, err := config.GetStructuredConfig(overrides)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving configuration: %w", err)
	}

	services, err := service.NewServices(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return services, cfg, nil
}
