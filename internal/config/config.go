// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/llm-secrets/models"

// Default locations and settings. The key file and the private directory
// are deliberately plain and discoverable: researchers inspecting the tool
// must always be able to find the key and the encrypted artifacts.
const (
	DefaultKeyFile   = "key.txt"
	DefaultDir       = "private"
	DefaultIndexDSN  = "private/index.db"
	DefaultAlgorithm = string(models.AlgorithmAESGCM)
)

// StructuredConfig is the top-level configuration container for llm-secrets.
// It aggregates all sub-configurations and is populated by merging values
// from command-line overrides, environment variables, an optional JSON file,
// and built-in defaults, in that priority order.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the encryption algorithm and
	// the version string.
	App App `envPrefix:"APP_" json:"app"`

	// Storage holds the key file and artifact storage settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from overrides and environment variables.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Algorithm selects the AEAD construction used for all artifacts:
	// "aes-gcm" or "xchacha20-poly1305".
	// Env: APP_ALGORITHM
	Algorithm string `env:"ALGORITHM" json:"algorithm"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Storage groups the configuration for the persistence surfaces: the key
// file and the artifact directory with its sqlite index.
type Storage struct {
	// KeyFile is the path to the base64-encoded symmetric key file.
	// Env: STORAGE_KEY_FILE
	KeyFile string `env:"KEY_FILE" json:"key_file"`

	// ArtifactDir is the directory where encrypted artifact files are
	// written, one file per private thought.
	// Env: STORAGE_ARTIFACT_DIR
	ArtifactDir string `env:"ARTIFACT_DIR" json:"artifact_dir"`

	// IndexDSN is the sqlite DSN (file path) of the artifact metadata index.
	// Env: STORAGE_INDEX_DSN
	IndexDSN string `env:"INDEX_DSN" json:"index_dsn"`
}

// GetStructuredConfig assembles the application configuration. overrides
// carries values set on the command line and takes priority over everything
// else; pass nil when no overrides exist.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
