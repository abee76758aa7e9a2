package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/llm-secrets/models"
)

func TestGetStructuredConfig_DefaultsOnly(t *testing.T) {
	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAlgorithm, cfg.App.Algorithm)
	assert.Equal(t, DefaultKeyFile, cfg.Storage.KeyFile)
	assert.Equal(t, DefaultDir, cfg.Storage.ArtifactDir)
	assert.Equal(t, DefaultIndexDSN, cfg.Storage.IndexDSN)
}

func TestGetStructuredConfig_EnvBeatsDefaults(t *testing.T) {
	t.Setenv("APP_ALGORITHM", string(models.AlgorithmXChaCha))
	t.Setenv("STORAGE_KEY_FILE", "/tmp/other-key.txt")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, string(models.AlgorithmXChaCha), cfg.App.Algorithm)
	assert.Equal(t, "/tmp/other-key.txt", cfg.Storage.KeyFile)
	assert.Equal(t, DefaultDir, cfg.Storage.ArtifactDir)
}

func TestGetStructuredConfig_OverridesBeatEnv(t *testing.T) {
	t.Setenv("STORAGE_ARTIFACT_DIR", "/tmp/env-dir")

	overrides := &StructuredConfig{
		Storage: Storage{ArtifactDir: "/tmp/flag-dir"},
	}

	cfg, err := GetStructuredConfig(overrides)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/flag-dir", cfg.Storage.ArtifactDir)
}

func TestGetStructuredConfig_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{"app":{"algorithm":"xchacha20-poly1305"},"storage":{"artifact_dir":"/tmp/json-dir"}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := GetStructuredConfig(&StructuredConfig{JSONFilePath: path})
	require.NoError(t, err)

	assert.Equal(t, string(models.AlgorithmXChaCha), cfg.App.Algorithm)
	assert.Equal(t, "/tmp/json-dir", cfg.Storage.ArtifactDir)
	// Untouched fields still come from defaults.
	assert.Equal(t, DefaultKeyFile, cfg.Storage.KeyFile)
}

func TestGetStructuredConfig_EnvBeatsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{"storage":{"artifact_dir":"/tmp/json-dir"}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	t.Setenv("STORAGE_ARTIFACT_DIR", "/tmp/env-dir")

	cfg, err := GetStructuredConfig(&StructuredConfig{JSONFilePath: path})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-dir", cfg.Storage.ArtifactDir)
}

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	_, err := GetStructuredConfig(&StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")
}

func TestGetStructuredConfig_UnsupportedAlgorithm(t *testing.T) {
	_, err := GetStructuredConfig(&StructuredConfig{App: App{Algorithm: "rot13"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate_EmptyPaths(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
	}{
		{
			name: "empty key file",
			cfg: StructuredConfig{
				App:     App{Algorithm: DefaultAlgorithm},
				Storage: Storage{ArtifactDir: "private", IndexDSN: "private/index.db"},
			},
		},
		{
			name: "empty artifact dir",
			cfg: StructuredConfig{
				App:     App{Algorithm: DefaultAlgorithm},
				Storage: Storage{KeyFile: "key.txt", IndexDSN: "private/index.db"},
			},
		},
		{
			name: "empty index dsn",
			cfg: StructuredConfig{
				App:     App{Algorithm: DefaultAlgorithm},
				Storage: Storage{KeyFile: "key.txt", ArtifactDir: "private"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
		})
	}
}
