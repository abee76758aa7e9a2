package config

import (
	"fmt"

	"github.com/MKhiriev/llm-secrets/models"
)

// validate checks the merged configuration for internal consistency. With
// defaults applied the paths are always present, so failures here point at
// explicitly supplied bad values.
func (c *StructuredConfig) validate() error {
	switch models.Algorithm(c.App.Algorithm) {
	case models.AlgorithmAESGCM, models.AlgorithmXChaCha:
	default:
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidAppConfigs, c.App.Algorithm)
	}

	if c.Storage.KeyFile == "" {
		return fmt.Errorf("%w: key file path is empty", ErrInvalidStorageConfigs)
	}
	if c.Storage.ArtifactDir == "" {
		return fmt.Errorf("%w: artifact directory is empty", ErrInvalidStorageConfigs)
	}
	if c.Storage.IndexDSN == "" {
		return fmt.Errorf("%w: index DSN is empty", ErrInvalidStorageConfigs)
	}

	return nil
}
