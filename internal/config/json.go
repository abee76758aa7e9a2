package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON loads configuration from a JSON file. The file mirrors the
// structure of [StructuredConfig] via its json tags:
//
//	{
//	  "app":     {"algorithm": "aes-gcm", "version": "1.0.0"},
//	  "storage": {"key_file": "key.txt", "artifact_dir": "private", "index_dsn": "private/index.db"}
//	}
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg StructuredConfig
	if err := json.NewDecoder(jsonFile).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &cfg, nil
}
