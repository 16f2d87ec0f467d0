package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/pascal3d/scenebridge/pkg/convert"
)

// configEnv names the environment variable consulted when --config is not
// given.
const configEnv = "SCENEBRIDGE_CONFIG"

// loadConfig reads the YAML config file, falling back to $SCENEBRIDGE_CONFIG
// and then to built-in defaults. A config file may set any subset of keys.
func loadConfig(path string) (convert.Config, error) {
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return convert.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return convert.Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := convert.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return convert.Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
