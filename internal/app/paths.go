package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "health"
	configFileName = "config.yaml"
)

// DefaultDataDir is where record files live when neither a flag nor the
// config file names a directory.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultConfigPath returns the config file path inside dataDir.
func DefaultConfigPath(dataDir string) string {
	return filepath.Join(dataDir, configFileName)
}

func EnsureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
