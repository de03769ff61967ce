package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName    = "fitguide"
	stateFileName = "state.db"
)

func DefaultStatePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, stateFileName), nil
}

func EnsureStateDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	return nil
}
