package config

import (
	"os"
	"path/filepath"
)

const runtimeDirName = ".gaulbot"

// GetRuntimePath returns the directory holding the database, .env file,
// and anything else the bot writes. Overridable for tests and packaging.
func GetRuntimePath() string {
	if p := os.Getenv("GAUL_RUNTIME_PATH"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return runtimeDirName
	}
	return filepath.Join(home, runtimeDirName)
}

// EnsureRuntimePath creates the runtime directory if missing.
func EnsureRuntimePath() (string, error) {
	p := GetRuntimePath()
	if err := os.MkdirAll(p, 0o755); err != nil {
		return "", err
	}
	return p, nil
}
