package config

import "os"

// IsDebug reports whether verbose logging was requested via environment.
func IsDebug() bool {
	return os.Getenv("GAUL_DEBUG") == "1" || os.Getenv("GAUL_DEBUG") == "true"
}
