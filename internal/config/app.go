package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
)

// AppConfig carries the engine-wide knobs. Defaults match a small
// single-node deployment; everything is overridable from the environment.
type AppConfig struct {
	ContextWindowSize int           `env:"GAUL_CONTEXT_WINDOW_SIZE" envDefault:"20"`
	ContextWindowTTL  time.Duration `env:"GAUL_CONTEXT_WINDOW_TTL" envDefault:"24h"`
	ContextIdleTTL    time.Duration `env:"GAUL_CONTEXT_IDLE_TTL" envDefault:"6h"`
	CandidateLimit    int           `env:"GAUL_CANDIDATE_LIMIT" envDefault:"15"`
	EnableTelegram    bool          `env:"GAUL_ENABLE_TELEGRAM" envDefault:"true"`
	EnableRedis       bool          `env:"GAUL_ENABLE_REDIS" envDefault:"true"`
}

func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse app config: %w", err)
	}
	return cfg, nil
}

// GetDatabasePath returns the knowledge database location under the
// runtime directory.
func (c *AppConfig) GetDatabasePath() string {
	return filepath.Join(GetRuntimePath(), "gaulbot.db")
}
