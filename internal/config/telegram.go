package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type TelegramConfig struct {
	Token   string `env:"TELEGRAM_BOT_TOKEN,required"`
	OwnerID int64  `env:"TELEGRAM_OWNER_ID"`
}

func NewTelegramConfig() (*TelegramConfig, error) {
	cfg := &TelegramConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse telegram config: %w", err)
	}
	return cfg, nil
}
