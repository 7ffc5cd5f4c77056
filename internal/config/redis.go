package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func NewRedisConfig() (*RedisConfig, error) {
	cfg := &RedisConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse redis config: %w", err)
	}
	return cfg, nil
}

func (c *RedisConfig) Options() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}
