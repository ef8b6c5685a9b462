package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type OutputConfig struct {
	Format     string `env:"CRON_EXPAND_FORMAT, default=table"`
	LabelWidth int    `env:"CRON_EXPAND_LABEL_WIDTH, default=14"`
}

func NewOutputConfigFromEnv() (*OutputConfig, error) {
	var cfg OutputConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	if cfg.LabelWidth < 1 {
		return nil, fmt.Errorf("CRON_EXPAND_LABEL_WIDTH must be at least 1, got %d", cfg.LabelWidth)
	}

	return &cfg, nil
}
