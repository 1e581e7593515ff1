// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the bot process needs. Optional settings disable
// their feature when absent: an empty ChannelID disables the broadcast
// notifier, a zero AdminID disables the whole admin surface.
type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	ChannelID     string `env:"CHANNEL_ID"`
	AdminID       int64  `env:"ADMIN_ID"`
	DBPath        string `env:"PVKBOT_DB" envDefault:"applications.db"`
	HTTPAddr      string `env:"PVKBOT_HTTP_ADDR" envDefault:":8080"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
