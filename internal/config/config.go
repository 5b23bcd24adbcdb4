// Package config содержит логику чтения конфигурации приложения orderdesk.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации приложения orderdesk.
type Config struct {
	RunAddress string `env:"RUN_ADDRESS"`
	APIAddress string `env:"API_ADDRESS"`
	StatePath  string `env:"STATE_PATH"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных
// окружения; переменные окружения имеют приоритет.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envAPIAddress := cfg.APIAddress
	envStatePath := cfg.StatePath

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.APIAddress, "r", "http://localhost:3000", "orders API address")
	flag.StringVar(&cfg.StatePath, "s", "orderdesk-state.json", "path to the session state file")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envAPIAddress != "" {
		cfg.APIAddress = envAPIAddress
	}
	if envStatePath != "" {
		cfg.StatePath = envStatePath
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}
