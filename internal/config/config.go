package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config carries the ambient knobs only. The probe endpoint itself is
// fixed and not configurable.
type Config struct {
	LogLevel         string        `env:"LOG_LEVEL"          envDefault:"info" validate:"oneof=trace debug info warn error fatal panic"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT"       envDefault:"30s"  validate:"gt=0"`
	MaxResponseBytes int64         `env:"MAX_RESPONSE_BYTES" envDefault:"0"    validate:"gte=0"`
}

func New() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
