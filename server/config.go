package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. The serve command may override the
// listen address with a flag.
type Config struct {
	Addr            string        `env:"WEALTHSIM_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"WEALTHSIM_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WEALTHSIM_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"WEALTHSIM_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"WEALTHSIM_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"WEALTHSIM_LOG_FORMAT" envDefault:"text"`
}

// ConfigFromEnv parses Config out of the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse server env: %w", err)
	}
	return cfg, nil
}
