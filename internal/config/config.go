// internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment overrides for the flag defaults. Flags given on
// the command line always win over these.
type Env struct {
	Input  string `env:"DICESTATS_INPUT"`
	OutDir string `env:"DICESTATS_OUT_DIR"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
