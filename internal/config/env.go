package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with pointer fields so that only variables
// actually present in the environment are overlaid.
type envConfig struct {
	Addr          *string        `env:"ACCOUNTD_ADDR"`
	DatabaseDSN   *string        `env:"ACCOUNTD_DATABASE_DSN"`
	SecretKey     *string        `env:"JWT_SECRET"`
	TokenLifetime *time.Duration `env:"ACCOUNTD_TOKEN_LIFETIME"`
	BcryptCost    *int           `env:"ACCOUNTD_BCRYPT_COST"`
	Headless      *bool          `env:"ACCOUNTD_HEADLESS"`
}

// parseEnv overlays configuration from environment variables. The signing
// secret in particular is expected to arrive this way (JWT_SECRET), read
// exactly once at startup.
func parseEnv(config *Config) error {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("env parse error: %w", err)
	}

	if e.Addr != nil {
		config.Addr = *e.Addr
	}
	if e.DatabaseDSN != nil {
		config.DatabaseDSN = *e.DatabaseDSN
	}
	if e.SecretKey != nil {
		config.SecretKey = *e.SecretKey
	}
	if e.TokenLifetime != nil {
		config.TokenLifetime = *e.TokenLifetime
	}
	if e.BcryptCost != nil {
		config.BcryptCost = *e.BcryptCost
	}
	if e.Headless != nil {
		config.Headless = *e.Headless
	}

	return nil
}
