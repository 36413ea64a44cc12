package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkarpovs/accountd/internal/flagx"
	"github.com/mkarpovs/accountd/internal/timex"
)

// JsonConfig is the DTO shape of the optional JSON config file. Duration
// fields use timex.Duration so the file may contain either "1h" strings or
// integer nanoseconds. Only fields present in the file are applied.
type JsonConfig struct {
	Addr          *string         `json:"addr"`
	DatabaseDSN   *string         `json:"database_dsn"`
	SecretKey     *string         `json:"secret_key"`
	TokenLifetime *timex.Duration `json:"token_lifetime"`
	BcryptCost    *int            `json:"bcrypt_cost"`
	Headless      *bool           `json:"headless"`
}

// parseJson overlays configuration from the JSON file named by the -c or
// -config flags. If neither flag is present, nothing is loaded.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("config file read error: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config file parse error: %w", err)
	}

	if c.Addr != nil {
		config.Addr = *c.Addr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenLifetime != nil {
		config.TokenLifetime = c.TokenLifetime.Duration
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.Headless != nil {
		config.Headless = *c.Headless
	}

	return nil
}
