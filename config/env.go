package config

import (
	"fmt"

	jlconfig "github.com/JeremyLoy/config"
)

// FromEnv builds a Config from the defaults overlaid with environment
// variables (CHAIN_ID, ADDRESS_PREFIX, NATIVE_DENOM, DISPLAY_DENOM,
// DISPLAY_EXPONENT, EXPLORER_TX_URL, DATA_DIR, LOG_LEVEL, LOG_JSON).
// Unset variables leave the default in place.
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(cfg); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
