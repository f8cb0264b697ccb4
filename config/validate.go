package config

import (
	"fmt"
	"strings"
)

// MaxDisplayExponent is the largest supported decimal shift. The fixed-point
// formatter carries 18 fractional digits, so anything above that would lose
// precision silently.
const MaxDisplayExponent = 18

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.AddressPrefix == "" {
		return fmt.Errorf("ADDRESS_PREFIX must not be empty")
	}
	if cfg.AddressPrefix != strings.ToLower(cfg.AddressPrefix) {
		return fmt.Errorf("ADDRESS_PREFIX must be lowercase, got %q", cfg.AddressPrefix)
	}
	if cfg.NativeDenom == "" {
		return fmt.Errorf("NATIVE_DENOM must not be empty")
	}
	if cfg.DisplayDenom == "" {
		return fmt.Errorf("DISPLAY_DENOM must not be empty")
	}
	if cfg.DisplayExponent < 0 || cfg.DisplayExponent > MaxDisplayExponent {
		return fmt.Errorf("DISPLAY_EXPONENT must be in range [0, %d], got %d", MaxDisplayExponent, cfg.DisplayExponent)
	}
	if cfg.ExplorerTxURL != "" && !strings.Contains(cfg.ExplorerTxURL, "%s") {
		return fmt.Errorf("EXPLORER_TX_URL must contain a %%s placeholder")
	}
	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn, or error")
	}
	return nil
}
