// Package config handles process-wide configuration.
//
// Everything here describes the target chain and how amounts/addresses are
// rendered for it. The configuration is loaded once at startup (defaults
// overlaid with environment variables) and treated as immutable afterwards;
// the display helpers take the *Config explicitly instead of reading any
// ambient state.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the chain and display settings for one process.
type Config struct {
	// Chain identity
	ChainID       string `config:"CHAIN_ID"`
	AddressPrefix string `config:"ADDRESS_PREFIX"`

	// Denomination rules: amounts arrive in atomic units of NativeDenom and
	// are rendered in DisplayDenom after shifting by DisplayExponent.
	NativeDenom     string `config:"NATIVE_DENOM"`
	DisplayDenom    string `config:"DISPLAY_DENOM"`
	DisplayExponent int    `config:"DISPLAY_EXPONENT"`

	// ExplorerTxURL is a block-explorer transaction URL template containing
	// a single %s placeholder for the hash. Empty disables explorer links.
	ExplorerTxURL string `config:"EXPLORER_TX_URL"`

	// DataDir is where local state (the address book) lives.
	DataDir string `config:"DATA_DIR"`

	// Logging
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `config:"LOG_LEVEL"`
	JSON  bool   `config:"LOG_JSON"`
}

// Default returns the default configuration (Cosmos Hub denominations).
func Default() *Config {
	return &Config{
		ChainID:         "cosmoshub-4",
		AddressPrefix:   "cosmos",
		NativeDenom:     "uatom",
		DisplayDenom:    "ATOM",
		DisplayExponent: 6,
		DataDir:         DefaultDataDir(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.msigkit
//	macOS:   ~/Library/Application Support/Msigkit
//	Windows: %APPDATA%\Msigkit
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".msigkit"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Msigkit")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Msigkit")
		}
		return filepath.Join(home, "AppData", "Roaming", "Msigkit")
	default:
		return filepath.Join(home, ".msigkit")
	}
}

// AddrBookDir returns the address book database directory.
func (c *Config) AddrBookDir() string {
	return filepath.Join(c.DataDir, "addrbook")
}
