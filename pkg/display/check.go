package display

import (
	"fmt"

	"github.com/cosmoshaven/multisig-kit/config"
	"github.com/cosmoshaven/multisig-kit/pkg/types"
)

// CheckAddress validates a user-entered address against the configured
// prefix and the 20-byte payload length. It returns a human-readable message
// describing the first problem found, or "" when the address is valid.
//
// This is the validator boundary: decode failures stay typed errors inside
// pkg/types and only become strings here. CheckAddress itself never errors.
func CheckAddress(input string, cfg *config.Config) string {
	if input == "" {
		return "Empty"
	}
	prefix, data, err := types.Bech32Decode(input)
	if err != nil {
		return err.Error()
	}
	if prefix != cfg.AddressPrefix {
		return fmt.Sprintf("Expected address prefix %q, got %q", cfg.AddressPrefix, prefix)
	}
	if len(data) != types.AddressSize {
		return fmt.Sprintf("Address data is not %d bytes long", types.AddressSize)
	}
	return ""
}
