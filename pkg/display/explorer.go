package display

import (
	"strings"

	"github.com/cosmoshaven/multisig-kit/config"
)

// ExplorerTxLink builds a block-explorer URL for a transaction hash from the
// configured template, substituting the first %s occurrence. Returns "" when
// no explorer is configured.
func ExplorerTxLink(hash string, cfg *config.Config) string {
	if cfg.ExplorerTxURL == "" {
		return ""
	}
	return strings.Replace(cfg.ExplorerTxURL, "%s", hash, 1)
}
