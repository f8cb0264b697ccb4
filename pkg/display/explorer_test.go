package display

import (
	"testing"

	"github.com/cosmoshaven/multisig-kit/config"
)

func TestExplorerTxLink(t *testing.T) {
	cfg := config.Default()

	t.Run("unconfigured", func(t *testing.T) {
		if got := ExplorerTxLink("ABC", cfg); got != "" {
			t.Errorf("ExplorerTxLink = %q, want \"\" when no template set", got)
		}
	})

	t.Run("configured", func(t *testing.T) {
		withURL := *cfg
		withURL.ExplorerTxURL = "https://www.mintscan.io/cosmos/txs/%s"
		got := ExplorerTxLink("ABC", &withURL)
		if got != "https://www.mintscan.io/cosmos/txs/ABC" {
			t.Errorf("ExplorerTxLink = %q", got)
		}
	})

	t.Run("only first placeholder", func(t *testing.T) {
		withURL := *cfg
		withURL.ExplorerTxURL = "https://example.com/%s/%s"
		got := ExplorerTxLink("ABC", &withURL)
		if got != "https://example.com/ABC/%s" {
			t.Errorf("ExplorerTxLink = %q, want only the first %%s replaced", got)
		}
	})
}
