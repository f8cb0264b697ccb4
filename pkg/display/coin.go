package display

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmoshaven/multisig-kit/config"
	"github.com/cosmoshaven/multisig-kit/pkg/types"
)

// missingAmount is rendered when there is no coin to show.
const missingAmount = "–"

// tickerSep is the narrow no-break space between a value and its ticker.
const tickerSep = " "

// microExponent is the decimal shift for u-prefixed micro-denominations.
const microExponent = 6

// FormatCoin renders a coin for display. nil renders as a dash placeholder.
//
// The native denom converts atomic units to display units using the
// configured exponent and ticker. Other denoms starting with 'u' are treated
// as micro-denominations: shifted by six, ticker upper-cased with the 'u'
// stripped. Anything else passes through verbatim. The native-denom rule is
// checked first, so a native "uatom" never falls into the generic 'u' branch.
//
// A malformed amount is a caller bug and comes back as an error.
func FormatCoin(c *types.Coin, cfg *config.Config) (string, error) {
	if c == nil {
		return missingAmount, nil
	}
	switch {
	case c.Denom == cfg.NativeDenom:
		value, err := displayValue(c.Amount, int64(cfg.DisplayExponent))
		if err != nil {
			return "", err
		}
		return value + tickerSep + cfg.DisplayDenom, nil
	case strings.HasPrefix(c.Denom, "u"):
		value, err := displayValue(c.Amount, microExponent)
		if err != nil {
			return "", err
		}
		return value + tickerSep + strings.ToUpper(c.Denom[1:]), nil
	default:
		return c.Amount + tickerSep + c.Denom, nil
	}
}

// FormatCoins renders a single-element coin list. The front-end only ever
// shows one coin per amount; any other cardinality is a usage error, not
// something to summarize silently.
func FormatCoins(coins types.Coins, cfg *config.Config) (string, error) {
	if len(coins) != 1 {
		return "", fmt.Errorf("expected exactly one coin, got %d", len(coins))
	}
	return FormatCoin(&coins[0], cfg)
}

// displayValue converts an atomic-unit integer numeral into a display-unit
// decimal string, trailing zeros trimmed.
func displayValue(amount string, exponent int64) (string, error) {
	n, ok := sdkmath.NewIntFromString(amount)
	if !ok {
		return "", fmt.Errorf("invalid coin amount %q", amount)
	}
	if n.IsNegative() {
		return "", fmt.Errorf("coin amount must not be negative, got %q", amount)
	}
	dec := sdkmath.LegacyNewDecFromIntWithPrec(n, exponent)
	return trimZeros(dec.String()), nil
}

// trimZeros strips trailing fractional zeros from a fixed-width decimal
// string ("1.500000000000000000" -> "1.5", "1.000000000000000000" -> "1").
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
