package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Coin is an amount of one denomination. Amount is a base-10 integer numeral
// in atomic units (e.g. "1000000" uatom), kept as a string because chain
// balances routinely exceed uint64.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Coins is a list of coins.
type Coins []Coin

// NewCoin returns a coin with the given denom and atomic amount.
func NewCoin(denom, amount string) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// Validate checks that the denom is non-empty and the amount parses as a
// non-negative integer numeral.
func (c Coin) Validate() error {
	if c.Denom == "" {
		return fmt.Errorf("coin denom must not be empty")
	}
	n, ok := sdkmath.NewIntFromString(c.Amount)
	if !ok {
		return fmt.Errorf("invalid coin amount %q", c.Amount)
	}
	if n.IsNegative() {
		return fmt.Errorf("coin amount must not be negative, got %q", c.Amount)
	}
	return nil
}

// String renders the coin in amount+denom wire form (e.g. "1000000uatom").
func (c Coin) String() string {
	return c.Amount + c.Denom
}
