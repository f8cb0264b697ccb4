package display

import (
	"encoding/base64"
	"fmt"

	"github.com/cosmoshaven/multisig-kit/config"
	"github.com/cosmoshaven/multisig-kit/pkg/crypto"
	"github.com/cosmoshaven/multisig-kit/pkg/types"
)

// Fixed seeds for the placeholder generator. The address seed is a valid
// bech32 string whose 20-byte payload anchors the chain of derived examples;
// the pubkey seed is a base64 33-byte compressed-key-shaped blob. Neither is
// a real key and nothing derived from them ever will be.
const (
	exampleAddressSeed = "cosmos1pkptre7fdkl6gfrzlesjjvhxhlc3r4gmmk8rs6"
	examplePubkeySeed  = "A08EGB7ro1ORuFhjOnZcSgwYlpe0DSFjVNUIkNNQxwKQ"
)

// examplePubkeySize is the compressed secp256k1 key length.
const examplePubkeySize = 33

// ExampleAddress returns a deterministic placeholder address for UI mockups.
// Index 0 is the fixed seed payload re-encoded under the configured prefix;
// each higher index hashes the previous payload once more (first 20 bytes of
// SHA-512), so outputs look unrelated but reproduce exactly across calls.
func ExampleAddress(index int, cfg *config.Config) (string, error) {
	_, payload, err := types.Bech32Decode(exampleAddressSeed)
	if err != nil {
		return "", fmt.Errorf("decode example seed: %w", err)
	}
	for i := 0; i < index; i++ {
		payload = crypto.Derive(payload, types.AddressSize)
	}
	return types.Bech32Encode(cfg.AddressPrefix, payload)
}

// ExamplePubkey returns a deterministic placeholder public key (base64,
// compressed-key-shaped) for UI mockups. Each round replaces the data with
// the first 33 bytes of its SHA-512 and forces the leading byte to 0x02 or
// 0x03 by the parity of the index argument itself, not the round counter;
// that parity rule is part of the fixture contract and is kept as-is.
// The result is not a valid curve point and must never be used as a key.
func ExamplePubkey(index int) (string, error) {
	data, err := base64.StdEncoding.DecodeString(examplePubkeySeed)
	if err != nil {
		return "", fmt.Errorf("decode example seed: %w", err)
	}
	for i := 0; i < index; i++ {
		data = crypto.Derive(data, examplePubkeySize)
		if index%2 == 0 {
			data[0] = 0x02
		} else {
			data[0] = 0x03
		}
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
