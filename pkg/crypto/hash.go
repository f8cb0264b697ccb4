// Package crypto provides the hashing primitives used across multisig-kit.
package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160" // address format requires RIPEMD-160

	"github.com/cosmoshaven/multisig-kit/pkg/types"
)

// Hash160 computes RIPEMD-160(SHA-256(data)), the 20-byte digest this chain
// uses to turn a compressed public key into an address payload.
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(sha[:])
	return r.Sum(nil)
}

// Derive returns the first size bytes of SHA-512(data). Used by the example
// data generator to stretch a seed into a chain of distinct payloads.
func Derive(data []byte, size int) []byte {
	sum := sha512.Sum512(data)
	return sum[:size]
}

// AddressFromPubKey derives an address from a 33-byte compressed secp256k1
// public key. The key must be a valid curve point.
func AddressFromPubKey(pub []byte) (types.Address, error) {
	if _, err := secp256k1.ParsePubKey(pub); err != nil {
		return types.Address{}, fmt.Errorf("invalid public key: %w", err)
	}
	h := Hash160(pub)
	var addr types.Address
	copy(addr[:], h)
	return addr, nil
}
