package types

import (
	"bytes"
	"testing"
)

func TestBech32_Roundtrip(t *testing.T) {
	data := []byte{0x0d, 0x82, 0xb1, 0xe7, 0xc9, 0x6d, 0xbf, 0xa4, 0x24, 0x62,
		0xfe, 0x61, 0x29, 0x32, 0xe6, 0xbf, 0xf1, 0x11, 0xd5, 0x1b}

	encoded, err := Bech32Encode("cosmos", data)
	if err != nil {
		t.Fatalf("Bech32Encode: %v", err)
	}
	if encoded != "cosmos1pkptre7fdkl6gfrzlesjjvhxhlc3r4gmmk8rs6" {
		t.Errorf("encoded = %q, want known vector", encoded)
	}

	prefix, decoded, err := Bech32Decode(encoded)
	if err != nil {
		t.Fatalf("Bech32Decode: %v", err)
	}
	if prefix != "cosmos" {
		t.Errorf("prefix = %q, want %q", prefix, "cosmos")
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("decoded = %x, want %x", decoded, data)
	}
}

func TestBech32Encode_PrefixVariants(t *testing.T) {
	data := []byte{0x0d, 0x82, 0xb1, 0xe7, 0xc9, 0x6d, 0xbf, 0xa4, 0x24, 0x62,
		0xfe, 0x61, 0x29, 0x32, 0xe6, 0xbf, 0xf1, 0x11, 0xd5, 0x1b}

	// Same payload under a different prefix must re-checksum, not just
	// swap the text before the separator.
	encoded, err := Bech32Encode("osmo", data)
	if err != nil {
		t.Fatalf("Bech32Encode: %v", err)
	}
	if encoded != "osmo1pkptre7fdkl6gfrzlesjjvhxhlc3r4gmnd5nxg" {
		t.Errorf("encoded = %q, want known vector", encoded)
	}
}

func TestBech32Decode_InvalidChecksum(t *testing.T) {
	encoded, err := Bech32Encode("cosmos", make([]byte, 20))
	if err != nil {
		t.Fatalf("Bech32Encode: %v", err)
	}

	// Corrupt last character.
	corrupted := encoded[:len(encoded)-1] + "q"
	if corrupted == encoded {
		corrupted = encoded[:len(encoded)-1] + "p"
	}

	_, _, err = Bech32Decode(corrupted)
	if err == nil {
		t.Error("expected error for invalid checksum")
	}
}

func TestBech32Decode_InvalidChars(t *testing.T) {
	_, _, err := Bech32Decode("cosmos1b!!invalid")
	if err == nil {
		t.Error("expected error for invalid characters")
	}
}

func TestBech32Decode_MixedCase(t *testing.T) {
	_, _, err := Bech32Decode("cosmos1Pkptre7fdkl6gfrzlesjjvhxhlc3r4gmmk8rs6")
	if err == nil {
		t.Error("expected error for mixed case")
	}
}

func TestBech32Encode_EmptyPrefix(t *testing.T) {
	_, err := Bech32Encode("", []byte{0x01})
	if err == nil {
		t.Error("expected error for empty prefix")
	}
}

func TestBech32Decode_Empty(t *testing.T) {
	_, _, err := Bech32Decode("")
	if err == nil {
		t.Error("expected error for empty string")
	}
}

func TestBech32Decode_MissingSeparator(t *testing.T) {
	_, _, err := Bech32Decode("qpzry9x8gf2tvdw0")
	if err == nil {
		t.Error("expected error for missing separator")
	}
}
