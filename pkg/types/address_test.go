package types

import (
	"encoding/json"
	"strings"
	"testing"
)

const testAddr = "cosmos1pkptre7fdkl6gfrzlesjjvhxhlc3r4gmmk8rs6"

func TestAddress_IsZero(t *testing.T) {
	var zero Address
	if !zero.IsZero() {
		t.Error("zero-value Address should be zero")
	}

	nonZero := Address{0x01}
	if nonZero.IsZero() {
		t.Error("non-zero Address should not be zero")
	}
}

func TestAddress_EncodeParseRoundtrip(t *testing.T) {
	a, err := ParseAddress(testAddr, "cosmos")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	if a.Hex() != "0d82b1e7c96dbfa42462fe612932e6bff111d51b" {
		t.Errorf("Hex() = %q, want known payload", a.Hex())
	}

	s, err := a.Encode("cosmos")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if s != testAddr {
		t.Errorf("Encode() = %q, want %q", s, testAddr)
	}
}

func TestAddress_EncodeOtherPrefix(t *testing.T) {
	a, err := ParseAddress(testAddr, "cosmos")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	s, err := a.Encode("osmo")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(s, "osmo1") {
		t.Errorf("Encode under osmo = %q", s)
	}
	back, err := ParseAddress(s, "osmo")
	if err != nil {
		t.Fatalf("ParseAddress osmo: %v", err)
	}
	if back != a {
		t.Error("payload changed across re-encode")
	}
}

func TestParseAddress_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
	}{
		{"empty", "", "cosmos"},
		{"not bech32", "hello world", "cosmos"},
		{"bad checksum", testAddr[:len(testAddr)-1] + "q", "cosmos"},
		{"wrong prefix", testAddr, "osmo"},
		{"short payload", "cosmos1qypqxpqqlyngr", "cosmos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAddress(tt.input, tt.prefix); err == nil {
				t.Errorf("ParseAddress(%q, %q) should fail", tt.input, tt.prefix)
			}
		})
	}
}

func TestAddress_JSONRoundtrip(t *testing.T) {
	a, err := ParseAddress(testAddr, "cosmos")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"0d82b1e7c96dbfa42462fe612932e6bff111d51b"` {
		t.Errorf("Marshal = %s, want hex payload", data)
	}

	var back Address
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != a {
		t.Errorf("roundtrip = %s, want %s", back.Hex(), a.Hex())
	}
}

func TestAddress_UnmarshalJSON(t *testing.T) {
	t.Run("empty string is zero address", func(t *testing.T) {
		var a Address
		if err := json.Unmarshal([]byte(`""`), &a); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if !a.IsZero() {
			t.Errorf("Unmarshal(\"\") = %s, want zero address", a.Hex())
		}
	})

	tests := []struct {
		name  string
		input string
	}{
		{"not a string", `42`},
		{"not hex", `"zzzz"`},
		{"wrong length", `"0d82b1"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Address
			if err := json.Unmarshal([]byte(tt.input), &a); err == nil {
				t.Errorf("Unmarshal(%s) should fail", tt.input)
			}
		})
	}
}

func TestHexToAddress(t *testing.T) {
	a, err := HexToAddress("0d82b1e7c96dbfa42462fe612932e6bff111d51b")
	if err != nil {
		t.Fatalf("HexToAddress: %v", err)
	}
	if a.Hex() != "0d82b1e7c96dbfa42462fe612932e6bff111d51b" {
		t.Errorf("Hex() = %q", a.Hex())
	}

	if _, err := HexToAddress("0d82b1"); err == nil {
		t.Error("short hex should fail")
	}
	if _, err := HexToAddress("not hex"); err == nil {
		t.Error("non-hex should fail")
	}
}

func TestAddress_Bytes(t *testing.T) {
	a, err := ParseAddress(testAddr, "cosmos")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	b := a.Bytes()
	if len(b) != AddressSize {
		t.Fatalf("Bytes() length = %d, want %d", len(b), AddressSize)
	}
	// Mutating the copy must not touch the address.
	b[0] ^= 0xff
	if a.Bytes()[0] == b[0] {
		t.Error("Bytes() should return a copy")
	}
}
