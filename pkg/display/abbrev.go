// Package display holds the pure helpers the wallet front-end uses to render
// and validate chain data: identifier abbreviation, coin formatting,
// placeholder address/pubkey generation, address validation, and explorer
// links. Every function takes its configuration explicitly and keeps no
// state, so all of them are safe for concurrent use.
package display

// abbrevKeep is how many characters survive on each side of the ellipsis.
const abbrevKeep = 5

// Abbreviate shortens a long identifier for compact display: the first and
// last five characters joined by "...". Strings shorter than 13 characters
// come back unchanged; anything longer always renders as exactly 13.
//
// Positions are byte offsets: inputs are bech32/base64/hex identifiers,
// which are ASCII. Passing other text may split a multi-byte rune.
func Abbreviate(s string) string {
	if len(s) < 2*abbrevKeep+3 {
		return s
	}
	return s[:abbrevKeep] + "..." + s[len(s)-abbrevKeep:]
}
