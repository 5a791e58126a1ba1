package encoding

import "encoding/base32"

// encoding/base32 is the idiomatic choice here: no example in the corpus
// reaches for a third-party base32 crate, and the stdlib encoder already
// supports arbitrary alphabets and unpadded output via WithPadding.
var (
	upperNoPad = base32.StdEncoding.WithPadding(base32.NoPadding)
	lowerNoPad = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)
)

// Base32UpperNoPad is RFC-4648 Base32 (upper, no padding) — Stellar's
// strkey and Algorand's address encoding.
func Base32UpperNoPad(data []byte) string {
	return upperNoPad.EncodeToString(data)
}

// Base32LowerNoPad is RFC-4648 Base32 (lower, no padding) — Filecoin and
// ICP's principal encoding.
func Base32LowerNoPad(data []byte) string {
	return lowerNoPad.EncodeToString(data)
}

// Base32UpperNoPadDecode reverses Base32UpperNoPad. RFC-4648 base32 itself
// carries no checksum, so this only rejects malformed alphabet/padding;
// callers (Algorand) still recompute and compare their own checksum
// suffix against the decoded payload.
func Base32UpperNoPadDecode(s string) ([]byte, error) {
	return upperNoPad.DecodeString(s)
}

// Base32LowerNoPadDecode reverses Base32LowerNoPad for the same reason
// Base32UpperNoPadDecode exists: Filecoin and ICP append their own
// checksum bytes inside the decoded payload, not in the alphabet.
func Base32LowerNoPadDecode(s string) ([]byte, error) {
	return lowerNoPad.DecodeString(s)
}
