package encoding

import (
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Base58Encode encodes raw bytes using the Bitcoin alphabet (no checksum),
// the form Solana addresses use directly on a public key.
func Base58Encode(data []byte) string {
	return base58.Encode(data)
}

// Base58Decode is the inverse of Base58Encode.
func Base58Decode(s string) []byte {
	return base58.Decode(s)
}

// Base58CheckEncode is Base58Check over the Bitcoin alphabet:
// Base58(versionPrefix || payload || DoubleSHA256(versionPrefix||payload)[0:4]).
// versionPrefix may be more than one byte (TRON's 0x41, Tezos's 3-byte
// tz1 prefix), which is why this builds the checksum by hand instead of
// using btcutil/base58.CheckEncode (that helper only accepts a single
// version byte).
func Base58CheckEncode(versionPrefix, payload []byte) string {
	body := make([]byte, 0, len(versionPrefix)+len(payload)+4)
	body = append(body, versionPrefix...)
	body = append(body, payload...)
	checksum := DoubleSHA256(body)
	body = append(body, checksum[:4]...)
	return base58.Encode(body)
}

// Base58CheckDecode reverses Base58CheckEncode, validating the trailing
// 4-byte double-SHA256 checksum and returning versionPrefix||payload.
func Base58CheckDecode(s string) ([]byte, bool) {
	raw := base58.Decode(s)
	if len(raw) < 4 {
		return nil, false
	}
	body, checksum := raw[:len(raw)-4], raw[len(raw)-4:]
	want := DoubleSHA256(body)
	if string(want[:4]) != string(checksum) {
		return nil, false
	}
	return body, true
}

// rippleAlphabet is XRP's reordering of the Bitcoin base58 alphabet.
const rippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// RippleBase58CheckEncode is Base58Check encoded with the Ripple alphabet.
//
// The teacher's address/ripple.go accumulated the payload into a uint64
// before doing base-58 division — a genuine bug, since a real XRP address
// payload (1-byte version + 20-byte hash160 + 4-byte checksum = 25 bytes)
// vastly exceeds what a uint64 can hold and silently truncates. This
// encodes via math/big instead, which has no such ceiling.
func RippleBase58CheckEncode(versionPrefix, payload []byte) string {
	body := make([]byte, 0, len(versionPrefix)+len(payload)+4)
	body = append(body, versionPrefix...)
	body = append(body, payload...)
	checksum := DoubleSHA256(body)
	body = append(body, checksum[:4]...)
	return encodeBigBase58(body, rippleAlphabet)
}

// RippleBase58CheckDecode reverses RippleBase58CheckEncode, validating the
// trailing checksum.
func RippleBase58CheckDecode(s string) ([]byte, bool) {
	raw, ok := decodeBigBase58(s, rippleAlphabet)
	if !ok || len(raw) < 4 {
		return nil, false
	}
	body, checksum := raw[:len(raw)-4], raw[len(raw)-4:]
	want := DoubleSHA256(body)
	if string(want[:4]) != string(checksum) {
		return nil, false
	}
	return body, true
}

func decodeBigBase58(s string, alphabet string) ([]byte, bool) {
	values := make(map[byte]int64, 58)
	for i := 0; i < len(alphabet); i++ {
		values[alphabet[i]] = int64(i)
	}
	x := new(big.Int)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		v, ok := values[s[i]]
		if !ok {
			return nil, false
		}
		x.Mul(x, base)
		x.Add(x, big.NewInt(v))
	}
	body := x.Bytes()
	leadingZeros := 0
	for i := 0; i < len(s) && s[i] == alphabet[0]; i++ {
		leadingZeros++
	}
	out := make([]byte, leadingZeros+len(body))
	copy(out[leadingZeros:], body)
	return out, true
}

func encodeBigBase58(data []byte, alphabet string) string {
	x := new(big.Int).SetBytes(data)
	base := big.NewInt(58)
	mod := new(big.Int)
	var out []byte
	for x.Sign() > 0 {
		x.DivMod(x, base, mod)
		out = append(out, alphabet[mod.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	leadingZeros := 0
	for _, b := range data {
		if b != 0 {
			break
		}
		leadingZeros++
	}
	return strings.Repeat(string(alphabet[0]), leadingZeros) + string(out)
}

// moneroAlphabet is the same ordering as the Bitcoin alphabet; what makes
// Monero's base58 distinct is the block encoding below, not the alphabet.
const moneroAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// moneroBlockSizes[n] is the encoded character count for a final partial
// block of n raw bytes (a full 8-byte block always encodes to 11 chars).
var moneroBlockSizes = [...]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

// MoneroBase58Encode implements Monero's block-wise base58: the payload is
// split into 8-byte blocks (a final short block is padded conceptually,
// not literally — its encoded width comes from moneroBlockSizes), each
// encoded independently and left-padded with the alphabet's zero symbol,
// then concatenated. This keeps fixed-width blocks decodable without a
// length prefix, unlike plain base58's variable-width output. No base58
// library in the retrieved corpus implements this block scheme (mr-tron
// and btcutil's base58 both do plain variable-width encoding), so it's
// built directly here against the well-known block layout.
func MoneroBase58Encode(data []byte) string {
	var out strings.Builder
	fullBlocks := len(data) / 8
	for i := 0; i < fullBlocks; i++ {
		out.Write(moneroEncodeBlock(data[i*8:i*8+8], 11))
	}
	if rem := len(data) % 8; rem > 0 {
		out.Write(moneroEncodeBlock(data[fullBlocks*8:], moneroBlockSizes[rem]))
	}
	return out.String()
}

func moneroEncodeBlock(block []byte, width int) []byte {
	x := new(big.Int).SetBytes(block)
	base := big.NewInt(58)
	mod := new(big.Int)
	res := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		x.DivMod(x, base, mod)
		res[i] = moneroAlphabet[mod.Int64()]
	}
	return res
}

// MoneroBase58Decode reverses MoneroBase58Encode block by block. A
// malformed block (wrong width, a character outside the Monero alphabet,
// or a value that overflows its raw byte width) fails decoding. A mutated
// character that stays inside the alphabet and within the block's width
// decodes to different bytes, so catching it is left to the caller's
// checksum comparison.
func MoneroBase58Decode(s string) ([]byte, bool) {
	var out []byte
	for len(s) > 11 {
		block, ok := moneroDecodeBlock(s[:11], 8)
		if !ok {
			return nil, false
		}
		out = append(out, block...)
		s = s[11:]
	}
	rawLen := -1
	for n, w := range moneroBlockSizes {
		if w == len(s) {
			rawLen = n
			break
		}
	}
	if rawLen < 0 {
		return nil, false
	}
	block, ok := moneroDecodeBlock(s, rawLen)
	if !ok {
		return nil, false
	}
	return append(out, block...), true
}

func moneroDecodeBlock(s string, rawLen int) ([]byte, bool) {
	x := new(big.Int)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(moneroAlphabet, s[i])
		if idx < 0 {
			return nil, false
		}
		x.Mul(x, base)
		x.Add(x, big.NewInt(int64(idx)))
	}
	raw := x.Bytes()
	if len(raw) > rawLen {
		return nil, false
	}
	block := make([]byte, rawLen)
	copy(block[rawLen-len(raw):], raw)
	return block, true
}
