package encoding

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// EIP55 renders a 20-byte address with the EIP-55 mixed-case checksum.
// common.Address.Hex() already applies the checksum internally, so this
// is a named wrapper, not a reimplementation of EIP-55's hashing rule.
func EIP55(addr20 []byte) string {
	return common.BytesToAddress(addr20).Hex()
}

// EIP55Valid reports whether addr is valid hex AND, unless it's all-lower
// or all-upper (the two forms EIP-55 defines as carrying no checksum
// claim), that its casing matches the EIP-55 checksum of its own bytes —
// a single flipped character in a checksummed address breaks the
// recomputed casing.
func EIP55Valid(addr string) bool {
	if !common.IsHexAddress(addr) {
		return false
	}
	body := addr[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return common.HexToAddress(addr).Hex() == addr
}
