// Package wallet holds the WalletAddress output value every chain driver
// and the dispatch layer produce, generalized from internal/models/address.go
// (teacher) to the chain-agnostic shape SPEC_FULL.md's DATA MODEL names.
package wallet

import "github.com/arcsign/derive/internal/chainregistry"

// Address is one derived result: the canonical address string plus the
// key material and path that produced it. Keys are emitted lowercase-hex
// with no 0x prefix; only address strings for EVM-style and Sui chains
// retain 0x, because that's part of their canonical address form.
type Address struct {
	Address        string                  `json:"address"`
	ChainType      chainregistry.ChainType `json:"chainType"`
	ChainInfo      chainregistry.ChainInfo `json:"chainInfo"`
	DerivationPath string                  `json:"derivationPath"`
	Index          uint32                  `json:"index"`
	PublicKeyHex   string                  `json:"publicKey"`
	PrivateKeyHex  string                  `json:"privateKey"`
}
