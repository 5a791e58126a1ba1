// Package chainregistry is the static chain table: closed ChainType
// enumeration, per-chain metadata, and the symbol->chain-set expansion.
// Grounded on internal/services/coinregistry (teacher), generalized from
// a single string FormatterID key to the typed ChainType enum
// SPEC_FULL.md's "tagged variants, not inheritance" design calls for.
package chainregistry

import "encoding/json"

// Scheme is the signature scheme a chain's keys use.
type Scheme int

const (
	Secp256k1 Scheme = iota
	Ed25519
)

func (s Scheme) String() string {
	if s == Ed25519 {
		return "ed25519"
	}
	return "secp256k1"
}

// ChainType is the closed enumeration of chain drivers. Distinct variants
// exist per Bitcoin address style and per EVM chain, since path and/or
// encoding differ even though the underlying curve doesn't.
type ChainType string

const (
	BTCLegacy  ChainType = "btc_legacy"
	BTCSegwit  ChainType = "btc_segwit"
	BTCTaproot ChainType = "btc_taproot"

	Ethereum  ChainType = "ethereum"
	BaseChain ChainType = "base"
	Arbitrum  ChainType = "arbitrum"
	Optimism  ChainType = "optimism"
	Polygon   ChainType = "polygon"
	Avalanche ChainType = "avalanche"

	XRP       ChainType = "xrp"
	TRON      ChainType = "tron"
	Dogecoin  ChainType = "dogecoin"
	Solana    ChainType = "solana"
	Sui       ChainType = "sui"
	NEAR      ChainType = "near"
	Stellar   ChainType = "stellar"

	CosmosHub ChainType = "cosmoshub"
	Osmosis   ChainType = "osmosis"
	Juno      ChainType = "juno"
	Secret    ChainType = "secret"
	Akash     ChainType = "akash"
	Sei       ChainType = "sei"
	Celestia  ChainType = "celestia"
	Injective ChainType = "injective"

	Tezos    ChainType = "tezos"
	Filecoin ChainType = "filecoin"
	Polkadot ChainType = "polkadot"
	Kusama   ChainType = "kusama"
	Algorand ChainType = "algorand"
	Hedera   ChainType = "hedera"
	ICP      ChainType = "icp"
	EOS      ChainType = "eos"
	Mina     ChainType = "mina"
	TON      ChainType = "ton"
	Monero   ChainType = "monero"
	Cardano  ChainType = "cardano"

	// Supplemental chains (see SPEC_FULL.md §4.3).
	Zilliqa ChainType = "zilliqa"
	Harmony ChainType = "harmony"
)

// AddressFormat tags how a chain's address string is built, mirroring the
// tagged-variant shape SPEC_FULL.md's DATA MODEL names.
type AddressFormat struct {
	Kind string `json:"kind"` // "bitcoin" | "ethereum" | "base58" | "bech32" | "bech32m" | "custom"
	Tag  string `json:"tag"`  // prefix / hrp / version, for documentation and /wallet/types
}

// ChainInfo is the static per-chain metadata record.
type ChainInfo struct {
	ChainType     ChainType     `json:"chainType"`
	Name          string        `json:"name"`
	Symbol        string        `json:"symbol"`
	CoinType      uint32        `json:"coinType"`
	Decimals      int           `json:"decimals"`
	AddressFormat AddressFormat `json:"addressFormat"`
	Scheme        Scheme        `json:"-"`
	Category      string        `json:"category"` // "core" | "supplemental"
}

// MarshalJSON includes Scheme's string form (ed25519/secp256k1) instead of
// its underlying int, since API consumers shouldn't depend on enum order.
func (c ChainInfo) MarshalJSON() ([]byte, error) {
	type alias ChainInfo
	return json.Marshal(struct {
		alias
		Scheme string `json:"scheme"`
	}{alias(c), c.Scheme.String()})
}
