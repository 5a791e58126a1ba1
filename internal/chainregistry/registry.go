package chainregistry

import "strings"

// Registry is the append-only, purely declarative chain table: a lookup by
// ChainType plus the one-symbol-to-many-chains expansion. Grounded on
// coinregistry.Registry's {coins []CoinMetadata, symbolIndex} shape
// (teacher), generalized so one symbol maps to a *set* of chain types
// instead of one coin.
type Registry struct {
	infos    map[ChainType]ChainInfo
	order    []ChainType
	bySymbol map[string][]ChainType
}

// New builds the registry with every core and supplemental chain.
func New() *Registry {
	r := &Registry{
		infos:    make(map[ChainType]ChainInfo),
		bySymbol: make(map[string][]ChainType),
	}

	r.add(ChainInfo{ChainType: BTCLegacy, Name: "Bitcoin (Legacy)", Symbol: "BTC", CoinType: 0, Decimals: 8, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bitcoin", Tag: "1"}})
	r.add(ChainInfo{ChainType: BTCSegwit, Name: "Bitcoin (SegWit)", Symbol: "BTC", CoinType: 0, Decimals: 8, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "bc1q"}})
	r.add(ChainInfo{ChainType: BTCTaproot, Name: "Bitcoin (Taproot)", Symbol: "BTC", CoinType: 0, Decimals: 8, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32m", Tag: "bc1p"}})

	r.add(ChainInfo{ChainType: Ethereum, Name: "Ethereum", Symbol: "ETH", CoinType: 60, Decimals: 18, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "ethereum", Tag: "0x"}})
	r.add(ChainInfo{ChainType: BaseChain, Name: "Base", Symbol: "ETH", CoinType: 60, Decimals: 18, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "ethereum", Tag: "0x"}})
	r.add(ChainInfo{ChainType: Arbitrum, Name: "Arbitrum One", Symbol: "ETH", CoinType: 60, Decimals: 18, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "ethereum", Tag: "0x"}})
	r.add(ChainInfo{ChainType: Optimism, Name: "Optimism", Symbol: "ETH", CoinType: 60, Decimals: 18, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "ethereum", Tag: "0x"}})
	r.add(ChainInfo{ChainType: Polygon, Name: "Polygon", Symbol: "MATIC", CoinType: 60, Decimals: 18, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "ethereum", Tag: "0x"}})
	r.add(ChainInfo{ChainType: Avalanche, Name: "Avalanche C-Chain", Symbol: "AVAX", CoinType: 60, Decimals: 18, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "ethereum", Tag: "0x"}})

	r.add(ChainInfo{ChainType: XRP, Name: "XRP Ledger", Symbol: "XRP", CoinType: 144, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: "r"}})
	r.add(ChainInfo{ChainType: TRON, Name: "TRON", Symbol: "TRX", CoinType: 195, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: "T"}})
	r.add(ChainInfo{ChainType: Dogecoin, Name: "Dogecoin", Symbol: "DOGE", CoinType: 3, Decimals: 8, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: "D"}})
	r.add(ChainInfo{ChainType: Solana, Name: "Solana", Symbol: "SOL", CoinType: 501, Decimals: 9, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: ""}})
	r.add(ChainInfo{ChainType: Sui, Name: "Sui", Symbol: "SUI", CoinType: 784, Decimals: 9, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: "0x"}})
	r.add(ChainInfo{ChainType: NEAR, Name: "NEAR Protocol", Symbol: "NEAR", CoinType: 397, Decimals: 24, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: ""}})
	r.add(ChainInfo{ChainType: Stellar, Name: "Stellar", Symbol: "XLM", CoinType: 148, Decimals: 7, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: "G"}})

	r.add(ChainInfo{ChainType: CosmosHub, Name: "Cosmos Hub", Symbol: "ATOM", CoinType: 118, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "cosmos"}})
	r.add(ChainInfo{ChainType: Osmosis, Name: "Osmosis", Symbol: "OSMO", CoinType: 118, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "osmo"}})
	r.add(ChainInfo{ChainType: Juno, Name: "Juno", Symbol: "JUNO", CoinType: 118, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "juno"}})
	r.add(ChainInfo{ChainType: Secret, Name: "Secret Network", Symbol: "SCRT", CoinType: 529, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "secret"}})
	r.add(ChainInfo{ChainType: Akash, Name: "Akash Network", Symbol: "AKT", CoinType: 118, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "akash"}})
	r.add(ChainInfo{ChainType: Sei, Name: "Sei", Symbol: "SEI", CoinType: 118, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "sei"}})
	r.add(ChainInfo{ChainType: Celestia, Name: "Celestia", Symbol: "TIA", CoinType: 118, Decimals: 6, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "celestia"}})
	r.add(ChainInfo{ChainType: Injective, Name: "Injective", Symbol: "INJ", CoinType: 60, Decimals: 18, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "inj"}})

	r.add(ChainInfo{ChainType: Tezos, Name: "Tezos", Symbol: "XTZ", CoinType: 1729, Decimals: 6, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: "tz1"}})
	r.add(ChainInfo{ChainType: Filecoin, Name: "Filecoin", Symbol: "FIL", CoinType: 461, Decimals: 18, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: "f1"}})
	r.add(ChainInfo{ChainType: Polkadot, Name: "Polkadot", Symbol: "DOT", CoinType: 354, Decimals: 10, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: "ss58:0"}})
	r.add(ChainInfo{ChainType: Kusama, Name: "Kusama", Symbol: "KSM", CoinType: 434, Decimals: 12, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: "ss58:2"}})
	r.add(ChainInfo{ChainType: Algorand, Name: "Algorand", Symbol: "ALGO", CoinType: 283, Decimals: 6, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: ""}})
	r.add(ChainInfo{ChainType: Hedera, Name: "Hedera", Symbol: "HBAR", CoinType: 3030, Decimals: 8, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: "0.0."}})
	r.add(ChainInfo{ChainType: ICP, Name: "Internet Computer", Symbol: "ICP", CoinType: 223, Decimals: 8, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: ""}})
	r.add(ChainInfo{ChainType: EOS, Name: "EOS", Symbol: "EOS", CoinType: 194, Decimals: 4, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: "EOS"}})
	r.add(ChainInfo{ChainType: Mina, Name: "Mina", Symbol: "MINA", CoinType: 12586, Decimals: 9, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "base58", Tag: "B62"}})
	r.add(ChainInfo{ChainType: TON, Name: "TON", Symbol: "TON", CoinType: 607, Decimals: 9, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: "EQ"}})
	r.add(ChainInfo{ChainType: Monero, Name: "Monero", Symbol: "XMR", CoinType: 128, Decimals: 12, Scheme: Secp256k1, Category: "core", AddressFormat: AddressFormat{Kind: "custom", Tag: "4"}})
	r.add(ChainInfo{ChainType: Cardano, Name: "Cardano", Symbol: "ADA", CoinType: 1815, Decimals: 6, Scheme: Ed25519, Category: "core", AddressFormat: AddressFormat{Kind: "bech32", Tag: "addr"}})

	r.add(ChainInfo{ChainType: Zilliqa, Name: "Zilliqa", Symbol: "ZIL", CoinType: 313, Decimals: 12, Scheme: Secp256k1, Category: "supplemental", AddressFormat: AddressFormat{Kind: "bech32", Tag: "zil"}})
	r.add(ChainInfo{ChainType: Harmony, Name: "Harmony", Symbol: "ONE", CoinType: 1023, Decimals: 18, Scheme: Secp256k1, Category: "supplemental", AddressFormat: AddressFormat{Kind: "bech32", Tag: "one"}})

	return r
}

func (r *Registry) add(info ChainInfo) {
	r.infos[info.ChainType] = info
	r.order = append(r.order, info.ChainType)
	symbol := strings.ToUpper(info.Symbol)
	r.bySymbol[symbol] = append(r.bySymbol[symbol], info.ChainType)
}

// ChainInfoFor returns the registry entry for a ChainType.
func (r *Registry) ChainInfoFor(ct ChainType) (ChainInfo, bool) {
	info, ok := r.infos[ct]
	return info, ok
}

// ChainTypesBySymbol returns every chain a ticker expands to, in
// registration order. Unknown symbols return nil.
func (r *Registry) ChainTypesBySymbol(symbol string) []ChainType {
	return r.bySymbol[strings.ToUpper(symbol)]
}

// All returns every registered chain's metadata in registration order.
func (r *Registry) All() []ChainInfo {
	out := make([]ChainInfo, 0, len(r.order))
	for _, ct := range r.order {
		out = append(out, r.infos[ct])
	}
	return out
}
