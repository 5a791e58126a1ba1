// Package chains holds one driver per ChainType, each a pure
// (seed, index) -> wallet.Address function plus the small capability set
// SPEC_FULL.md §4.6 names: derivation_path, generate_address,
// validate_address, example_address. Drivers are tagged variants
// dispatched through a registry keyed by ChainType, the re-architecture
// SPEC_FULL.md §9 calls for — not a class hierarchy grounded on one
// shared AddressService (the shape internal/services/address/service.go
// (teacher) used).
package chains

import (
	"fmt"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/wallet"
)

// Driver is the per-chain capability set every chain implements.
type Driver interface {
	ChainType() chainregistry.ChainType
	Info() chainregistry.ChainInfo
	DerivationPath(index uint32) string
	GenerateAddress(seed []byte, index uint32) (wallet.Address, error)
	ValidateAddress(addr string) bool
	ExampleAddress() string
}

var registry = make(map[chainregistry.ChainType]Driver)

func register(d Driver) {
	registry[d.ChainType()] = d
}

// Init builds and registers every chain driver, pulling each one's
// ChainInfo from reg so the registry's invariant — "the reported
// chain_info equals the registry entry for chain_type" — holds by
// construction rather than by keeping two literal copies in sync. Safe to
// call once at process startup; the registry it populates is read-only
// afterwards (SPEC_FULL.md's optional immutable driver cache).
func Init(reg *chainregistry.Registry) {
	info := func(ct chainregistry.ChainType) chainregistry.ChainInfo {
		i, ok := reg.ChainInfoFor(ct)
		if !ok {
			panic(fmt.Sprintf("chains: no registry entry for %s", ct))
		}
		return i
	}
	for _, d := range bitcoinDrivers(info) {
		register(d)
	}
	for _, d := range evmDrivers(info) {
		register(d)
	}
	register(newXRPDriver(info(chainregistry.XRP)))
	register(newTronDriver(info(chainregistry.TRON)))
	register(newSolanaDriver(info(chainregistry.Solana)))
	register(newSuiDriver(info(chainregistry.Sui)))
	register(newNearDriver(info(chainregistry.NEAR)))
	register(newStellarDriver(info(chainregistry.Stellar)))
	for _, d := range cosmosDrivers(info) {
		register(d)
	}
	register(newTezosDriver(info(chainregistry.Tezos)))
	register(newFilecoinDriver(info(chainregistry.Filecoin)))
	register(newPolkadotDriver(info(chainregistry.Polkadot), 0))
	register(newPolkadotDriverAs(info(chainregistry.Kusama), chainregistry.Kusama, 2))
	register(newAlgorandDriver(info(chainregistry.Algorand)))
	register(newHederaDriver(info(chainregistry.Hedera)))
	register(newICPDriver(info(chainregistry.ICP)))
	register(newEOSDriver(info(chainregistry.EOS)))
	register(newMinaDriver(info(chainregistry.Mina)))
	register(newTONDriver(info(chainregistry.TON)))
	register(newMoneroDriver(info(chainregistry.Monero)))
	register(newCardanoDriver(info(chainregistry.Cardano)))
	register(newZilliqaDriver(info(chainregistry.Zilliqa)))
	register(newHarmonyDriver(info(chainregistry.Harmony)))
}

// Get looks up a driver by ChainType.
func Get(ct chainregistry.ChainType) (Driver, bool) {
	d, ok := registry[ct]
	return d, ok
}

// All returns every registered driver, for /wallet/types metadata.
func All() []Driver {
	out := make([]Driver, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	return out
}
