package chains

import (
	"testing"

	"github.com/arcsign/derive/internal/chainregistry"
)

// checksummedChains lists every ChainType whose ValidateAddress decodes
// and verifies an embedded checksum rather than only checking a prefix or
// length. Per the address-validation contract, a one-character mutation
// of a freshly generated address must make ValidateAddress false for all
// of these.
var checksummedChains = []chainregistry.ChainType{
	chainregistry.BTCLegacy,
	chainregistry.BTCSegwit,
	chainregistry.BTCTaproot,
	chainregistry.Dogecoin,
	chainregistry.XRP,
	chainregistry.TRON,
	chainregistry.Ethereum,
	chainregistry.BaseChain,
	chainregistry.Arbitrum,
	chainregistry.Optimism,
	chainregistry.Polygon,
	chainregistry.Avalanche,
	chainregistry.CosmosHub,
	chainregistry.Osmosis,
	chainregistry.Juno,
	chainregistry.Secret,
	chainregistry.Akash,
	chainregistry.Sei,
	chainregistry.Celestia,
	chainregistry.Injective,
	chainregistry.Tezos,
	chainregistry.Filecoin,
	chainregistry.Polkadot,
	chainregistry.Kusama,
	chainregistry.Algorand,
	chainregistry.ICP,
	chainregistry.EOS,
	chainregistry.TON,
	chainregistry.Monero,
	chainregistry.Cardano,
	chainregistry.Zilliqa,
	chainregistry.Harmony,
}

// mutateAddress flips the character at i to something else in a small
// alphanumeric set, returning the first candidate that actually differs
// from the original character.
func mutateAddress(addr string, i int) string {
	const candidates = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orig := addr[i]
	for j := 0; j < len(candidates); j++ {
		if candidates[j] != orig {
			return addr[:i] + string(candidates[j]) + addr[i+1:]
		}
	}
	return addr
}

// TestChecksumMutationIsRejected generates one address per checksummed
// chain, then flips every single character in turn, asserting
// ValidateAddress rejects every mutation — the testable property that a
// one-character mutation of the address makes it invalid for chains with
// a checksum.
func TestChecksumMutationIsRejected(t *testing.T) {
	testRegistry()
	seed := seedFixture(t)
	for _, ct := range checksummedChains {
		d, ok := Get(ct)
		if !ok {
			t.Fatalf("%s: no driver registered", ct)
		}
		addr, err := d.GenerateAddress(seed, 0)
		if err != nil {
			t.Fatalf("%s: GenerateAddress: %v", ct, err)
		}
		if !d.ValidateAddress(addr.Address) {
			t.Fatalf("%s: generated address %q did not validate before mutation", ct, addr.Address)
		}
		for i := range addr.Address {
			mutated := mutateAddress(addr.Address, i)
			if d.ValidateAddress(mutated) {
				t.Errorf("%s: mutated address %q (from %q) still validated", ct, mutated, addr.Address)
			}
		}
	}
}
