package chains

import (
	"strings"
	"testing"

	"github.com/arcsign/derive/internal/chainregistry"
)

func seedFixture(t *testing.T) []byte {
	t.Helper()
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i*7 + 3)
	}
	return seed
}

func TestAllDriversRegistered(t *testing.T) {
	reg := testRegistry()
	for _, info := range reg.All() {
		if _, ok := Get(info.ChainType); !ok {
			t.Errorf("no driver registered for %s", info.ChainType)
		}
	}
}

func TestDriverReportedInfoMatchesRegistry(t *testing.T) {
	reg := testRegistry()
	for _, info := range reg.All() {
		d, _ := Get(info.ChainType)
		if d.Info().ChainType != info.ChainType {
			t.Errorf("%s: driver Info().ChainType = %s, want %s", info.ChainType, d.Info().ChainType, info.ChainType)
		}
		if d.ChainType() != info.ChainType {
			t.Errorf("%s: ChainType() = %s, want %s", info.ChainType, d.ChainType(), info.ChainType)
		}
	}
}

func TestEveryDriverGeneratesAndValidates(t *testing.T) {
	testRegistry()
	seed := seedFixture(t)
	for _, d := range All() {
		addr, err := d.GenerateAddress(seed, 0)
		if err != nil {
			t.Fatalf("%s: GenerateAddress: %v", d.ChainType(), err)
		}
		if addr.Address == "" {
			t.Errorf("%s: empty address", d.ChainType())
		}
		if !d.ValidateAddress(addr.Address) {
			t.Errorf("%s: generated address %q failed its own ValidateAddress", d.ChainType(), addr.Address)
		}
		if d.ExampleAddress() == "" {
			t.Errorf("%s: empty example address", d.ChainType())
		}
	}
}

func TestDriverGenerateIsDeterministic(t *testing.T) {
	testRegistry()
	seed := seedFixture(t)
	for _, d := range All() {
		a1, err := d.GenerateAddress(seed, 2)
		if err != nil {
			t.Fatalf("%s: GenerateAddress: %v", d.ChainType(), err)
		}
		a2, err := d.GenerateAddress(seed, 2)
		if err != nil {
			t.Fatalf("%s: GenerateAddress: %v", d.ChainType(), err)
		}
		if a1.Address != a2.Address {
			t.Errorf("%s: non-deterministic address: %q vs %q", d.ChainType(), a1.Address, a2.Address)
		}
	}
}

func TestSuiIgnoresIndex(t *testing.T) {
	testRegistry()
	d, _ := Get(chainregistry.Sui)
	seed := seedFixture(t)
	a0, err := d.GenerateAddress(seed, 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	a7, err := d.GenerateAddress(seed, 7)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	if a0.Address != a7.Address {
		t.Fatalf("Sui address must be index-independent: %q vs %q", a0.Address, a7.Address)
	}
}

func TestSolanaFourLevelAllHardenedPath(t *testing.T) {
	testRegistry()
	d, _ := Get(chainregistry.Solana)
	path := d.DerivationPath(3)
	if !strings.HasPrefix(path, "m/44'/501'/3'/0'") {
		t.Fatalf("Solana path = %q, want four-level all-hardened form", path)
	}
}

func TestPolkadotKusamaDifferentNetworksDifferentAddresses(t *testing.T) {
	testRegistry()
	dot, _ := Get(chainregistry.Polkadot)
	ksm, _ := Get(chainregistry.Kusama)
	seed := seedFixture(t)
	dotAddr, err := dot.GenerateAddress(seed, 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	ksmAddr, err := ksm.GenerateAddress(seed, 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	if dotAddr.Address == ksmAddr.Address {
		t.Fatal("Polkadot and Kusama must encode to different SS58 addresses")
	}
}

func TestEVMChainsShareAddressAlgorithm(t *testing.T) {
	testRegistry()
	seed := seedFixture(t)
	eth, _ := Get(chainregistry.Ethereum)
	base, _ := Get(chainregistry.BaseChain)
	ethAddr, err := eth.GenerateAddress(seed, 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	baseAddr, err := base.GenerateAddress(seed, 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	if ethAddr.Address != baseAddr.Address {
		t.Fatalf("Ethereum and Base must derive the same address at the same path: %q vs %q", ethAddr.Address, baseAddr.Address)
	}
}
