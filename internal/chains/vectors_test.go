package chains

import (
	"strings"
	"testing"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/mnemonic"
)

// fixedVectorSeed is the BIP-39 seed for
// "abandon abandon abandon abandon abandon abandon abandon abandon abandon
// abandon abandon about" with an empty passphrase — the fixed test vector
// the BTC Legacy/SegWit/Taproot and Ethereum drivers are pinned against.
func fixedVectorSeed(t *testing.T) []byte {
	t.Helper()
	const phrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	seed, err := mnemonic.ToSeedUnchecked(phrase, "")
	if err != nil {
		t.Fatalf("ToSeedUnchecked: %v", err)
	}
	return seed
}

func testRegistry() *chainregistry.Registry {
	reg := chainregistry.New()
	registry = make(map[chainregistry.ChainType]Driver)
	Init(reg)
	return reg
}

func TestFixedVectorBTCLegacy(t *testing.T) {
	testRegistry()
	d, ok := Get(chainregistry.BTCLegacy)
	if !ok {
		t.Fatal("BTCLegacy driver not registered")
	}
	addr, err := d.GenerateAddress(fixedVectorSeed(t), 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	want := "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA"
	if addr.Address != want {
		t.Fatalf("address = %s, want %s", addr.Address, want)
	}
	if addr.DerivationPath != "m/44'/0'/0'/0/0" {
		t.Fatalf("path = %s, want m/44'/0'/0'/0/0", addr.DerivationPath)
	}
}

func TestFixedVectorBTCSegwit(t *testing.T) {
	testRegistry()
	d, ok := Get(chainregistry.BTCSegwit)
	if !ok {
		t.Fatal("BTCSegwit driver not registered")
	}
	addr, err := d.GenerateAddress(fixedVectorSeed(t), 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	want := "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"
	if addr.Address != want {
		t.Fatalf("address = %s, want %s", addr.Address, want)
	}
}

func TestFixedVectorBTCTaproot(t *testing.T) {
	testRegistry()
	d, ok := Get(chainregistry.BTCTaproot)
	if !ok {
		t.Fatal("BTCTaproot driver not registered")
	}
	addr, err := d.GenerateAddress(fixedVectorSeed(t), 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	want := "bc1pej9yh3jd39aam30mctm8paaghg9nsemezpk0zg3udlza0nt0cy2sqvps98"
	if addr.Address != want {
		t.Fatalf("address = %s, want %s", addr.Address, want)
	}
}

func TestFixedVectorEthereum(t *testing.T) {
	testRegistry()
	d, ok := Get(chainregistry.Ethereum)
	if !ok {
		t.Fatal("Ethereum driver not registered")
	}
	addr, err := d.GenerateAddress(fixedVectorSeed(t), 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	want := "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	if addr.Address != want {
		t.Fatalf("address = %s, want %s", addr.Address, want)
	}
}

func TestFixedVectorTRONShape(t *testing.T) {
	testRegistry()
	d, ok := Get(chainregistry.TRON)
	if !ok {
		t.Fatal("TRON driver not registered")
	}
	addr, err := d.GenerateAddress(fixedVectorSeed(t), 0)
	if err != nil {
		t.Fatalf("GenerateAddress: %v", err)
	}
	if !strings.HasPrefix(addr.Address, "T") {
		t.Fatalf("address %q does not start with T", addr.Address)
	}
	if len(addr.Address) != 34 {
		t.Fatalf("address length = %d, want 34", len(addr.Address))
	}
	decoded, ok := encoding.Base58CheckDecode(addr.Address)
	if !ok {
		t.Fatal("address failed base58check decode")
	}
	if decoded[0] != 0x41 {
		t.Fatalf("version byte = %#x, want 0x41", decoded[0])
	}
}

func TestFixedVectorBatchOrdering(t *testing.T) {
	testRegistry()
	legacy, _ := Get(chainregistry.BTCLegacy)
	segwit, _ := Get(chainregistry.BTCSegwit)
	taproot, _ := Get(chainregistry.BTCTaproot)
	eth, _ := Get(chainregistry.Ethereum)

	seed := fixedVectorSeed(t)
	var results []string
	for _, d := range []Driver{legacy, segwit, taproot} {
		for _, idx := range []uint32{0, 1} {
			addr, err := d.GenerateAddress(seed, idx)
			if err != nil {
				t.Fatalf("GenerateAddress: %v", err)
			}
			results = append(results, addr.Address)
		}
	}
	for _, idx := range []uint32{0, 1} {
		addr, err := eth.GenerateAddress(seed, idx)
		if err != nil {
			t.Fatalf("GenerateAddress: %v", err)
		}
		results = append(results, addr.Address)
	}
	if len(results) != 8 {
		t.Fatalf("expected 8 records (3*2 BTC variants + 2 ETH), got %d", len(results))
	}
	if results[0] != "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA" {
		t.Fatalf("first record = %s, want the pinned BTC Legacy index-0 address", results[0])
	}
}
