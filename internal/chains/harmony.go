package chains

import (
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// harmonyDriver is grounded on internal/services/address/harmony.go
// (teacher) almost verbatim: identical Ethereum-style key derivation, the
// "one" Bech32 prefix instead of 0x hex. Coin type 1023, not 60, per the
// teacher's own note that MetaMask's coin-60 derivation produces a
// different address than Harmony's native wallets.
type harmonyDriver struct{ baseInfo }

func newHarmonyDriver(info chainregistry.ChainInfo) Driver {
	return &harmonyDriver{baseInfo{info}}
}

func (d *harmonyDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 1023, 0, 0, index).String()
}

func (d *harmonyDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 1023, index)
	priv, pubCompressed, pubUncompressed, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	hash := encoding.Keccak256(pubUncompressed[1:])
	addr, err := encoding.Bech32Encode("one", hash[12:])
	if err != nil {
		return wallet.Address{}, err
	}
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *harmonyDriver) ValidateAddress(addr string) bool {
	payload, err := encoding.Bech32Decode("one", addr)
	return err == nil && len(payload) == 20
}

func (d *harmonyDriver) ExampleAddress() string {
	return "one1pdv9lrdwl0rg5vglh4xtyrv3wjk3wsqket7zxy"
}
