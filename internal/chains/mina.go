package chains

import (
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// minaDriver keeps the simplified, non-CIP/non-interoperable SHA-256
// scheme SPEC_FULL.md §9 calls out explicitly rather than Mina's real
// Poseidon-based address derivation, which no library in the retrieved
// pack implements.
type minaDriver struct{ baseInfo }

func newMinaDriver(info chainregistry.ChainInfo) Driver {
	return &minaDriver{baseInfo{info}}
}

func (d *minaDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 12586, 0, 0, index).String()
}

func (d *minaDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 12586, index)
	priv, pubCompressed, _, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	hash := encoding.SHA256(pubCompressed)
	addr := "B62" + encoding.Base58Encode(hash[0:20])
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *minaDriver) ValidateAddress(addr string) bool {
	return len(addr) > 3 && addr[:3] == "B62"
}

func (d *minaDriver) ExampleAddress() string {
	return "B62qrPzAAJswQENtmgQbTBCoVNPmSGhLWxYf9rQvSCAVfz9YvrYXzF1"
}
