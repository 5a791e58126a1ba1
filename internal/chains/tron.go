package chains

import (
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// tronDriver is grounded directly on internal/services/address/tron.go
// (teacher), whose Keccak256-then-0x41-prefix-then-Base58Check pattern was
// already correct; this just rebuilds it against the shared key helpers.
type tronDriver struct{ baseInfo }

func newTronDriver(info chainregistry.ChainInfo) Driver {
	return &tronDriver{baseInfo{info}}
}

func (d *tronDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 195, 0, 0, index).String()
}

func (d *tronDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 195, index)
	priv, pubCompressed, pubUncompressed, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	hash := encoding.Keccak256(pubUncompressed[1:])
	addr := encoding.Base58CheckEncode([]byte{0x41}, hash[12:])
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *tronDriver) ValidateAddress(addr string) bool {
	body, ok := encoding.Base58CheckDecode(addr)
	return ok && len(body) == 21 && body[0] == 0x41
}

func (d *tronDriver) ExampleAddress() string { return "TLsV52sRDL79HXGGm9yzwKibb6BeruhUzy" }
