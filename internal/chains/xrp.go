package chains

import (
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// xrpDriver fixes the overflow bug in internal/services/address/ripple.go
// (teacher) by routing through encoding.RippleBase58CheckEncode, which
// uses math/big instead of a uint64 accumulator.
type xrpDriver struct{ baseInfo }

func newXRPDriver(info chainregistry.ChainInfo) Driver {
	return &xrpDriver{baseInfo{info}}
}

func (d *xrpDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 144, 0, 0, index).String()
}

func (d *xrpDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 144, index)
	priv, pubCompressed, _, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	hash160 := encoding.Hash160(pubCompressed)
	addr := encoding.RippleBase58CheckEncode([]byte{0x00}, hash160)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *xrpDriver) ValidateAddress(addr string) bool {
	body, ok := encoding.RippleBase58CheckDecode(addr)
	return ok && len(body) == 21 && body[0] == 0x00
}

func (d *xrpDriver) ExampleAddress() string { return "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh" }
