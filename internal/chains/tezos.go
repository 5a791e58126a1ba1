package chains

import (
	"blockwatch.cc/tzgo/tezos"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/wallet"
)

// tezosDriver follows internal/services/address/tezos.go (teacher)
// closely — it was already doing real SLIP-10 Ed25519 derivation and
// real tzgo Blake2b/Base58Check encoding, just over a one-level "m/0'"
// path layered under a BIP32 key. This derives the full SLIP-0010 path
// directly against the mnemonic seed instead.
type tezosDriver struct{ baseInfo }

func newTezosDriver(info chainregistry.ChainInfo) Driver {
	return &tezosDriver{baseInfo{info}}
}

func (d *tezosDriver) path(index uint32) []derivepath.Segment {
	return derivepath.HardenedSegments(44, 1729, 0, 0, index)
}

func (d *tezosDriver) DerivationPath(index uint32) string {
	return derivepath.Format(d.path(index))
}

func (d *tezosDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pub, err := ed25519Keys(seed, d.path(index))
	if err != nil {
		return wallet.Address{}, err
	}
	tzKey := tezos.NewKey(tezos.KeyTypeEd25519, pub)
	addr := tzKey.Address().String()
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pub), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *tezosDriver) ValidateAddress(addr string) bool {
	a, err := tezos.ParseAddress(addr)
	return err == nil && len(addr) == 36 && addr[:3] == "tz1" && a.String() == addr
}

func (d *tezosDriver) ExampleAddress() string { return "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb" }
