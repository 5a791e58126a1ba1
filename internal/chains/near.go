package chains

import (
	"encoding/hex"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/wallet"
)

// nearDriver replaces internal/services/address/near.go (teacher), which
// faked a "64 hex char" public key by duplicating secp256k1 bytes. A real
// NEAR implicit account is just the lowercase hex of an actual Ed25519
// public key, so once ed25519Keys produces one this needs no further
// encoding step at all.
type nearDriver struct{ baseInfo }

func newNearDriver(info chainregistry.ChainInfo) Driver {
	return &nearDriver{baseInfo{info}}
}

func (d *nearDriver) path(index uint32) []derivepath.Segment {
	return derivepath.HardenedSegments(44, 397, 0, 0, index)
}

func (d *nearDriver) DerivationPath(index uint32) string {
	return derivepath.Format(d.path(index))
}

func (d *nearDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pub, err := ed25519Keys(seed, d.path(index))
	if err != nil {
		return wallet.Address{}, err
	}
	addr := hex.EncodeToString(pub)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pub), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *nearDriver) ValidateAddress(addr string) bool {
	if len(addr) != 64 {
		return false
	}
	_, err := hex.DecodeString(addr)
	return err == nil
}

func (d *nearDriver) ExampleAddress() string {
	return "98793cd91a3f870fb126f66285808c7e094afcfc4eda8a970f6648cdf0dbd6de"
}
