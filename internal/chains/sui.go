package chains

import (
	"encoding/hex"
	"fmt"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// suiDriver has no teacher counterpart — Sui wasn't in the retrieved pack
// (only original_source/src/chains/sui.rs). Built from SPEC_FULL.md's
// contract directly: a fixed all-hardened path (index ignored, per the
// resolved Open Question in §9) and a Blake2b-256 "flag-byte || pubkey"
// address scheme, using the same slip10engine/Blake2b helpers every other
// Ed25519 chain here uses.
type suiDriver struct{ baseInfo }

func newSuiDriver(info chainregistry.ChainInfo) Driver {
	return &suiDriver{baseInfo{info}}
}

// suiFixedPath is m/44'/784'/0'/0'/0', constant regardless of index.
func suiFixedPath() []derivepath.Segment {
	return derivepath.HardenedSegments(44, 784, 0, 0, 0)
}

func (d *suiDriver) DerivationPath(index uint32) string {
	return derivepath.Format(suiFixedPath())
}

func (d *suiDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pub, err := ed25519Keys(seed, suiFixedPath())
	if err != nil {
		return wallet.Address{}, err
	}
	flagged := append([]byte{0x00}, pub...)
	hash := encoding.Blake2b256(flagged)
	addr := fmt.Sprintf("0x%x", hash)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pub), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *suiDriver) ValidateAddress(addr string) bool {
	if len(addr) != 66 || addr[:2] != "0x" {
		return false
	}
	_, err := hex.DecodeString(addr[2:])
	return err == nil
}

func (d *suiDriver) ExampleAddress() string {
	return "0x7a9c1dba2f3e7b4c5a6d8f0e1c2b3a4d5e6f708192a3b4c5d6e7f8091a2b3c4d"
}
