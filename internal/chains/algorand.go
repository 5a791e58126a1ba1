package chains

import (
	"bytes"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// algorandDriver replaces internal/services/address/algorand.go (teacher),
// which hashed with plain SHA-256 and hex-formatted the result instead of
// SHA-512/256 + real Base32Upper.
type algorandDriver struct{ baseInfo }

func newAlgorandDriver(info chainregistry.ChainInfo) Driver {
	return &algorandDriver{baseInfo{info}}
}

func (d *algorandDriver) path(index uint32) []derivepath.Segment {
	return derivepath.HardenedSegments(44, 283, 0, 0, index)
}

func (d *algorandDriver) DerivationPath(index uint32) string {
	return derivepath.Format(d.path(index))
}

func (d *algorandDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pub, err := ed25519Keys(seed, d.path(index))
	if err != nil {
		return wallet.Address{}, err
	}
	checksum := encoding.SHA512_256(pub)
	body := append(append([]byte{}, pub...), checksum[28:32]...)
	addr := encoding.Base32UpperNoPad(body)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pub), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *algorandDriver) ValidateAddress(addr string) bool {
	if len(addr) != 58 {
		return false
	}
	body, err := encoding.Base32UpperNoPadDecode(addr)
	if err != nil || len(body) != 36 {
		return false
	}
	pub, checksum := body[:32], body[32:36]
	want := encoding.SHA512_256(pub)
	return bytes.Equal(checksum, want[28:32])
}

func (d *algorandDriver) ExampleAddress() string {
	return "RIMXP3AKSYFG25BFLFKNL6E2Q4HE7NSXLVFYXBZF6VYEAIAL5UY3L2UMHA"
}
