package chains

import (
	"bytes"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// filecoinDriver replaces internal/services/address/filecoin.go (teacher),
// which hashed with plain Blake2b-256 truncated to 20 bytes and
// hex-formatted the result as "f1%x" — not a real f1 (secp256k1 protocol)
// address. This builds the actual payload/checksum/Base32Lower scheme.
type filecoinDriver struct{ baseInfo }

func newFilecoinDriver(info chainregistry.ChainInfo) Driver {
	return &filecoinDriver{baseInfo{info}}
}

func (d *filecoinDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 461, 0, 0, index).String()
}

func (d *filecoinDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 461, index)
	priv, pubCompressed, pubUncompressed, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	payload := encoding.Blake2bSize(pubUncompressed, 20)
	checksumInput := append([]byte{0x01}, payload...)
	checksum := encoding.Blake2bSize(checksumInput, 4)
	addr := "f1" + encoding.Base32LowerNoPad(append(payload, checksum...))
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *filecoinDriver) ValidateAddress(addr string) bool {
	if len(addr) < 3 || addr[:2] != "f1" {
		return false
	}
	body, err := encoding.Base32LowerNoPadDecode(addr[2:])
	if err != nil || len(body) != 24 {
		return false
	}
	payload, checksum := body[:20], body[20:24]
	want := encoding.Blake2bSize(append([]byte{0x01}, payload...), 4)
	return bytes.Equal(checksum, want)
}

func (d *filecoinDriver) ExampleAddress() string {
	return "f1abjxpjxbmtfkoqqnpizzqqiejctxqqhlfqzfvla"
}
