package chains

import (
	"encoding/base64"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// tonDriver has no teacher counterpart. Built from SPEC_FULL.md's
// simplified contract — no tag byte the way a real TON raw-address
// wrapper carries, just "EQ" plus a Base64URL blob — using the same
// CRC16-XMODEM checksum Stellar's strkey uses, here big-endian per TON's
// convention rather than little-endian.
type tonDriver struct{ baseInfo }

func newTONDriver(info chainregistry.ChainInfo) Driver {
	return &tonDriver{baseInfo{info}}
}

func (d *tonDriver) path(index uint32) []derivepath.Segment {
	return derivepath.HardenedSegments(44, 607, 0, 0, index)
}

func (d *tonDriver) DerivationPath(index uint32) string {
	return derivepath.Format(d.path(index))
}

func (d *tonDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pub, err := ed25519Keys(seed, d.path(index))
	if err != nil {
		return wallet.Address{}, err
	}
	body := append([]byte{0x00}, pub...)
	crc := encoding.CRC16XModem(body)
	body = append(body, byte(crc>>8), byte(crc))
	addr := "EQ" + base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(body)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pub), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *tonDriver) ValidateAddress(addr string) bool {
	if len(addr) <= 2 || addr[:2] != "EQ" {
		return false
	}
	body, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(addr[2:])
	if err != nil || len(body) != 35 {
		return false
	}
	payload, crcBytes := body[:33], body[33:35]
	crc := encoding.CRC16XModem(payload)
	return crcBytes[0] == byte(crc>>8) && crcBytes[1] == byte(crc)
}

func (d *tonDriver) ExampleAddress() string {
	return "EQCD39VS5jcptHL8vMjEXrzGaRcCVYto7HUn4bpAOg8xqB2N"
}
