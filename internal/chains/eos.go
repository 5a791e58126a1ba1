package chains

import (
	"bytes"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// eosDriver has no teacher counterpart. Built from SPEC_FULL.md's
// contract: EOS's "K1"-suffixed RIPEMD160 checksum over plain Base58 (no
// Base58Check double-SHA256 step), grounded on the same secp256k1/Base58
// primitives the Bitcoin-family drivers use.
type eosDriver struct{ baseInfo }

func newEOSDriver(info chainregistry.ChainInfo) Driver {
	return &eosDriver{baseInfo{info}}
}

func (d *eosDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 194, 0, 0, index).String()
}

func (d *eosDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 194, index)
	priv, pubCompressed, _, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	checksumInput := append(append([]byte{}, pubCompressed...), []byte("K1")...)
	checksum := encoding.RIPEMD160(checksumInput)
	body := append(append([]byte{}, pubCompressed...), checksum[0:4]...)
	addr := "EOS" + encoding.Base58Encode(body)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *eosDriver) ValidateAddress(addr string) bool {
	if len(addr) <= 3 || addr[:3] != "EOS" {
		return false
	}
	body := encoding.Base58Decode(addr[3:])
	if len(body) != 37 {
		return false
	}
	pubCompressed, checksum := body[:33], body[33:37]
	want := encoding.RIPEMD160(append(append([]byte{}, pubCompressed...), []byte("K1")...))
	return bytes.Equal(checksum, want[0:4])
}

func (d *eosDriver) ExampleAddress() string {
	return "EOS6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"
}
