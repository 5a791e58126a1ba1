package chains

import (
	"bytes"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// moneroDriver replaces internal/services/address/monero.go (teacher),
// which hashed with double-SHA256 and hex-formatted the result as a fake
// "4%x" address. Real Monero addresses pair a spend key and a view key
// behind a CryptoNote key-derivation scheme no library in the retrieved
// pack implements; SPEC_FULL.md §9 keeps this simplified, non-interop
// Keccak-based substitute instead — one secp256k1 key standing in for
// both halves of the keypair — while still producing a real 95-character
// Monero-alphabet block-base58 address via encoding.MoneroBase58Encode.
type moneroDriver struct{ baseInfo }

func newMoneroDriver(info chainregistry.ChainInfo) Driver {
	return &moneroDriver{baseInfo{info}}
}

// path is m/44'/128'/i'/0/0: the account-position segment carries index,
// hardened, while the trailing two segments stay fixed at 0.
func (d *moneroDriver) path(index uint32) []derivepath.Segment {
	return []derivepath.Segment{
		derivepath.Seg(44, true),
		derivepath.Seg(128, true),
		derivepath.Seg(index, true),
		derivepath.Seg(0, false),
		derivepath.Seg(0, false),
	}
}

func (d *moneroDriver) DerivationPath(index uint32) string {
	return derivepath.Format(d.path(index))
}

func (d *moneroDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pubCompressed, _, err := secp256k1Keys(seed, d.path(index))
	if err != nil {
		return wallet.Address{}, err
	}
	spendKey := encoding.Keccak256(pubCompressed)
	viewKey := encoding.Keccak256(spendKey)
	body := make([]byte, 0, 1+32+32+4)
	body = append(body, 0x12) // mainnet standard-address network byte
	body = append(body, spendKey...)
	body = append(body, viewKey...)
	checksum := encoding.Keccak256(body)
	body = append(body, checksum[0:4]...)
	addr := encoding.MoneroBase58Encode(body)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *moneroDriver) ValidateAddress(addr string) bool {
	if len(addr) != 95 || addr[0] != '4' {
		return false
	}
	body, ok := encoding.MoneroBase58Decode(addr)
	if !ok || len(body) != 69 {
		return false
	}
	payload, checksum := body[:65], body[65:]
	want := encoding.Keccak256(payload)
	return bytes.Equal(checksum, want[0:4])
}

func (d *moneroDriver) ExampleAddress() string {
	return "48fQT9crHB32TMJA2GbBjhT8qj2j6vQqA2S9xhZLwZFQ4aRvtTUBUNhUjM2YLbbnN1iuYZ5V6g7iu1Z4qHcM2PmpTUfgjrX"
}
