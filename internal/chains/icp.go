package chains

import (
	"encoding/binary"
	"strings"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// icpDriver has no teacher counterpart — the Internet Computer wasn't in
// the retrieved pack. Built directly from SPEC_FULL.md's contract: a
// SHA-224 principal hash, CRC32-prefixed, Base32-lower encoded and
// dash-grouped every 5 characters, the canonical textual principal form.
type icpDriver struct{ baseInfo }

func newICPDriver(info chainregistry.ChainInfo) Driver {
	return &icpDriver{baseInfo{info}}
}

func (d *icpDriver) path(index uint32) []derivepath.Segment {
	return derivepath.HardenedSegments(44, 223, 0, 0, index)
}

func (d *icpDriver) DerivationPath(index uint32) string {
	return derivepath.Format(d.path(index))
}

func (d *icpDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pub, err := ed25519Keys(seed, d.path(index))
	if err != nil {
		return wallet.Address{}, err
	}
	hash := encoding.SHA224(append([]byte{0x0A}, pub...))
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], encoding.CRC32IEEE(hash))
	body := append(crcBuf[:], hash...)
	encoded := strings.ToLower(encoding.Base32LowerNoPad(body))
	addr := dashGroup(encoded, 5)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pub), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func dashGroup(s string, n int) string {
	var b strings.Builder
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + n
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

func (d *icpDriver) ValidateAddress(addr string) bool {
	if !strings.Contains(addr, "-") {
		return false
	}
	body, err := encoding.Base32LowerNoPadDecode(strings.ReplaceAll(addr, "-", ""))
	if err != nil || len(body) != 32 {
		return false
	}
	crc, hash := body[:4], body[4:]
	return binary.BigEndian.Uint32(crc) == encoding.CRC32IEEE(hash)
}

func (d *icpDriver) ExampleAddress() string {
	return "rrkah-fqaaa-aaaaa-aaaaq-cai"
}
