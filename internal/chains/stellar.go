package chains

import (
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/wallet"
)

// stellarDriver is grounded on internal/services/address/stellar.go
// (teacher), which called stellar/go/keypair.FromRawSeed — the right
// library call — but on raw secp256k1 key bytes, the wrong key material
// for an Ed25519 chain. Feeding it a real SLIP-0010 seed instead lets the
// library do what it already does correctly: derive the public key and
// render the G... strkey address (version byte, Base32, CRC16-XMODEM
// checksum) internally.
type stellarDriver struct{ baseInfo }

func newStellarDriver(info chainregistry.ChainInfo) Driver {
	return &stellarDriver{baseInfo{info}}
}

func (d *stellarDriver) path(index uint32) []derivepath.Segment {
	return derivepath.HardenedSegments(44, 148, index)
}

func (d *stellarDriver) DerivationPath(index uint32) string {
	return derivepath.Format(d.path(index))
}

func (d *stellarDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pub, err := ed25519Keys(seed, d.path(index))
	if err != nil {
		return wallet.Address{}, err
	}
	var rawSeed [32]byte
	copy(rawSeed[:], priv)
	kp, err := keypair.FromRawSeed(rawSeed)
	if err != nil {
		return wallet.Address{}, err
	}
	return wallet.Address{
		Address: kp.Address(), ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pub), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *stellarDriver) ValidateAddress(addr string) bool {
	return strkey.IsValidEd25519PublicKey(addr)
}

func (d *stellarDriver) ExampleAddress() string {
	return "GBZXN7PIRZGNMHGA7MUUUF4GWPY5AYPV6LY4UV2GL6VJGIQRXFDNMADI"
}
