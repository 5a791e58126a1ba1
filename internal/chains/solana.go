package chains

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/wallet"
)

// solanaDriver replaces internal/services/address/solana.go (teacher),
// which fed secp256k1 key bytes into solana-go's PublicKeyFromBytes — the
// wrong key material for an Ed25519 chain. This derives a real SLIP-0010
// Ed25519 key and keeps solana-go only for its base58 PublicKey.String().
//
// Per the resolved Open Question in SPEC_FULL.md §9, the path uses the
// four-level all-hardened form m/44'/501'/i'/0', not the three-level form
// spec.md's prose states.
type solanaDriver struct{ baseInfo }

func newSolanaDriver(info chainregistry.ChainInfo) Driver {
	return &solanaDriver{baseInfo{info}}
}

func (d *solanaDriver) path(index uint32) []derivepath.Segment {
	return derivepath.HardenedSegments(44, 501, index, 0)
}

func (d *solanaDriver) DerivationPath(index uint32) string {
	return derivepath.Format(d.path(index))
}

func (d *solanaDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	priv, pub, err := ed25519Keys(seed, d.path(index))
	if err != nil {
		return wallet.Address{}, err
	}
	addr := solanago.PublicKeyFromBytes(pub).String()
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pub), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *solanaDriver) ValidateAddress(addr string) bool {
	_, err := solanago.PublicKeyFromBase58(addr)
	return err == nil
}

func (d *solanaDriver) ExampleAddress() string {
	return "8fLhfBSxRrHvJqQsbT3YVSWD4CFHr1zkR3TqKfyCwjXK"
}
