package chains

import (
	"fmt"

	zilbech32 "github.com/Zilliqa/gozilliqa-sdk/bech32"
	"github.com/Zilliqa/gozilliqa-sdk/keytools"
	"github.com/Zilliqa/gozilliqa-sdk/util"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// zilliqaDriver is grounded directly on internal/services/address/
// zilliqa.go (teacher), which was already correct: gozilliqa-sdk's own
// keytools.GetAddressFromPublic does the SHA256(pubkey)[12:] hashing
// internally, this just supplies it real derived key material.
type zilliqaDriver struct{ baseInfo }

func newZilliqaDriver(info chainregistry.ChainInfo) Driver {
	return &zilliqaDriver{baseInfo{info}}
}

func (d *zilliqaDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 313, 0, 0, index).String()
}

func (d *zilliqaDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 313, index)
	priv, pubCompressed, _, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	privHex := fmt.Sprintf("%064x", priv)
	publicKey := keytools.GetPublicKeyFromPrivateKey(util.DecodeHex(privHex), true)
	rawAddr := keytools.GetAddressFromPublic(publicKey)
	addr, err := zilbech32.ToBech32Address(rawAddr)
	if err != nil {
		return wallet.Address{}, err
	}
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

// ValidateAddress decodes through our own verifying Bech32Decode rather
// than gozilliqa-sdk's bech32 package, which exposes an encoder
// (ToBech32Address) but no address-checksum verifier.
func (d *zilliqaDriver) ValidateAddress(addr string) bool {
	payload, err := encoding.Bech32Decode("zil", addr)
	return err == nil && len(payload) == 20
}

func (d *zilliqaDriver) ExampleAddress() string {
	return "zil1f8mcd7nnv3v6ucw2kjnq7ngvhj22phglks50s5"
}
