package chains

import (
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// cosmosDrivers builds the eight Cosmos-SDK chains. Grounded on
// internal/services/address/cosmos.go (teacher), whose
// deriveCosmosAddressWithPrefix faked bech32 with a literal
// fmt.Sprintf("%s1%x", ...) and an explicit "TODO: Replace with proper
// Bech32 encoding" comment — replaced here with encoding.Bech32Encode,
// the real checksummed encoder modeled on the teacher's own working
// harmony.go bech32 call.
//
// Injective is the one exception: per SPEC_FULL.md §4.6 it uses the
// EVM-style curve (Keccak256 of the uncompressed key) with Cosmos-style
// bech32 encoding, so its address bytes come from the same hash the EVM
// drivers use rather than Hash160.
func cosmosDrivers(info infoFunc) []Driver {
	chainTypes := []chainregistry.ChainType{
		chainregistry.CosmosHub,
		chainregistry.Osmosis,
		chainregistry.Juno,
		chainregistry.Secret,
		chainregistry.Akash,
		chainregistry.Sei,
		chainregistry.Celestia,
		chainregistry.Injective,
	}
	drivers := make([]Driver, 0, len(chainTypes))
	for _, ct := range chainTypes {
		drivers = append(drivers, &cosmosDriver{baseInfo{info(ct)}})
	}
	return drivers
}

type cosmosDriver struct{ baseInfo }

func (d *cosmosDriver) coinType() uint32 { return d.Info().CoinType }

func (d *cosmosDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, d.coinType(), 0, 0, index).String()
}

func (d *cosmosDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, d.coinType(), index)
	priv, pubCompressed, pubUncompressed, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	var hash []byte
	if d.ChainType() == chainregistry.Injective {
		hash = encoding.Keccak256(pubUncompressed[1:])[12:]
	} else {
		hash = encoding.Hash160(pubCompressed)
	}
	addr, err := encoding.Bech32Encode(d.Info().AddressFormat.Tag, hash)
	if err != nil {
		return wallet.Address{}, err
	}
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *cosmosDriver) ValidateAddress(addr string) bool {
	hrp := d.Info().AddressFormat.Tag
	payload, err := encoding.Bech32Decode(hrp, addr)
	return err == nil && len(payload) == 20
}

func (d *cosmosDriver) ExampleAddress() string {
	return d.Info().AddressFormat.Tag + "1p0h3xd5klxqhxdyr8shg0rxmgydwqz0tc40sfx"
}
