package chains

import (
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// evmDrivers builds Ethereum and its L2s. They share one derivation path
// (m/44'/60'/0'/0/i, SPEC_FULL.md §4.6) and one address algorithm —
// Keccak256 of the uncompressed public key, EIP-55 checksummed — so a
// single evmDriver type parameterized by ChainType covers all six, rather
// than six near-identical copies of internal/services/address/ethereum.go
// (teacher).
func evmDrivers(info infoFunc) []Driver {
	chainTypes := []chainregistry.ChainType{
		chainregistry.Ethereum,
		chainregistry.BaseChain,
		chainregistry.Arbitrum,
		chainregistry.Optimism,
		chainregistry.Polygon,
		chainregistry.Avalanche,
	}
	drivers := make([]Driver, 0, len(chainTypes))
	for _, ct := range chainTypes {
		drivers = append(drivers, &evmDriver{baseInfo{info(ct)}})
	}
	return drivers
}

type evmDriver struct{ baseInfo }

func (d *evmDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 60, 0, 0, index).String()
}

func (d *evmDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 60, index)
	priv, pubCompressed, pubUncompressed, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	hash := encoding.Keccak256(pubUncompressed[1:])
	addr := encoding.EIP55(hash[12:])
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *evmDriver) ValidateAddress(addr string) bool {
	return len(addr) == 42 && encoding.EIP55Valid(addr)
}

func (d *evmDriver) ExampleAddress() string {
	return "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
}
