package chains

import (
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/encoding"
	"github.com/arcsign/derive/internal/wallet"
)

// bitcoinDrivers builds BTC Legacy/SegWit/Taproot and Dogecoin, the four
// chains that share Bitcoin's P2PKH/P2WPKH/P2TR family of encodings.
// Grounded on internal/services/address/bitcoin.go (teacher), which only
// ever built Legacy-style addresses via btcutil.NewAddressPubKey; SegWit
// and Taproot are new here, built from the same compressed/x-only key
// material through encoding/bech32.go.
func bitcoinDrivers(info infoFunc) []Driver {
	return []Driver{
		&btcLegacyDriver{baseInfo{info(chainregistry.BTCLegacy)}},
		&btcSegwitDriver{baseInfo{info(chainregistry.BTCSegwit)}},
		&btcTaprootDriver{baseInfo{info(chainregistry.BTCTaproot)}},
		&dogecoinDriver{baseInfo{info(chainregistry.Dogecoin)}},
	}
}

type btcLegacyDriver struct{ baseInfo }

func (d *btcLegacyDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 0, 0, 0, index).String()
}

func (d *btcLegacyDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 0, index)
	priv, pubCompressed, _, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	hash160 := encoding.Hash160(pubCompressed)
	addr := encoding.Base58CheckEncode([]byte{0x00}, hash160)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *btcLegacyDriver) ValidateAddress(addr string) bool {
	body, ok := encoding.Base58CheckDecode(addr)
	return ok && len(body) == 21 && body[0] == 0x00
}

func (d *btcLegacyDriver) ExampleAddress() string { return "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA" }

type btcSegwitDriver struct{ baseInfo }

func (d *btcSegwitDriver) DerivationPath(index uint32) string {
	return derivepath.New(84, 0, 0, 0, index).String()
}

func (d *btcSegwitDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(84, 0, index)
	priv, pubCompressed, _, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	program := encoding.Hash160(pubCompressed)
	addr, err := encoding.Bech32SegwitEncode("bc", 0, program)
	if err != nil {
		return wallet.Address{}, err
	}
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *btcSegwitDriver) ValidateAddress(addr string) bool {
	version, program, err := encoding.Bech32SegwitDecode("bc", addr)
	return err == nil && version == 0 && len(program) == 20
}

func (d *btcSegwitDriver) ExampleAddress() string {
	return "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"
}

type btcTaprootDriver struct{ baseInfo }

func (d *btcTaprootDriver) DerivationPath(index uint32) string {
	return derivepath.New(86, 0, 0, 0, index).String()
}

func (d *btcTaprootDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(86, 0, index)
	priv, pubCompressed, _, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	// Taproot's output key is the 32-byte x-only coordinate (no
	// script-path tweak, per SPEC_FULL.md's "no script-path" contract).
	xOnly := pubCompressed[1:]
	addr, err := encoding.Bech32SegwitEncode("bc", 1, xOnly)
	if err != nil {
		return wallet.Address{}, err
	}
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *btcTaprootDriver) ValidateAddress(addr string) bool {
	version, program, err := encoding.Bech32SegwitDecode("bc", addr)
	return err == nil && version == 1 && len(program) == 32
}

func (d *btcTaprootDriver) ExampleAddress() string {
	return "bc1pej9yh3jd39aam30mctm8paaghg9nsemezpk0zg3udlza0nt0cy2sqvps98"
}

type dogecoinDriver struct{ baseInfo }

func (d *dogecoinDriver) DerivationPath(index uint32) string {
	return derivepath.New(44, 3, 0, 0, index).String()
}

func (d *dogecoinDriver) GenerateAddress(seed []byte, index uint32) (wallet.Address, error) {
	segs := standardSegments(44, 3, index)
	priv, pubCompressed, _, err := secp256k1Keys(seed, segs)
	if err != nil {
		return wallet.Address{}, err
	}
	hash160 := encoding.Hash160(pubCompressed)
	addr := encoding.Base58CheckEncode([]byte{0x1E}, hash160)
	return wallet.Address{
		Address: addr, ChainType: d.ChainType(), ChainInfo: d.Info(),
		DerivationPath: d.DerivationPath(index), Index: index,
		PublicKeyHex: hexEncode(pubCompressed), PrivateKeyHex: hexEncode(priv),
	}, nil
}

func (d *dogecoinDriver) ValidateAddress(addr string) bool {
	body, ok := encoding.Base58CheckDecode(addr)
	return ok && len(body) == 21 && body[0] == 0x1E
}

func (d *dogecoinDriver) ExampleAddress() string { return "DBXu2kgc3xtvCUWFcxFE3r9hEYgmuaaCyD" }
