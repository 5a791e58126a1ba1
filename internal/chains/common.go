package chains

import (
	"encoding/hex"
	"fmt"

	"github.com/arcsign/derive/internal/bip32engine"
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/derivepath"
	"github.com/arcsign/derive/internal/slip10engine"
)

// standardSegments builds the m/purpose'/coinType'/0'/0/index shape most
// secp256k1 chains in the registry use.
func standardSegments(purpose, coinType, index uint32) []derivepath.Segment {
	return []derivepath.Segment{
		derivepath.Seg(purpose, true),
		derivepath.Seg(coinType, true),
		derivepath.Seg(0, true),
		derivepath.Seg(0, false),
		derivepath.Seg(index, false),
	}
}

// secp256k1Keys derives a master key from seed and walks segments,
// returning the 32-byte scalar and both public key encodings.
func secp256k1Keys(seed []byte, segments []derivepath.Segment) (priv, pubCompressed, pubUncompressed []byte, err error) {
	master, err := bip32engine.NewMasterKey(seed)
	if err != nil {
		return nil, nil, nil, err
	}
	key, err := master.Derive(segments)
	if err != nil {
		return nil, nil, nil, err
	}
	priv, err = key.PrivateKeyScalar()
	if err != nil {
		return nil, nil, nil, err
	}
	pubCompressed, err = key.PublicKeyCompressed()
	if err != nil {
		return nil, nil, nil, err
	}
	pubUncompressed, err = key.PublicKeyUncompressed()
	if err != nil {
		return nil, nil, nil, err
	}
	return priv, pubCompressed, pubUncompressed, nil
}

// ed25519Keys derives an Ed25519 seed/public-key pair along an
// all-hardened SLIP-0010 path.
func ed25519Keys(seed []byte, segments []derivepath.Segment) (priv, pub []byte, err error) {
	kp, err := slip10engine.Derive(seed, segments)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}
	return kp.Seed, kp.Public, nil
}

func hexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

// infoFunc looks up a chain's ChainInfo from the registry at Init time.
type infoFunc func(chainregistry.ChainType) chainregistry.ChainInfo

// baseInfo is a small embeddable helper: most drivers only need to close
// over their own chainregistry.ChainInfo for Info()/ChainType().
type baseInfo struct {
	info chainregistry.ChainInfo
}

func (b baseInfo) ChainType() chainregistry.ChainType { return b.info.ChainType }
func (b baseInfo) Info() chainregistry.ChainInfo      { return b.info }
