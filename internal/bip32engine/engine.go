// Package bip32engine is the BIP-32/secp256k1 derivation engine: master-key
// creation from a seed and hardened/non-hardened child derivation along a
// path, generalized from internal/services/hdkey/service.go (teacher) to
// derive from a typed []derivepath.Segment instead of a pre-formatted path
// string, and to hand back raw key bytes instead of an *hdkeychain.ExtendedKey.
package bip32engine

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/arcsign/derive/internal/derivepath"
)

// Key wraps a derived extended key. The extended chain code never leaves
// this package; callers only ever see the 32-byte scalar and the
// compressed/uncompressed public key.
type Key struct {
	ext *hdkeychain.ExtendedKey
}

// NewMasterKey derives the master extended key from a BIP-39 seed. Per
// BIP-32 the seed must be 16-64 bytes; hdkeychain.NewMaster enforces this
// (master = HMAC-SHA512(key="Bitcoin seed", data=seed) internally).
func NewMasterKey(seed []byte) (*Key, error) {
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("bip32engine: master key: %w", err)
	}
	return &Key{ext: master}, nil
}

// Derive walks the given path segments from k, applying BIP-32's
// hardened-key-start offset to every segment marked Hardened.
func (k *Key) Derive(segments []derivepath.Segment) (*Key, error) {
	cur := k.ext
	for _, seg := range segments {
		idx := seg.Value
		if seg.Hardened {
			idx += hdkeychain.HardenedKeyStart
		}
		child, err := cur.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("bip32engine: derive index %d: %w", seg.Value, err)
		}
		cur = child
	}
	return &Key{ext: cur}, nil
}

// PrivateKeyScalar returns the 32-byte private scalar.
func (k *Key) PrivateKeyScalar() ([]byte, error) {
	priv, err := k.ext.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("bip32engine: private key: %w", err)
	}
	return priv.Serialize(), nil
}

// PublicKeyCompressed returns the 33-byte compressed-SEC1 public key.
func (k *Key) PublicKeyCompressed() ([]byte, error) {
	pub, err := k.ext.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("bip32engine: public key: %w", err)
	}
	return pub.SerializeCompressed(), nil
}

// PublicKeyUncompressed returns the 65-byte uncompressed public key
// (0x04 || X || Y), the form Ethereum/TRON's Keccak256 address hash uses.
func (k *Key) PublicKeyUncompressed() ([]byte, error) {
	pub, err := k.ext.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("bip32engine: public key: %w", err)
	}
	return pub.SerializeUncompressed(), nil
}

// PubKey exposes the underlying *btcec.PublicKey for drivers that need to
// hand it to another library's own key type (go-ethereum's crypto package
// expects a *ecdsa.PublicKey with the same curve).
func (k *Key) PubKey() (*btcec.PublicKey, error) {
	return k.ext.ECPubKey()
}
