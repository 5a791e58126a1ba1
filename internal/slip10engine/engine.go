// Package slip10engine is the SLIP-0010 Ed25519 derivation engine,
// wrapping github.com/anyproto/go-slip10 the way
// internal/services/address/tezos.go (teacher) does
// (slip10.DeriveForPath + node.Keypair()), generalized to accept a full
// hardened-only path built from []derivepath.Segment instead of the
// teacher's fixed "m/0'" and to reject non-hardened segments outright,
// per the engine's MUST in SPEC_FULL.md §4.4.2.
package slip10engine

import (
	"crypto/ed25519"
	"fmt"

	"github.com/anyproto/go-slip10"

	"github.com/arcsign/derive/internal/derivepath"
)

// KeyPair is the Ed25519 scalar/point pair produced by one derivation.
type KeyPair struct {
	Seed   []byte // 32-byte private seed (the signing key)
	Public []byte // 32-byte Ed25519 public key
}

// Derive walks an Ed25519 master node (from seed) along path, which MUST
// consist entirely of hardened segments — SLIP-0010 has no non-hardened
// derivation for Ed25519, and go-slip10 would otherwise silently treat a
// caller's mistaken non-hardened index as hardened.
func Derive(seed []byte, path []derivepath.Segment) (*KeyPair, error) {
	for _, seg := range path {
		if !seg.Hardened {
			return nil, fmt.Errorf("slip10engine: non-hardened segment %d is not permitted", seg.Value)
		}
	}
	node, err := slip10.DeriveForPath(derivepath.Format(path), seed)
	if err != nil {
		return nil, fmt.Errorf("slip10engine: derive: %w", err)
	}
	pub, priv := node.Keypair()
	signingKey := ed25519.PrivateKey(priv)
	return &KeyPair{Seed: signingKey.Seed(), Public: pub}, nil
}
