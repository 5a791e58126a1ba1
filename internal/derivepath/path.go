// Package derivepath implements the BIP-32/BIP-44 derivation path value
// type: a typed 5-tuple plus the two display formatters every chain driver
// builds its canonical path string from.
package derivepath

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is the immutable BIP-44 5-tuple (purpose, coin_type, account, change,
// index). Hardening is never stored here: it's applied by a formatter or by
// an engine, never by the value type itself.
type Path struct {
	Purpose  uint32
	CoinType uint32
	Account  uint32
	Change   uint32
	Index    uint32
}

// New constructs a Path from its five components.
func New(purpose, coinType, account, change, index uint32) Path {
	return Path{Purpose: purpose, CoinType: coinType, Account: account, Change: change, Index: index}
}

// Segment is one `/N` or `/N'` component of a derivation path string.
type Segment struct {
	Value    uint32
	Hardened bool
}

// Seg builds a Segment.
func Seg(value uint32, hardened bool) Segment {
	return Segment{Value: value, Hardened: hardened}
}

// HardenedSegments marks every value in vs as hardened.
func HardenedSegments(vs ...uint32) []Segment {
	segs := make([]Segment, len(vs))
	for i, v := range vs {
		segs[i] = Seg(v, true)
	}
	return segs
}

// MixedSegments is the standard BIP-44 shape: purpose, coin_type, and
// account hardened; change and index not. This is the path every Bitcoin
// and EVM-family driver uses.
func (p Path) MixedSegments() []Segment {
	return []Segment{
		Seg(p.Purpose, true),
		Seg(p.CoinType, true),
		Seg(p.Account, true),
		Seg(p.Change, false),
		Seg(p.Index, false),
	}
}

// AllHardenedSegments hardens every component, the shape SLIP-0010 chains
// that follow the plain 5-tuple (e.g. Sui, NEAR) use.
func (p Path) AllHardenedSegments() []Segment {
	return []Segment{
		Seg(p.Purpose, true),
		Seg(p.CoinType, true),
		Seg(p.Account, true),
		Seg(p.Change, true),
		Seg(p.Index, true),
	}
}

// String renders the mixed-hardened form: m/p'/c'/a'/ch/i.
func (p Path) String() string {
	return Format(p.MixedSegments())
}

// StringAllHardened renders the all-hardened form: m/p'/c'/a'/ch'/i'.
func (p Path) StringAllHardened() string {
	return Format(p.AllHardenedSegments())
}

// Format renders an arbitrary segment list as a derivation path string.
// Drivers whose canonical path doesn't fit the plain 5-tuple shape (Solana,
// Sui's fixed path, Stellar's 3-level path) build
// their own []Segment and call Format directly instead of going through
// Path's two fixed formatters.
func Format(segments []Segment) string {
	var b strings.Builder
	b.WriteString("m")
	for _, s := range segments {
		fmt.Fprintf(&b, "/%d", s.Value)
		if s.Hardened {
			b.WriteByte('\'')
		}
	}
	return b.String()
}

// Parse is the formal inverse of Format for a 5-segment path (hardening
// marks are accepted but not retained — Path itself is hardening-agnostic).
// It's the model the "path stability" testable property exercises: for any
// chain whose canonical path is a plain 5-tuple, Parse(p.String()) == p.
func Parse(path string) (Path, error) {
	segs, err := ParseSegments(path)
	if err != nil {
		return Path{}, err
	}
	if len(segs) != 5 {
		return Path{}, fmt.Errorf("derivepath: expected 5 segments, got %d", len(segs))
	}
	return Path{
		Purpose:  segs[0].Value,
		CoinType: segs[1].Value,
		Account:  segs[2].Value,
		Change:   segs[3].Value,
		Index:    segs[4].Value,
	}, nil
}

// ParseSegments parses any "m/a'/b/.../n" path string into its segments,
// regardless of length or hardening pattern.
func ParseSegments(path string) ([]Segment, error) {
	trimmed := strings.TrimPrefix(path, "m")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, "/")
	segs := make([]Segment, 0, len(parts))
	for i, part := range parts {
		hardened := strings.HasSuffix(part, "'")
		part = strings.TrimSuffix(part, "'")
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("derivepath: invalid component %d (%q): %w", i, part, err)
		}
		segs = append(segs, Seg(uint32(v), hardened))
	}
	return segs, nil
}
