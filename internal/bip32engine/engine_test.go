package bip32engine

import (
	"bytes"
	"testing"

	"github.com/arcsign/derive/internal/derivepath"
)

func testSeed() []byte {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestNewMasterKeyDeterministic(t *testing.T) {
	seed := testSeed()
	k1, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}
	k2, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}
	p1, err := k1.PrivateKeyScalar()
	if err != nil {
		t.Fatalf("PrivateKeyScalar: %v", err)
	}
	p2, err := k2.PrivateKeyScalar()
	if err != nil {
		t.Fatalf("PrivateKeyScalar: %v", err)
	}
	if !bytes.Equal(p1, p2) {
		t.Fatal("same seed must produce same master private key")
	}
}

func TestDeriveIsDeterministicAndPathSensitive(t *testing.T) {
	master, err := NewMasterKey(testSeed())
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}
	pathA := []derivepath.Segment{derivepath.Seg(44, true), derivepath.Seg(0, true), derivepath.Seg(0, false)}
	pathB := []derivepath.Segment{derivepath.Seg(44, true), derivepath.Seg(1, true), derivepath.Seg(0, false)}

	childA1, err := master.Derive(pathA)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	childA2, err := master.Derive(pathA)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	childB, err := master.Derive(pathB)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	pA1, _ := childA1.PrivateKeyScalar()
	pA2, _ := childA2.PrivateKeyScalar()
	pB, _ := childB.PrivateKeyScalar()

	if !bytes.Equal(pA1, pA2) {
		t.Fatal("deriving the same path twice must yield the same key")
	}
	if bytes.Equal(pA1, pB) {
		t.Fatal("deriving different paths must yield different keys")
	}
}

func TestPublicKeyCompressedVsUncompressed(t *testing.T) {
	master, err := NewMasterKey(testSeed())
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}
	compressed, err := master.PublicKeyCompressed()
	if err != nil {
		t.Fatalf("PublicKeyCompressed: %v", err)
	}
	uncompressed, err := master.PublicKeyUncompressed()
	if err != nil {
		t.Fatalf("PublicKeyUncompressed: %v", err)
	}
	if len(compressed) != 33 {
		t.Fatalf("compressed length = %d, want 33", len(compressed))
	}
	if len(uncompressed) != 65 || uncompressed[0] != 0x04 {
		t.Fatalf("uncompressed = %d bytes, prefix %#x; want 65 bytes prefixed 0x04", len(uncompressed), uncompressed[0])
	}
}
