package encoding

import (
	"strings"
	"testing"
)

func TestEIP55KnownVector(t *testing.T) {
	addr20 := mustHex("5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	got := EIP55(addr20)
	want := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	if got != want {
		t.Fatalf("EIP55 = %q, want %q", got, want)
	}
}

func TestEIP55HasMixedCase(t *testing.T) {
	addr20 := mustHex("fB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
	got := EIP55(addr20)
	if got == strings.ToLower(got) || got == strings.ToUpper(got) {
		t.Fatalf("expected mixed-case checksum, got %q", got)
	}
}

func TestEIP55ValidAcceptsCorrectChecksum(t *testing.T) {
	if !EIP55Valid("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed") {
		t.Fatal("expected the correctly-checksummed address to validate")
	}
}

func TestEIP55ValidAcceptsAllLowerAndAllUpper(t *testing.T) {
	if !EIP55Valid("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed") {
		t.Fatal("expected an all-lowercase address to validate (no checksum claimed)")
	}
	if !EIP55Valid("0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED") {
		t.Fatal("expected an all-uppercase address to validate (no checksum claimed)")
	}
}

func TestEIP55ValidRejectsMutatedCasing(t *testing.T) {
	mutated := "0x5aAeb6053f3E94C9b9A09f33669435E7Ef1BeAed" // one letter's case flipped
	if EIP55Valid(mutated) {
		t.Fatalf("expected %q to fail checksum validation", mutated)
	}
}

func mustHex(s string) []byte {
	out := make([]byte, len(s)/2)
	for i := range out {
		var b byte
		for j := 0; j < 2; j++ {
			c := s[i*2+j]
			b <<= 4
			switch {
			case c >= '0' && c <= '9':
				b |= c - '0'
			case c >= 'a' && c <= 'f':
				b |= c - 'a' + 10
			case c >= 'A' && c <= 'F':
				b |= c - 'A' + 10
			}
		}
		out[i] = b
	}
	return out
}
