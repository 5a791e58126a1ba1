package encoding

import "testing"

func TestHash160Length(t *testing.T) {
	h := Hash160([]byte("some public key bytes"))
	if len(h) != 20 {
		t.Fatalf("Hash160 length = %d, want 20", len(h))
	}
}

func TestDoubleSHA256Deterministic(t *testing.T) {
	a := DoubleSHA256([]byte("data"))
	b := DoubleSHA256([]byte("data"))
	if string(a) != string(b) {
		t.Fatal("DoubleSHA256 not deterministic")
	}
	if len(a) != 32 {
		t.Fatalf("length = %d, want 32", len(a))
	}
}

func TestBlake2bSizeRespectsRequestedSize(t *testing.T) {
	for _, size := range []int{4, 20, 32} {
		out := Blake2bSize([]byte("payload"), size)
		if len(out) != size {
			t.Errorf("Blake2bSize(%d) length = %d", size, len(out))
		}
	}
}

func TestCRC16XModemKnownVector(t *testing.T) {
	// "123456789" is the standard CRC catalogue check string; CRC-16/XMODEM
	// (poly 0x1021, init 0x0000, no xor-out) checks to 0x31C3.
	got := CRC16XModem([]byte("123456789"))
	want := uint16(0x31C3)
	if got != want {
		t.Fatalf("CRC16XModem = %#04x, want %#04x", got, want)
	}
}

func TestCRC32IEEEMatchesStdlib(t *testing.T) {
	got := CRC32IEEE([]byte("123456789"))
	want := uint32(0xCBF43926)
	if got != want {
		t.Fatalf("CRC32IEEE = %#08x, want %#08x", got, want)
	}
}

func TestKeccak256Length(t *testing.T) {
	h := Keccak256([]byte("test"))
	if len(h) != 32 {
		t.Fatalf("Keccak256 length = %d, want 32", len(h))
	}
}
