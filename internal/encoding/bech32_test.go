package encoding

import "testing"

func TestBech32EncodeProducesExpectedHRP(t *testing.T) {
	payload := make([]byte, 20)
	addr, err := Bech32Encode("cosmos", payload)
	if err != nil {
		t.Fatalf("Bech32Encode: %v", err)
	}
	if len(addr) < len("cosmos1") || addr[:7] != "cosmos1" {
		t.Fatalf("address %q does not start with expected hrp separator", addr)
	}
}

func TestBech32SegwitEncodeV0VsV1Differ(t *testing.T) {
	program := make([]byte, 20)
	for i := range program {
		program[i] = byte(i)
	}
	v0, err := Bech32SegwitEncode("bc", 0, program)
	if err != nil {
		t.Fatalf("v0 encode: %v", err)
	}
	xOnly := program // reuse for taproot-shaped 20 bytes just to compare encodings
	v1, err := Bech32SegwitEncode("bc", 1, xOnly)
	if err != nil {
		t.Fatalf("v1 encode: %v", err)
	}
	if v0 == v1 {
		t.Fatal("segwit v0 (bech32) and v1 (bech32m) encodings must differ")
	}
	if v0[:3] != "bc1" || v1[:3] != "bc1" {
		t.Fatalf("expected bc1 prefix, got %q and %q", v0, v1)
	}
}

func TestBech32DecodeRoundTrips(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
	addr, err := Bech32Encode("cosmos", payload)
	if err != nil {
		t.Fatalf("Bech32Encode: %v", err)
	}
	got, err := Bech32Decode("cosmos", addr)
	if err != nil {
		t.Fatalf("Bech32Decode: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("Bech32Decode = %x, want %x", got, payload)
	}
}

func TestBech32DecodeRejectsMutatedChecksum(t *testing.T) {
	payload := make([]byte, 20)
	addr, err := Bech32Encode("cosmos", payload)
	if err != nil {
		t.Fatalf("Bech32Encode: %v", err)
	}
	mutated := mutateLastChar(addr)
	if _, err := Bech32Decode("cosmos", mutated); err == nil {
		t.Fatalf("expected mutated address %q to fail checksum verification", mutated)
	}
}

func TestBech32SegwitDecodeRoundTripsAndVerifiesVariant(t *testing.T) {
	program := make([]byte, 20)
	for i := range program {
		program[i] = byte(i)
	}
	v0Addr, err := Bech32SegwitEncode("bc", 0, program)
	if err != nil {
		t.Fatalf("v0 encode: %v", err)
	}
	version, got, err := Bech32SegwitDecode("bc", v0Addr)
	if err != nil {
		t.Fatalf("Bech32SegwitDecode: %v", err)
	}
	if version != 0 || string(got) != string(program) {
		t.Fatalf("decoded version=%d program=%x, want 0/%x", version, got, program)
	}

	mutated := mutateLastChar(v0Addr)
	if _, _, err := Bech32SegwitDecode("bc", mutated); err == nil {
		t.Fatalf("expected mutated segwit address %q to fail checksum verification", mutated)
	}
}

// mutateLastChar flips the final character to a different valid bech32
// symbol, breaking the checksum without touching length or alphabet.
func mutateLastChar(s string) string {
	const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	last := s[len(s)-1]
	for _, c := range charset {
		if byte(c) != last {
			return s[:len(s)-1] + string(c)
		}
	}
	return s
}
