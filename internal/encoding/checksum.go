// Package encoding collects the address-encoding primitives every chain
// driver composes from: hashes, checksums, and the base-N encodings. Each
// file is a handful of small pure functions over byte slices, the
// "encoder composition" style the teacher's address drivers already lean
// on (tron.go's doubleSHA256, ripple.go's RIPEMD160 step).
package encoding

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash/crc32"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by several chains' canonical hash160
)

// SHA256 returns the plain SHA-256 digest.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// DoubleSHA256 is SHA256(SHA256(data)), the Bitcoin-family checksum input.
func DoubleSHA256(data []byte) []byte {
	return SHA256(SHA256(data))
}

// SHA224 returns the SHA-224 digest (used by ICP's principal hash).
func SHA224(data []byte) []byte {
	sum := sha256.Sum224(data)
	return sum[:]
}

// SHA512_256 returns the SHA-512/256 digest (Algorand's checksum hash).
func SHA512_256(data []byte) []byte {
	sum := sha512.Sum512_256(data)
	return sum[:]
}

// RIPEMD160 returns the 20-byte RIPEMD-160 digest.
func RIPEMD160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)
}

// Hash160 is RIPEMD160(SHA256(data)), Bitcoin-family's "hash160".
func Hash160(data []byte) []byte {
	return RIPEMD160(SHA256(data))
}

// Keccak256 returns the Keccak-256 digest (Ethereum, TRON).
func Keccak256(data []byte) []byte {
	return crypto.Keccak256(data)
}

// Blake2b256 returns the 32-byte Blake2b digest (Sui, Tezos-adjacent use).
func Blake2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// Blake2b512 returns the 64-byte Blake2b digest (SS58's "SS58PRE" checksum).
func Blake2b512(data []byte) []byte {
	sum := blake2b.Sum512(data)
	return sum[:]
}

// Blake2bSize returns a Blake2b digest of an arbitrary output size in bytes
// (Filecoin uses 20-byte and 4-byte outputs for its payload and checksum).
func Blake2bSize(data []byte, size int) []byte {
	h, err := blake2b.New(size, nil)
	if err != nil {
		panic(err) // size is always a compile-time constant in callers
	}
	h.Write(data)
	return h.Sum(nil)
}

// Blake2s256 returns the 32-byte Blake2s digest (Cardano's payment hash).
func Blake2s256(data []byte) []byte {
	sum := blake2s.Sum256(data)
	return sum[:]
}

// CRC32IEEE returns the IEEE/ISO-HDLC CRC-32 (ICP's principal checksum).
// hash/crc32 is the idiomatic Go choice here, the same way the stdlib
// crypto/sha256 is reached for above — no third-party CRC-32 crate appears
// anywhere in the corpus, and none is needed for the standard polynomial.
func CRC32IEEE(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// CRC16XModem computes the CRC-16/XMODEM checksum (poly 0x1021, init
// 0x0000) that Stellar's strkey and TON's address both append. No CRC-16
// library appears anywhere in the retrieved corpus (checked go.mod/go.sum
// and every *.go file); it's a fixed, table-less 16-line loop, implemented
// directly here rather than introduced as a dependency with no corpus
// precedent — consistent with the teacher's own practice of hand-rolling
// comparably small checksum helpers next to the address logic that needs
// them (doubleSHA256 in tron.go/ripple.go).
func CRC16XModem(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
