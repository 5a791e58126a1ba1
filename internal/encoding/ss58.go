package encoding

import "github.com/vedhavyas/go-subkey"

// SS58Encode wraps go-subkey's SS58 encoder, the same call
// address/kusama.go (teacher) makes (`subkey.SS58Encode(pubKey, 2)`),
// generalized to any network ID: Polkadot is 0, Kusama is 2.
func SS58Encode(pub []byte, network uint8) string {
	return subkey.SS58Encode(pub, network)
}

// SS58Decode reverses SS58Encode, returning the raw public key and the
// network ID encoded in the address. Used by ValidateAddress.
func SS58Decode(address string) ([]byte, uint8, error) {
	return subkey.SS58Decode(address)
}
