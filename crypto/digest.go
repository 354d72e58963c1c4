// Package crypto holds the hash primitives used by the conformance tooling.
package crypto

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

func SHA3_256(input []byte) [32]byte {
	h := sha3.New256()
	_, _ = h.Write(input)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func SHA3_256Hex(input []byte) string {
	d := SHA3_256(input)
	return hex.EncodeToString(d[:])
}

// NewSHA3_256 returns a streaming SHA3-256 hasher for multi-part digests.
func NewSHA3_256() hash.Hash {
	return sha3.New256()
}
