// Package blake2b provides a 256-bit BLAKE2b file digest.
package blake2b

import "golang.org/x/crypto/blake2b"

// Hasher implements hash.Hasher using unkeyed BLAKE2b-256.
type Hasher struct{}

// New returns a BLAKE2b-256 hasher.
func New() *Hasher {
	return &Hasher{}
}

// Name returns "blake2b".
func (h *Hasher) Name() string { return "blake2b" }

// Size returns 32.
func (h *Hasher) Size() int { return blake2b.Size256 }

// Sum hashes data.
func (h *Hasher) Sum(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}
