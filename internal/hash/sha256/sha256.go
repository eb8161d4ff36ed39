// Package sha256 provides SHA-256 hashing utilities.
package sha256

import (
	"crypto/sha256"
)

// Hasher implements hash.Hasher using SHA-256.
type Hasher struct{}

// New returns a SHA-256 hasher.
func New() *Hasher {
	return &Hasher{}
}

// Name returns "sha256".
func (h *Hasher) Name() string { return "sha256" }

// Size returns 32.
func (h *Hasher) Size() int { return sha256.Size }

// Sum hashes the input with a single init/update/finalize pass.
func (h *Hasher) Sum(data []byte) []byte {
	d := sha256.New()
	d.Write(data) //nolint:errcheck // hash.Hash writes never fail
	return d.Sum(nil)
}
