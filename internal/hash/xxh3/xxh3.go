// Package xxh3 provides a seeded XXH3-64 file digest.
package xxh3

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Seed matches the wyhash seed so both fast variants are keyed alike.
const Seed uint64 = 1

// Hasher implements hash.Hasher using XXH3.
type Hasher struct{}

// New returns an XXH3 hasher.
func New() *Hasher {
	return &Hasher{}
}

// Name returns "xxh3".
func (h *Hasher) Name() string { return "xxh3" }

// Size returns 8.
func (h *Hasher) Size() int { return 8 }

// Sum hashes data and serializes the result little-endian.
func (h *Hasher) Sum(data []byte) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, xxh3.HashSeed(data, Seed))
	return out
}
