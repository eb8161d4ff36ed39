// Package hash selects the digest algorithm used for a checksum run.
package hash

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/JakeFAU/filecheck/internal/hash/blake2b"
	"github.com/JakeFAU/filecheck/internal/hash/blake3"
	"github.com/JakeFAU/filecheck/internal/hash/sha256"
	"github.com/JakeFAU/filecheck/internal/hash/wyhash"
	"github.com/JakeFAU/filecheck/internal/hash/xxh3"
	"github.com/JakeFAU/filecheck/internal/hash/xxhash"
)

// Hasher computes a fixed-length digest over a complete byte buffer.
// Implementations are pure and safe for concurrent use.
type Hasher interface {
	// Name is the algorithm identifier accepted by --algorithm.
	Name() string
	// Size is the digest length in bytes.
	Size() int
	// Sum returns the digest of data. len(result) == Size().
	Sum(data []byte) []byte
}

// Algorithm names.
const (
	Wyhash  = "wyhash"
	SHA256  = "sha256"
	XXH3    = "xxh3"
	XXHash  = "xxhash"
	BLAKE3  = "blake3"
	BLAKE2b = "blake2b"
)

// Default is the fast non-cryptographic algorithm used when none is requested.
const Default = Wyhash

// ErrUnknownAlgorithm is returned by New for unregistered names.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

var registry = map[string]func() Hasher{
	Wyhash:  func() Hasher { return wyhash.New() },
	SHA256:  func() Hasher { return sha256.New() },
	XXH3:    func() Hasher { return xxh3.New() },
	XXHash:  func() Hasher { return xxhash.New() },
	BLAKE3:  func() Hasher { return blake3.New() },
	BLAKE2b: func() Hasher { return blake2b.New() },
}

// New returns the Hasher registered under name. Matching is case-insensitive.
func New(name string) (Hasher, error) {
	factory, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownAlgorithm, name, strings.Join(Algorithms(), ", "))
	}
	return factory(), nil
}

// Algorithms lists the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
