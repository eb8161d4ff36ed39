// Package sha256 includes tests for the SHA-256 hasher adapter.
package sha256

import (
	"encoding/hex"
	"testing"
)

// TestHasherSumDeterministic ensures repeated hashing yields the same digest.
func TestHasherSumDeterministic(t *testing.T) {
	t.Parallel()

	h := New()
	got := hex.EncodeToString(h.Sum([]byte("hello world")))
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	again := hex.EncodeToString(h.Sum([]byte("hello world")))
	if again != got {
		t.Fatalf("expected deterministic hash, got %s vs %s", got, again)
	}
}

// TestHasherSize confirms the advertised size matches the digest length.
func TestHasherSize(t *testing.T) {
	t.Parallel()

	h := New()
	if h.Size() != 32 {
		t.Fatalf("expected size 32, got %d", h.Size())
	}
	if n := len(h.Sum(nil)); n != h.Size() {
		t.Fatalf("expected %d byte digest, got %d", h.Size(), n)
	}
}
