package hash

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_KnownAlgorithms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
	}{
		{name: Wyhash, size: 8},
		{name: XXH3, size: 8},
		{name: XXHash, size: 8},
		{name: SHA256, size: 32},
		{name: BLAKE3, size: 32},
		{name: BLAKE2b, size: 32},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := New(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.name, h.Name())
			require.Equal(t, tt.size, h.Size())

			data := []byte("the quick brown fox jumps over the lazy dog")
			first := h.Sum(data)
			require.Len(t, first, tt.size)
			require.Equal(t, first, h.Sum(data), "digest must be deterministic")
			require.NotEqual(t, first, h.Sum([]byte("the quick brown fox jumps over the lazy cat")))
		})
	}
}

func TestNew_CaseInsensitive(t *testing.T) {
	t.Parallel()

	h, err := New(" SHA256 ")
	require.NoError(t, err)
	require.Equal(t, SHA256, h.Name())
}

func TestNew_Unknown(t *testing.T) {
	t.Parallel()

	_, err := New("md5")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownAlgorithm))
	require.Contains(t, err.Error(), "wyhash")
}

func TestAlgorithms_Sorted(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{BLAKE2b, BLAKE3, SHA256, Wyhash, XXH3, XXHash}, Algorithms())
}

func TestKnownVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{name: SHA256, want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{name: BLAKE3, want: "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
		{name: BLAKE2b, want: "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		// XXH64("") = 0xef46db3751d8e999, little-endian.
		{name: XXHash, want: "99e9d85137db46ef"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := New(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, hex.EncodeToString(h.Sum(nil)))
		})
	}
}
