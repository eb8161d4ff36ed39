// Package report renders digest listings.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/JakeFAU/filecheck/internal/checksum"
)

const hexDigits = "0123456789ABCDEF"

// Options control digest rendering.
type Options struct {
	// Colon separates byte pairs with ':'.
	Colon bool
	// DigestSize is the run's digest length, used to size placeholders.
	DigestSize int
}

// EncodeHex renders digest as uppercase hex, two characters per byte.
// With colon set, byte pairs are joined by ':' with none leading or trailing.
func EncodeHex(digest []byte, colon bool) string {
	var sb strings.Builder
	sb.Grow(encodedLen(len(digest), colon))
	for i, b := range digest {
		if colon && i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
	}
	return sb.String()
}

// Placeholder renders the stand-in for a missing digest: '-' in place of every
// hex character, keeping the width and colon layout of a real digest.
func Placeholder(size int, colon bool) string {
	if size <= 0 {
		return "-"
	}
	pair := "--"
	if !colon {
		return strings.Repeat(pair, size)
	}
	return strings.TrimSuffix(strings.Repeat(pair+":", size), ":")
}

func encodedLen(size int, colon bool) int {
	if size == 0 {
		return 0
	}
	if colon {
		return size*3 - 1
	}
	return size * 2
}

// Write prints one "<hex> <path>" line per task, in slice order. Tasks
// without a digest get a Placeholder so every task yields exactly one line.
func Write(w io.Writer, tasks []checksum.Task, opts Options) error {
	bw := bufio.NewWriter(w)
	placeholder := Placeholder(opts.DigestSize, opts.Colon)
	for _, task := range tasks {
		digest := placeholder
		if task.Hashed() {
			digest = EncodeHex(task.Digest, opts.Colon)
		}
		if _, err := fmt.Fprintf(bw, "%s %s\n", digest, task.Path); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
