// Package input collects the path list from a line-oriented stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input line. PATH_MAX is far below this.
const maxLineBytes = 1 << 20

// ReadPaths reads one path per line until EOF. Empty lines are skipped and a
// trailing carriage return is dropped; the rest of each line is kept as is.
func ReadPaths(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var paths []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return paths, nil
}
