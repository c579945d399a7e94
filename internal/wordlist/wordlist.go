package wordlist

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a newline-delimited wordlist. Lines are whitespace-trimmed;
// blank lines and comments are skipped; duplicates are dropped while
// preserving first-seen order. A wordlist that yields zero entries is an
// error, since a scan with zero targets must not proceed.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wordlist %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	seen := make(map[string]struct{}, len(lines))
	var words []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		words = append(words, line)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("wordlist %s contains no usable entries", path)
	}
	return words, nil
}
