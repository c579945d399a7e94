package scanner

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBase parses and normalizes the base URL: a missing scheme
// defaults to http and trailing slashes are stripped so target generation
// can join with exactly one separator.
func NormalizeBase(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	base, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if base.Host == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", raw)
	}
	base.Path = strings.TrimRight(base.Path, "/")
	return base.String(), nil
}

// BuildTargets combines the normalized base URL with each wordlist entry,
// producing one target per entry in wordlist order. Callers must not assume
// that order survives concurrent execution.
func BuildTargets(base string, words []string) []Target {
	targets := make([]Target, 0, len(words))
	for _, word := range words {
		targets = append(targets, Target{
			URL:  base + "/" + strings.TrimLeft(word, "/"),
			Word: word,
		})
	}
	return targets
}
