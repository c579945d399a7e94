package filter

import (
	"bytes"

	"github.com/maxvaer/urlprobe/internal/scanner"
)

// KeywordRule rejects outcomes whose body contains any of the configured
// keywords. Matching is case-insensitive: the needles are folded once at
// construction and the outcome body arrives already lower-cased.
type KeywordRule struct {
	needles [][]byte
}

// NewKeywordRule creates a keyword exclusion rule.
func NewKeywordRule(keywords []string) *KeywordRule {
	r := &KeywordRule{needles: make([][]byte, 0, len(keywords))}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		r.needles = append(r.needles, bytes.ToLower([]byte(kw)))
	}
	return r
}

func (r *KeywordRule) Name() string { return "keyword" }

func (r *KeywordRule) Reject(outcome *scanner.Outcome) bool {
	for _, needle := range r.needles {
		if bytes.Contains(outcome.Body, needle) {
			return true
		}
	}
	return false
}
