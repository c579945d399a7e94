package filter

import "github.com/maxvaer/urlprobe/internal/scanner"

// IncludeStatusRule rejects outcomes whose status code is not a member of
// the allow set. An empty set allows every status code.
type IncludeStatusRule struct {
	codes map[int]struct{}
}

// NewIncludeStatusRule creates a status allow-list rule.
func NewIncludeStatusRule(codes []int) *IncludeStatusRule {
	r := &IncludeStatusRule{codes: make(map[int]struct{}, len(codes))}
	for _, code := range codes {
		r.codes[code] = struct{}{}
	}
	return r
}

func (r *IncludeStatusRule) Name() string { return "include-status" }

func (r *IncludeStatusRule) Reject(outcome *scanner.Outcome) bool {
	if len(r.codes) == 0 {
		return false
	}
	_, ok := r.codes[outcome.StatusCode]
	return !ok
}

// ExcludeStatusRule rejects outcomes whose status code is a member of the
// deny set.
type ExcludeStatusRule struct {
	codes map[int]struct{}
}

// NewExcludeStatusRule creates a status deny-list rule.
func NewExcludeStatusRule(codes []int) *ExcludeStatusRule {
	r := &ExcludeStatusRule{codes: make(map[int]struct{}, len(codes))}
	for _, code := range codes {
		r.codes[code] = struct{}{}
	}
	return r
}

func (r *ExcludeStatusRule) Name() string { return "exclude-status" }

func (r *ExcludeStatusRule) Reject(outcome *scanner.Outcome) bool {
	_, ok := r.codes[outcome.StatusCode]
	return ok
}
