package filter

import "github.com/maxvaer/urlprobe/internal/scanner"

// MinLengthRule rejects outcomes whose content length does not strictly
// exceed the threshold. A body exactly at the threshold is rejected.
type MinLengthRule struct {
	min int64
}

// NewMinLengthRule creates a minimum content length rule.
func NewMinLengthRule(min int64) *MinLengthRule {
	return &MinLengthRule{min: min}
}

func (r *MinLengthRule) Name() string { return "min-length" }

func (r *MinLengthRule) Reject(outcome *scanner.Outcome) bool {
	return outcome.ContentLength <= r.min
}
