package filter

import "github.com/maxvaer/urlprobe/internal/scanner"

// CompletedRule rejects outcomes that never completed an HTTP exchange.
// Timeouts and network errors are informational only and can never become
// accepted results, regardless of the remaining filter configuration.
type CompletedRule struct{}

// NewCompletedRule creates the completed-exchange guard.
func NewCompletedRule() *CompletedRule {
	return &CompletedRule{}
}

func (r *CompletedRule) Name() string { return "incomplete" }

func (r *CompletedRule) Reject(outcome *scanner.Outcome) bool {
	return outcome.Kind != scanner.KindHTTP
}
