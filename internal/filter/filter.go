package filter

import "github.com/maxvaer/urlprobe/internal/scanner"

// Rule decides whether a probe outcome should be rejected from the results.
type Rule interface {
	Name() string
	Reject(outcome *scanner.Outcome) bool
}

// Chain applies rules in order, short-circuiting on the first rejection.
// All rules are independent conjunctions, so the order only matters for
// performance: the keyword scan never runs when a cheaper rule already
// rejected the outcome.
type Chain struct {
	rules []Rule
}

// NewChain returns an empty rule chain.
func NewChain() *Chain {
	return &Chain{}
}

// Add appends a rule to the chain.
func (c *Chain) Add(r Rule) {
	c.rules = append(c.rules, r)
}

// Apply runs every rule against the outcome. Returns true and the rule
// name if the outcome should be rejected.
func (c *Chain) Apply(outcome *scanner.Outcome) (bool, string) {
	for _, r := range c.rules {
		if r.Reject(outcome) {
			return true, r.Name()
		}
	}
	return false, ""
}
