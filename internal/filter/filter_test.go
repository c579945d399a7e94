package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxvaer/urlprobe/internal/scanner"
)

func httpOutcome(status int, body string) *scanner.Outcome {
	return &scanner.Outcome{
		URL:           "http://x.test/admin",
		Kind:          scanner.KindHTTP,
		StatusCode:    status,
		ContentLength: int64(len(body)),
		Body:          []byte(body),
	}
}

func TestCompletedRule(t *testing.T) {
	r := NewCompletedRule()

	assert.False(t, r.Reject(httpOutcome(200, "ok")))
	assert.True(t, r.Reject(&scanner.Outcome{Kind: scanner.KindTimeout}))
	assert.True(t, r.Reject(&scanner.Outcome{Kind: scanner.KindNetworkError}))
}

func TestIncludeStatusRule(t *testing.T) {
	r := NewIncludeStatusRule([]int{200, 301})

	assert.False(t, r.Reject(httpOutcome(200, "ok")))
	assert.False(t, r.Reject(httpOutcome(301, "moved")))
	assert.True(t, r.Reject(httpOutcome(404, "nope")))
}

func TestIncludeStatusRuleEmptyAllowsAll(t *testing.T) {
	r := NewIncludeStatusRule(nil)

	assert.False(t, r.Reject(httpOutcome(404, "nope")))
	assert.False(t, r.Reject(httpOutcome(500, "boom")))
}

func TestExcludeStatusRule(t *testing.T) {
	r := NewExcludeStatusRule([]int{404, 500})

	assert.True(t, r.Reject(httpOutcome(404, "nope")))
	assert.True(t, r.Reject(httpOutcome(500, "boom")))
	assert.False(t, r.Reject(httpOutcome(200, "ok")))
}

func TestMinLengthRuleStrictBoundary(t *testing.T) {
	r := NewMinLengthRule(100)

	below := httpOutcome(200, "")
	below.ContentLength = 99
	assert.True(t, r.Reject(below))

	exact := httpOutcome(200, "")
	exact.ContentLength = 100
	assert.True(t, r.Reject(exact), "content exactly at the threshold is rejected")

	above := httpOutcome(200, "")
	above.ContentLength = 101
	assert.False(t, r.Reject(above))
}

func TestKeywordRuleCaseFolds(t *testing.T) {
	// Bodies arrive lower-cased from the prober; needles may be any case.
	r := NewKeywordRule([]string{"Not Found", "FORBIDDEN"})

	assert.True(t, r.Reject(httpOutcome(200, "<h1>page not found</h1>")))
	assert.True(t, r.Reject(httpOutcome(200, "access forbidden here")))
	assert.False(t, r.Reject(httpOutcome(200, "welcome to the admin panel")))
}

func TestChainShortCircuits(t *testing.T) {
	chain := NewChain()
	chain.Add(NewExcludeStatusRule([]int{404}))
	chain.Add(NewMinLengthRule(0))

	rejected, rule := chain.Apply(httpOutcome(404, ""))
	assert.True(t, rejected)
	assert.Equal(t, "exclude-status", rule, "earlier rule rejects first")
}

func TestChainAcceptsWhenNoRuleRejects(t *testing.T) {
	chain := NewChain()
	chain.Add(NewCompletedRule())
	chain.Add(NewExcludeStatusRule([]int{404}))
	chain.Add(NewMinLengthRule(5))

	rejected, rule := chain.Apply(httpOutcome(200, "a body longer than five"))
	assert.False(t, rejected)
	assert.Empty(t, rule)
}

func TestChainNeverAcceptsFailures(t *testing.T) {
	// Even a chain with no other configured rule rejects timeouts and
	// network errors through the completed-exchange guard.
	chain := NewChain()
	chain.Add(NewCompletedRule())

	for _, kind := range []scanner.Kind{scanner.KindTimeout, scanner.KindNetworkError} {
		rejected, rule := chain.Apply(&scanner.Outcome{URL: "http://x.test/a", Kind: kind})
		assert.True(t, rejected, "kind %s must be rejected", kind)
		assert.Equal(t, "incomplete", rule)
	}
}

func TestChainIsIdempotent(t *testing.T) {
	chain := NewChain()
	chain.Add(NewCompletedRule())
	chain.Add(NewExcludeStatusRule([]int{404}))
	chain.Add(NewMinLengthRule(10))
	chain.Add(NewKeywordRule([]string{"error"}))

	outcome := httpOutcome(200, "a perfectly fine response body")
	first, _ := chain.Apply(outcome)
	second, _ := chain.Apply(outcome)
	assert.Equal(t, first, second)
}

func TestChainFlippingAnySingleConditionRejects(t *testing.T) {
	build := func() *Chain {
		chain := NewChain()
		chain.Add(NewCompletedRule())
		chain.Add(NewIncludeStatusRule([]int{200}))
		chain.Add(NewExcludeStatusRule([]int{404}))
		chain.Add(NewMinLengthRule(10))
		chain.Add(NewKeywordRule([]string{"denied"}))
		return chain
	}

	good := httpOutcome(200, "this body is long enough and clean")
	rejected, _ := build().Apply(good)
	assert.False(t, rejected, "baseline outcome must be accepted")

	wrongStatus := httpOutcome(301, "this body is long enough and clean")
	rejected, _ = build().Apply(wrongStatus)
	assert.True(t, rejected)

	tooShort := httpOutcome(200, "short")
	rejected, _ = build().Apply(tooShort)
	assert.True(t, rejected)

	keyword := httpOutcome(200, "this body is long enough but access denied")
	rejected, _ = build().Apply(keyword)
	assert.True(t, rejected)
}
