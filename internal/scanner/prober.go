package scanner

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/maxvaer/urlprobe/internal/config"
)

// Prober issues single GET probes through one shared HTTP client.
// It is safe for concurrent use by multiple workers.
type Prober struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter // nil = unlimited
}

// NewProber builds a Prober from the scan options. Redirects are never
// followed: a 3xx status is recorded as-is.
func NewProber(opts *config.Options) *Prober {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		DialContext: (&net.Dialer{
			Timeout: opts.Timeout,
		}).DialContext,
		MaxIdleConnsPerHost: opts.Concurrency,
		MaxIdleConns:        opts.Concurrency,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &Prober{
		client:    client,
		userAgent: opts.UserAgent,
		limiter:   limiter,
	}
}

// Probe performs one GET against the target and always returns an Outcome:
// timeouts and network failures become outcome variants, never errors.
// On success the full body is read and lower-cased once.
func (p *Prober) Probe(ctx context.Context, t Target) Outcome {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return Outcome{URL: t.URL, Kind: KindNetworkError}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		return Outcome{URL: t.URL, Kind: KindNetworkError}
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return Outcome{URL: t.URL, Kind: errKind(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{URL: t.URL, Kind: errKind(err)}
	}

	return Outcome{
		URL:           t.URL,
		Kind:          KindHTTP,
		StatusCode:    resp.StatusCode,
		ContentLength: int64(len(body)),
		Body:          bytes.ToLower(body),
	}
}

// errKind separates deadline expiry from other transport failures.
func errKind(err error) Kind {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindNetworkError
}
