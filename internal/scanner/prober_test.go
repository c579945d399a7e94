package scanner

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maxvaer/urlprobe/internal/config"
)

func testProber(timeout time.Duration) *Prober {
	opts := config.Default()
	opts.Timeout = timeout
	opts.UserAgent = "urlprobe-test/1.0"
	return NewProber(opts)
}

func TestProbeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Hello ADMIN Panel")
	}))
	defer srv.Close()

	p := testProber(5 * time.Second)
	outcome := p.Probe(context.Background(), Target{URL: srv.URL + "/admin", Word: "admin"})

	if outcome.Kind != KindHTTP {
		t.Fatalf("expected KindHTTP, got %s", outcome.Kind)
	}
	if outcome.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", outcome.StatusCode)
	}
	if outcome.ContentLength != int64(len("Hello ADMIN Panel")) {
		t.Errorf("expected raw length %d, got %d", len("Hello ADMIN Panel"), outcome.ContentLength)
	}
	if string(outcome.Body) != "hello admin panel" {
		t.Errorf("expected lower-cased body, got %q", outcome.Body)
	}
}

func TestProbeSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	p := testProber(5 * time.Second)
	p.Probe(context.Background(), Target{URL: srv.URL + "/x", Word: "x"})

	if gotUA != "urlprobe-test/1.0" {
		t.Errorf("expected configured User-Agent, got %q", gotUA)
	}
}

func TestProbeDoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
			return
		}
		t.Errorf("redirect target %s should not have been requested", r.URL.Path)
	}))
	defer srv.Close()

	p := testProber(5 * time.Second)
	outcome := p.Probe(context.Background(), Target{URL: srv.URL + "/old", Word: "old"})

	if outcome.Kind != KindHTTP {
		t.Fatalf("expected KindHTTP, got %s", outcome.Kind)
	}
	if outcome.StatusCode != http.StatusMovedPermanently {
		t.Errorf("expected 301 recorded as-is, got %d", outcome.StatusCode)
	}
}

func TestProbeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	p := testProber(100 * time.Millisecond)
	outcome := p.Probe(context.Background(), Target{URL: srv.URL + "/slow", Word: "slow"})

	if outcome.Kind != KindTimeout {
		t.Fatalf("expected KindTimeout, got %s", outcome.Kind)
	}
	if outcome.ContentLength != 0 {
		t.Errorf("expected zero content length on timeout, got %d", outcome.ContentLength)
	}
	if len(outcome.Body) != 0 {
		t.Errorf("expected empty body on timeout, got %d bytes", len(outcome.Body))
	}
}

func TestProbeNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // connection refused from here on

	p := testProber(1 * time.Second)
	outcome := p.Probe(context.Background(), Target{URL: url + "/x", Word: "x"})

	if outcome.Kind != KindNetworkError {
		t.Fatalf("expected KindNetworkError, got %s", outcome.Kind)
	}
	if outcome.ContentLength != 0 {
		t.Errorf("expected zero content length on network error, got %d", outcome.ContentLength)
	}
}
