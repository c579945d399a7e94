package scanner

// Kind discriminates how a probe ended. It replaces sentinel status values
// so code paths can never confuse a transport failure with an HTTP reply.
type Kind int

const (
	// KindHTTP means the exchange completed and StatusCode is valid.
	KindHTTP Kind = iota
	// KindTimeout means the request exceeded the configured deadline.
	KindTimeout
	// KindNetworkError covers DNS, connect, TLS and other transport failures.
	KindNetworkError
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindTimeout:
		return "timeout"
	case KindNetworkError:
		return "network-error"
	default:
		return "unknown"
	}
}

// Target is one absolute URL derived from the base URL and a wordlist entry.
type Target struct {
	URL  string
	Word string
}

// Outcome records the result of probing a single target. Exactly one Outcome
// is produced per consumed target; per-request failures are data, not errors.
// Body holds the lower-cased response bytes so keyword filters can search it
// without re-folding; ContentLength is the raw body length.
type Outcome struct {
	URL           string
	Kind          Kind
	StatusCode    int // valid only when Kind == KindHTTP
	ContentLength int64
	Body          []byte
}

// ScanResult is the accepted subset of an Outcome kept for reporting.
type ScanResult struct {
	URL           string
	StatusCode    int
	ContentLength int64
}
