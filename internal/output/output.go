package output

import (
	"time"

	"github.com/maxvaer/urlprobe/internal/scanner"
)

// Summary holds the aggregate counts of one scan run.
type Summary struct {
	Tested  int
	Found   int
	Errors  int
	Elapsed time.Duration
}

// Writer is implemented by each report format.
type Writer interface {
	WriteHeader() error
	WriteResult(result *scanner.ScanResult) error
	WriteFooter(summary Summary) error
	Close() error
}
