package output

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

// Progress tracks and displays scan progress on stderr.
type Progress struct {
	total  int
	tested atomic.Int64
	found  atomic.Int64
	errors atomic.Int64
	start  time.Time
	done   chan struct{}
	quiet  bool
}

// NewProgress creates a progress tracker. The display is suppressed in
// quiet mode and when stderr is not a terminal, so piped output stays
// clean. Call Start() to begin display updates.
func NewProgress(total int, quiet bool) *Progress {
	return &Progress{
		total: total,
		start: time.Now(),
		done:  make(chan struct{}),
		quiet: quiet || !term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Start begins periodically printing progress to stderr.
func (p *Progress) Start() {
	if p.quiet {
		return
	}
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.print()
			case <-p.done:
				p.print()
				fmt.Fprint(os.Stderr, "\n")
				return
			}
		}
	}()
}

// IncrementTested records a completed probe.
func (p *Progress) IncrementTested() {
	p.tested.Add(1)
}

// IncrementFound records an accepted result.
func (p *Progress) IncrementFound() {
	p.found.Add(1)
}

// IncrementErrors records a failed probe.
func (p *Progress) IncrementErrors() {
	p.errors.Add(1)
}

// Stop ends the progress display.
func (p *Progress) Stop() {
	close(p.done)
}

func (p *Progress) print() {
	tested := p.tested.Load()
	elapsed := time.Since(p.start).Seconds()
	rate := float64(0)
	if elapsed > 0 {
		rate = float64(tested) / elapsed
	}

	pct := float64(0)
	if p.total > 0 {
		pct = float64(tested) / float64(p.total) * 100
	}

	eta := ""
	if rate > 0 && tested < int64(p.total) {
		remaining := float64(int64(p.total)-tested) / rate
		eta = fmt.Sprintf("ETA: %s", time.Duration(remaining*float64(time.Second)).Round(time.Second))
	}

	fmt.Fprintf(os.Stderr, "\r\033[K[%3.0f%%] %d/%d | %.0f req/s | Found: %d | Errors: %d | %s",
		pct, tested, p.total, rate,
		p.found.Load(), p.errors.Load(), eta)
}
