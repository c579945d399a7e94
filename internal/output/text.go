package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/maxvaer/urlprobe/internal/scanner"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// TextWriter writes a colored tabular report.
type TextWriter struct {
	w       io.Writer
	noColor bool
	quiet   bool
}

// NewTextWriter creates a text report writer. If outputFile is empty,
// stdout is used. noColor disables ANSI escape codes.
func NewTextWriter(outputFile string, noColor, quiet bool) (*TextWriter, error) {
	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w = f
		// Never write escape codes into a file.
		noColor = true
	}
	return &TextWriter{w: w, noColor: noColor, quiet: quiet}, nil
}

func (t *TextWriter) WriteHeader() error {
	dim := "\033[2m"
	reset := colorReset
	if t.noColor {
		dim = ""
		reset = ""
	}
	_, err := fmt.Fprintf(t.w, "%sCode      Size  URL%s\n", dim, reset)
	return err
}

func (t *TextWriter) WriteResult(result *scanner.ScanResult) error {
	color := t.colorForStatus(result.StatusCode)
	reset := colorReset
	if t.noColor {
		color = ""
		reset = ""
	}
	_, err := fmt.Fprintf(t.w, "%s%3d%s  %8d  %s\n",
		color, result.StatusCode, reset,
		result.ContentLength,
		result.URL,
	)
	return err
}

func (t *TextWriter) WriteFooter(summary Summary) error {
	if t.quiet {
		return nil
	}
	_, err := fmt.Fprintf(os.Stderr,
		"\nTested: %d | Found: %d | Errors: %d | Duration: %s\n",
		summary.Tested,
		summary.Found,
		summary.Errors,
		summary.Elapsed.Round(time.Millisecond),
	)
	return err
}

func (t *TextWriter) Close() error {
	if closer, ok := t.w.(io.Closer); ok && t.w != os.Stdout {
		return closer.Close()
	}
	return nil
}

func (t *TextWriter) colorForStatus(code int) string {
	if t.noColor {
		return ""
	}
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	case code >= 500:
		return colorRed
	default:
		return ""
	}
}
