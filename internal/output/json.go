package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/maxvaer/urlprobe/internal/scanner"
)

type jsonEntry struct {
	URL           string `json:"url"`
	StatusCode    int    `json:"status"`
	ContentLength int64  `json:"size"`
}

// JSONWriter writes the report as a JSON array.
type JSONWriter struct {
	w       io.Writer
	closer  io.Closer
	entries []jsonEntry
}

// NewJSONWriter creates a JSON report writer. If outputFile is empty,
// stdout is used.
func NewJSONWriter(outputFile string) (*JSONWriter, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	}
	return &JSONWriter{w: w, closer: closer}, nil
}

func (j *JSONWriter) WriteHeader() error { return nil }

func (j *JSONWriter) WriteResult(result *scanner.ScanResult) error {
	j.entries = append(j.entries, jsonEntry{
		URL:           result.URL,
		StatusCode:    result.StatusCode,
		ContentLength: result.ContentLength,
	})
	return nil
}

func (j *JSONWriter) WriteFooter(_ Summary) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.entries)
}

func (j *JSONWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}
