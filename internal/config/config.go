package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options holds all configuration for a scan run.
type Options struct {
	// Target
	BaseURL      string
	WordlistPath string

	// Scanner
	UserAgent   string
	Timeout     time.Duration
	Concurrency int
	RateLimit   int // max requests per second, 0 = unlimited

	// Filters
	IncludeStatus    []int
	ExcludeStatus    []int
	MinContentLength int64
	ExcludeKeywords  []string

	// Reporting
	OutputFile string
	Format     string // "csv", "json", "text"
	SortBy     string // "status", "url", "size"

	// Console
	Quiet   bool
	NoColor bool
}

// Default returns the baseline options before any file or flag is applied.
func Default() *Options {
	return &Options{
		UserAgent:   "urlprobe/1.0",
		Timeout:     5 * time.Second,
		Concurrency: 10,
		Format:      "csv",
		SortBy:      "status",
	}
}

// file mirrors the YAML layout of a config file.
type file struct {
	Target struct {
		BaseURL      string `yaml:"base_url"`
		WordlistPath string `yaml:"wordlist_path"`
	} `yaml:"target"`
	Scanner struct {
		UserAgent      string  `yaml:"user_agent"`
		TimeoutSeconds float64 `yaml:"timeout_seconds"`
		Concurrency    int     `yaml:"concurrency"`
		RateLimit      int     `yaml:"rate_limit"`
	} `yaml:"scanner"`
	Filters struct {
		IncludeStatusCodes []int    `yaml:"include_status_codes"`
		ExcludeStatusCodes []int    `yaml:"exclude_status_codes"`
		MinContentLength   int64    `yaml:"min_content_length"`
		ExcludeKeywords    []string `yaml:"exclude_keywords"`
	} `yaml:"filters"`
	Reporting struct {
		OutputFile string `yaml:"output_file"`
		Format     string `yaml:"format"`
		SortBy     string `yaml:"sort_by"`
	} `yaml:"reporting"`
}

// Load reads a YAML config file and merges it over the defaults.
// Command-line flags are applied on top by the caller, so a value set on
// the command line always wins over the file.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	opts := Default()
	if f.Target.BaseURL != "" {
		opts.BaseURL = f.Target.BaseURL
	}
	if f.Target.WordlistPath != "" {
		opts.WordlistPath = f.Target.WordlistPath
	}
	if f.Scanner.UserAgent != "" {
		opts.UserAgent = f.Scanner.UserAgent
	}
	if f.Scanner.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(f.Scanner.TimeoutSeconds * float64(time.Second))
	}
	if f.Scanner.Concurrency > 0 {
		opts.Concurrency = f.Scanner.Concurrency
	}
	if f.Scanner.RateLimit > 0 {
		opts.RateLimit = f.Scanner.RateLimit
	}
	opts.IncludeStatus = f.Filters.IncludeStatusCodes
	opts.ExcludeStatus = f.Filters.ExcludeStatusCodes
	opts.MinContentLength = f.Filters.MinContentLength
	opts.ExcludeKeywords = f.Filters.ExcludeKeywords
	if f.Reporting.OutputFile != "" {
		opts.OutputFile = f.Reporting.OutputFile
	}
	if f.Reporting.Format != "" {
		opts.Format = f.Reporting.Format
	}
	if f.Reporting.SortBy != "" {
		opts.SortBy = f.Reporting.SortBy
	}
	return opts, nil
}

// Validate checks the merged options before a scan starts.
func Validate(opts *Options) error {
	if opts.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if opts.WordlistPath == "" {
		return fmt.Errorf("wordlist path is required")
	}
	if opts.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", opts.Concurrency)
	}
	if opts.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", opts.Timeout)
	}
	if opts.MinContentLength < 0 {
		return fmt.Errorf("min content length must not be negative, got %d", opts.MinContentLength)
	}
	switch opts.Format {
	case "csv", "json", "text":
	default:
		return fmt.Errorf("invalid format %q: must be one of csv, json, text", opts.Format)
	}
	switch opts.SortBy {
	case "status", "url", "size":
	default:
		return fmt.Errorf("invalid sort key %q: must be one of status, url, size", opts.SortBy)
	}
	return nil
}
