package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/maxvaer/urlprobe/internal/config"
	"github.com/maxvaer/urlprobe/internal/runner"
	"github.com/maxvaer/urlprobe/pkg/version"
)

var (
	configPath string
	flagOpts   = config.Default()
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:     "urlprobe -u <url> -w <wordlist> [flags]",
	Short:   "Concurrent URL existence prober",
	Version: version.Version,
	Long: `urlprobe issues one HTTP GET per wordlist entry against a base URL under
a bounded concurrency cap, classifies each response against configurable
filters, and writes the surviving matches to a tabular report.

Scans can be driven entirely by flags or by a YAML config file; flags
always override values loaded from the file.`,
	Example: `  urlprobe -u https://example.com -w wordlist.txt
  urlprobe -u https://example.com -w wordlist.txt -x 404,403 -o results.csv
  urlprobe --config scan.yaml
  urlprobe --config scan.yaml -u https://other.example.com
  urlprobe -u https://example.com -w wordlist.txt --min-length 100 --exclude-keyword "not found"`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd.Flags())
		if err != nil {
			return err
		}
		setupLogging(opts)
		if err := config.Validate(opts); err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(cmd.Context(), optionsKey{}, opts))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cmd.Context().Value(optionsKey{}).(*config.Options)
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		_, err := runner.Run(ctx, opts)
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

type optionsKey struct{}

// loadOptions merges defaults, the optional config file, and command-line
// flags, in that precedence order (flags win).
func loadOptions(f *pflag.FlagSet) (*config.Options, error) {
	opts := config.Default()

	path := configPath
	if path == "" {
		// Pick up a config.yaml next to the invocation if one exists.
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}

	// Flags set on the command line override the file.
	if f.Changed("url") {
		opts.BaseURL = flagOpts.BaseURL
	}
	if f.Changed("wordlist") {
		opts.WordlistPath = flagOpts.WordlistPath
	}
	if f.Changed("user-agent") {
		opts.UserAgent = flagOpts.UserAgent
	}
	if f.Changed("timeout") {
		opts.Timeout = flagOpts.Timeout
	}
	if f.Changed("concurrency") {
		opts.Concurrency = flagOpts.Concurrency
	}
	if f.Changed("rate-limit") {
		opts.RateLimit = flagOpts.RateLimit
	}
	if f.Changed("include-status") {
		opts.IncludeStatus = flagOpts.IncludeStatus
	}
	if f.Changed("exclude-status") {
		opts.ExcludeStatus = flagOpts.ExcludeStatus
	}
	if f.Changed("min-length") {
		opts.MinContentLength = flagOpts.MinContentLength
	}
	if f.Changed("exclude-keyword") {
		opts.ExcludeKeywords = flagOpts.ExcludeKeywords
	}
	if f.Changed("output") {
		opts.OutputFile = flagOpts.OutputFile
	}
	if f.Changed("format") {
		opts.Format = flagOpts.Format
	}
	if f.Changed("sort") {
		opts.SortBy = flagOpts.SortBy
	}
	if f.Changed("quiet") {
		opts.Quiet = flagOpts.Quiet
	}
	if f.Changed("no-color") {
		opts.NoColor = flagOpts.NoColor
	}

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		opts.NoColor = true
	}
	return opts, nil
}

func setupLogging(opts *config.Options) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	})

	switch {
	case opts.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbosity > 0:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func init() {
	f := rootCmd.Flags()

	// Target
	f.StringVarP(&flagOpts.BaseURL, "url", "u", "", "Base URL to probe")
	f.StringVarP(&flagOpts.WordlistPath, "wordlist", "w", "", "Wordlist path (one path segment per line)")
	f.StringVarP(&configPath, "config", "c", "", "YAML config file (default: config.yaml if present)")

	// Scanner
	f.IntVarP(&flagOpts.Concurrency, "concurrency", "t", flagOpts.Concurrency, "Maximum simultaneous in-flight probes")
	f.DurationVar(&flagOpts.Timeout, "timeout", flagOpts.Timeout, "Per-request timeout")
	f.StringVar(&flagOpts.UserAgent, "user-agent", flagOpts.UserAgent, "User-Agent header sent with every request")
	f.IntVar(&flagOpts.RateLimit, "rate-limit", 0, "Max requests per second (0 = unlimited)")

	// Filters
	f.VarP(&intSliceValue{target: &flagOpts.IncludeStatus}, "include-status", "i", "Only accept these status codes (comma-separated)")
	f.VarP(&intSliceValue{target: &flagOpts.ExcludeStatus}, "exclude-status", "x", "Reject these status codes (comma-separated)")
	f.Int64Var(&flagOpts.MinContentLength, "min-length", 0, "Reject responses unless body length exceeds this")
	f.StringSliceVar(&flagOpts.ExcludeKeywords, "exclude-keyword", nil, "Reject responses whose body contains this keyword (repeatable, case-insensitive)")

	// Output
	f.StringVarP(&flagOpts.OutputFile, "output", "o", "", "Report file path (default: stdout)")
	f.StringVar(&flagOpts.Format, "format", flagOpts.Format, "Report format: csv, json, text")
	f.StringVar(&flagOpts.SortBy, "sort", flagOpts.SortBy, "Report order: status, url, size")
	f.BoolVarP(&flagOpts.Quiet, "quiet", "q", false, "Minimal output")
	f.BoolVar(&flagOpts.NoColor, "no-color", false, "Disable colored output")
	f.CountVarP(&verbosity, "verbose", "v", "Verbose logging (debug level)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// intSliceValue implements pflag.Value for comma-separated int slices.
type intSliceValue struct {
	target *[]int
}

func (v *intSliceValue) String() string {
	if v.target == nil || len(*v.target) == 0 {
		return ""
	}
	parts := make([]string, len(*v.target))
	for i, val := range *v.target {
		parts[i] = strconv.Itoa(val)
	}
	return strings.Join(parts, ",")
}

func (v *intSliceValue) Set(s string) error {
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid status code %q: %w", p, err)
		}
		*v.target = append(*v.target, n)
	}
	return nil
}

func (v *intSliceValue) Type() string { return "ints" }
