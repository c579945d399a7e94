package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/maxvaer/urlprobe/internal/config"
	"github.com/maxvaer/urlprobe/internal/filter"
	"github.com/maxvaer/urlprobe/internal/output"
	"github.com/maxvaer/urlprobe/internal/scanner"
	"github.com/maxvaer/urlprobe/internal/wordlist"
)

// Phase is the lifecycle state of one scan run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoadingWordlist
	PhaseScanning
	PhaseSummarizing
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoadingWordlist:
		return "loading-wordlist"
	case PhaseScanning:
		return "scanning"
	case PhaseSummarizing:
		return "summarizing"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type run struct {
	phase Phase
}

func (r *run) setPhase(p Phase) {
	log.Debug().Stringer("from", r.phase).Stringer("to", p).Msg("phase transition")
	r.phase = p
}

// Run executes the full scan pipeline: wordlist, target generation,
// bounded-concurrency probing, classification, aggregation, report.
// Pre-scan failures (config, wordlist) abort before any network activity.
// Per-request failures never abort the scan. The returned summary is
// valid whenever the scanning phase was reached, even on a partial run.
func Run(ctx context.Context, opts *config.Options) (output.Summary, error) {
	r := &run{phase: PhaseIdle}

	r.setPhase(PhaseLoadingWordlist)

	base, err := scanner.NormalizeBase(opts.BaseURL)
	if err != nil {
		r.setPhase(PhaseFailed)
		return output.Summary{}, err
	}

	words, err := wordlist.Load(opts.WordlistPath)
	if err != nil {
		r.setPhase(PhaseFailed)
		return output.Summary{}, fmt.Errorf("loading wordlist: %w", err)
	}

	targets := scanner.BuildTargets(base, words)
	prober := scanner.NewProber(opts)
	chain := buildChain(opts)

	log.Info().
		Str("target", base).
		Int("words", len(words)).
		Int("concurrency", opts.Concurrency).
		Dur("timeout", opts.Timeout).
		Msg("starting scan")

	r.setPhase(PhaseScanning)
	start := time.Now()

	progress := output.NewProgress(len(targets), opts.Quiet)
	progress.Start()

	outcomes := scanner.RunWorkerPool(ctx, prober, targets, scanner.WorkerConfig{
		Workers: opts.Concurrency,
	})

	// Single aggregating loop: the only place counters are updated and
	// results appended, so no locking is needed on the hot path.
	var summary output.Summary
	var results []scanner.ScanResult

	for outcome := range outcomes {
		summary.Tested++
		progress.IncrementTested()

		if outcome.Kind != scanner.KindHTTP {
			summary.Errors++
			progress.IncrementErrors()
		}

		rejected, rule := chain.Apply(&outcome)
		if rejected {
			log.Debug().Str("url", outcome.URL).Str("rule", rule).Msg("rejected")
			continue
		}

		summary.Found++
		progress.IncrementFound()
		results = append(results, scanner.ScanResult{
			URL:           outcome.URL,
			StatusCode:    outcome.StatusCode,
			ContentLength: outcome.ContentLength,
		})

		log.Info().
			Str("url", outcome.URL).
			Int("status", outcome.StatusCode).
			Int64("size", outcome.ContentLength).
			Msg("found")
	}

	progress.Stop()

	r.setPhase(PhaseSummarizing)
	summary.Elapsed = time.Since(start)
	output.SortResults(results, opts.SortBy)

	if ctx.Err() != nil {
		log.Warn().Msg("scan interrupted, reporting partial results")
	}
	log.Info().
		Int("tested", summary.Tested).
		Int("found", summary.Found).
		Int("errors", summary.Errors).
		Dur("elapsed", summary.Elapsed).
		Msg("scan complete")

	// The report is written last so a write failure can never lose the
	// summary above; gathered counts are already on the operator's screen.
	if err := writeReport(opts, results, summary); err != nil {
		r.setPhase(PhaseFailed)
		return summary, fmt.Errorf("writing report: %w", err)
	}

	r.setPhase(PhaseDone)
	return summary, nil
}

// buildChain assembles the classification rules in their fixed evaluation
// order. The incomplete-exchange guard always runs first so timeouts and
// network errors can never be accepted.
func buildChain(opts *config.Options) *filter.Chain {
	chain := filter.NewChain()
	chain.Add(filter.NewCompletedRule())
	if len(opts.IncludeStatus) > 0 {
		chain.Add(filter.NewIncludeStatusRule(opts.IncludeStatus))
	}
	if len(opts.ExcludeStatus) > 0 {
		chain.Add(filter.NewExcludeStatusRule(opts.ExcludeStatus))
	}
	chain.Add(filter.NewMinLengthRule(opts.MinContentLength))
	if len(opts.ExcludeKeywords) > 0 {
		chain.Add(filter.NewKeywordRule(opts.ExcludeKeywords))
	}
	return chain
}

// writeReport renders the accepted results in their final presentation
// order. With zero accepted results no file is created.
func writeReport(opts *config.Options, results []scanner.ScanResult, summary output.Summary) error {
	if len(results) == 0 {
		log.Info().Msg("no accepted results, skipping report")
		return nil
	}

	out, err := createWriter(opts)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := out.WriteHeader(); err != nil {
		return err
	}
	for i := range results {
		if err := out.WriteResult(&results[i]); err != nil {
			return err
		}
	}
	if err := out.WriteFooter(summary); err != nil {
		return err
	}

	if opts.OutputFile != "" {
		log.Info().Str("file", opts.OutputFile).Int("results", len(results)).Msg("report written")
	}
	return nil
}

func createWriter(opts *config.Options) (output.Writer, error) {
	switch opts.Format {
	case "json":
		return output.NewJSONWriter(opts.OutputFile)
	case "text":
		return output.NewTextWriter(opts.OutputFile, opts.NoColor, opts.Quiet)
	default:
		return output.NewCSVWriter(opts.OutputFile)
	}
}
