package scanner

import (
	"context"
	"sync"
)

// WorkerConfig holds options for the worker pool.
type WorkerConfig struct {
	Workers int
}

// RunWorkerPool fans the targets out across a fixed set of workers and
// returns a channel of outcomes, closed once every consumed target has
// produced exactly one Outcome. At most Workers probes are in flight at
// any instant. On context cancellation the producer stops feeding and
// in-flight requests fail naturally, so partial results remain readable.
func RunWorkerPool(
	ctx context.Context,
	prober *Prober,
	targets []Target,
	cfg WorkerConfig,
) <-chan Outcome {
	workers := cfg.Workers
	targetsCh := make(chan Target, workers*2)
	outcomesCh := make(chan Outcome, workers*2)

	var wg sync.WaitGroup

	// Producer: feed targets into the channel.
	go func() {
		defer close(targetsCh)
		for _, t := range targets {
			select {
			case targetsCh <- t:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Workers: consume targets, produce outcomes.
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range targetsCh {
				outcome := prober.Probe(ctx, t)
				if outcome.Kind != KindHTTP && ctx.Err() != nil {
					// Aborted by cancellation, not a real probe failure.
					return
				}
				outcomesCh <- outcome
			}
		}()
	}

	// Closer: when all workers finish, close the outcomes channel.
	go func() {
		wg.Wait()
		close(outcomesCh)
	}()

	return outcomesCh
}
