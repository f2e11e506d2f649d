// Package watcher keeps the latest coverage summary of every watched target.
package watcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/coverage"
	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/LambdaTest/coverage-bridge/pkg/summary"
	"github.com/LambdaTest/coverage-bridge/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Watcher polls the coverage of watched targets
type Watcher struct {
	fetcher core.CoverageFetcher
	logger  lumber.Logger

	mu        sync.RWMutex
	targets   []*core.JobTarget
	summaries map[string][]*core.CoverageSummary
}

// New returns a watcher of targets
func New(fetcher core.CoverageFetcher, logger lumber.Logger, targets []*core.JobTarget) *Watcher {
	w := &Watcher{
		fetcher:   fetcher,
		logger:    logger,
		summaries: make(map[string][]*core.CoverageSummary),
	}
	w.SetTargets(targets)
	return w
}

// SetTargets replaces the watched targets. Summaries of targets no longer
// watched are dropped, the others are kept until the next poll.
func (w *Watcher) SetTargets(targets []*core.JobTarget) {
	w.mu.Lock()
	defer w.mu.Unlock()

	keep := make(map[string]struct{}, len(targets))
	w.targets = make([]*core.JobTarget, 0, len(targets))
	for _, target := range targets {
		t := *target
		w.targets = append(w.targets, &t)
		keep[t.Key()] = struct{}{}
	}
	for key := range w.summaries {
		if _, ok := keep[key]; !ok {
			delete(w.summaries, key)
		}
	}
}

// Targets returns the watched targets
func (w *Watcher) Targets() []*core.JobTarget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*core.JobTarget, len(w.targets))
	copy(out, w.targets)
	return out
}

// Poll fetches every watched target concurrently. A failed target keeps its
// previous summaries and the failure count is reported once all fetches finish.
func (w *Watcher) Poll(ctx context.Context) error {
	targets := w.Targets()
	var (
		failedMu sync.Mutex
		failed   int
	)
	g := new(errgroup.Group)
	g.SetLimit(utils.Min(len(targets), global.ReportFetchConcurrency))
	for _, target := range targets {
		target := target
		g.Go(func() error {
			summaries, err := w.fetch(ctx, target)
			if err != nil {
				w.logger.Errorf("failed to poll coverage of %s, error %v", target.Key(), err)
				failedMu.Lock()
				failed++
				failedMu.Unlock()
				return nil
			}
			w.store(target, summaries)
			return nil
		})
	}
	// nolint: errcheck
	g.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if failed > 0 {
		return fmt.Errorf("coverage poll failed for %d of %d targets", failed, len(targets))
	}
	w.logger.Debugf("polled coverage of %d targets", len(targets))
	return nil
}

func (w *Watcher) fetch(ctx context.Context, target *core.JobTarget) ([]*core.CoverageSummary, error) {
	report, err := w.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}
	summaries := []*core.CoverageSummary{summary.Summarize(target, report)}
	tree, ok := report.(*coverage.TreeReport)
	if !ok || target.Filter == "" {
		return summaries, nil
	}
	selections, err := tree.Select(target.Filter)
	if err != nil {
		return nil, err
	}
	return append(summaries, summary.SummarizeSelections(target, selections)...), nil
}

func (w *Watcher) store(target *core.JobTarget, summaries []*core.CoverageSummary) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, t := range w.targets {
		// the target may have been unwatched while it was fetched
		if t.Key() == target.Key() {
			w.summaries[target.Key()] = summaries
			return
		}
	}
}

// Snapshot returns the latest summaries in target order
func (w *Watcher) Snapshot() []*core.CoverageSummary {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := []*core.CoverageSummary{}
	for _, target := range w.targets {
		out = append(out, w.summaries[target.Key()]...)
	}
	return out
}
