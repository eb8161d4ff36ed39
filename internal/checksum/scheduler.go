package checksum

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/JakeFAU/filecheck/internal/hash"
)

// Options control a run. They are read once and never mutated.
type Options struct {
	// Strict stops the whole run at the first per-file failure.
	Strict bool
	// Workers is the requested pool size. Zero means runtime.NumCPU().
	// The effective size is clamped to [1, number of tasks].
	Workers int
	// ConcurrentHandles caps files open at once across all workers.
	// Zero means no cap beyond the worker count.
	ConcurrentHandles int
}

// Summary describes the outcome of a run.
type Summary struct {
	Workers   int
	Tasks     int
	Hashed    int
	Failed    int
	Abandoned int
	Bytes     int64
	Elapsed   time.Duration
}

// Scheduler partitions a sorted task list across a fixed worker pool.
type Scheduler struct {
	hasher   hash.Hasher
	opts     Options
	observer Observer
	clock    Clock
	logger   *zap.Logger
}

// NewScheduler creates a Scheduler. observer, clock and logger may be nil.
func NewScheduler(h hash.Hasher, opts Options, observer Observer, clock Clock, logger *zap.Logger) *Scheduler {
	if observer == nil {
		observer = nopObserver{}
	}
	if clock == nil {
		clock = wallClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		hasher:   h,
		opts:     opts,
		observer: observer,
		clock:    clock,
		logger:   logger,
	}
}

// Run hashes every task and blocks until all workers have returned. tasks
// must already be sorted; Run never reorders it. Each worker receives an
// exclusive sub-slice, so no two goroutines touch the same Task.
//
// In lenient mode Run returns a nil error unless ctx is cancelled. In strict
// mode it returns the first *TaskError; the remaining workers stop before
// their next file and Summary.Abandoned counts what was never attempted.
func (s *Scheduler) Run(ctx context.Context, tasks []Task) (Summary, error) {
	started := s.clock.Now()

	requested := s.opts.Workers
	if requested <= 0 {
		requested = runtime.NumCPU()
	}
	ranges := Partition(len(tasks), requested)
	s.observer.SetWorkers(len(ranges))

	var handles *semaphore.Weighted
	if s.opts.ConcurrentHandles > 0 {
		handles = semaphore.NewWeighted(int64(s.opts.ConcurrentHandles))
	}

	s.logger.Debug("starting workers",
		zap.Int("tasks", len(tasks)),
		zap.Int("workers", len(ranges)),
		zap.String("algorithm", s.hasher.Name()),
		zap.Bool("strict", s.opts.Strict),
		zap.Int("concurrent_handles", s.opts.ConcurrentHandles),
	)

	stats := make([]workerStats, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		w := &worker{
			hasher:   s.hasher,
			strict:   s.opts.Strict,
			reader:   newFileReader(handles),
			observer: s.observer,
			clock:    s.clock,
			logger:   s.logger.Named("worker").With(zap.Int("worker", i)),
		}
		owned := tasks[r.Start:r.End:r.End]
		st := &stats[i]
		g.Go(func() error {
			return w.run(gctx, owned, st)
		})
	}
	err := g.Wait()

	summary := Summary{
		Workers: len(ranges),
		Tasks:   len(tasks),
		Elapsed: s.clock.Now().Sub(started),
	}
	for _, st := range stats {
		summary.Hashed += st.hashed
		summary.Failed += st.failed
		summary.Bytes += st.bytes
	}
	summary.Abandoned = summary.Tasks - summary.Hashed - summary.Failed

	if err != nil {
		return summary, fmt.Errorf("checksum run: %w", err)
	}
	return summary, nil
}
