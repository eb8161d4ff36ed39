package checksum

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/JakeFAU/filecheck/internal/hash"
)

// workerStats counts what one worker did with its range.
type workerStats struct {
	hashed int
	failed int
	bytes  int64
}

// worker digests the tasks of a single range, in index order.
type worker struct {
	hasher   hash.Hasher
	strict   bool
	reader   *fileReader
	observer Observer
	clock    Clock
	logger   *zap.Logger
}

// run processes tasks, which is the worker's exclusive sub-slice of the run's
// task list. In strict mode the first failure is returned immediately; in
// lenient mode failures are logged and skipped. Cancellation of ctx is
// observed between files.
func (w *worker) run(ctx context.Context, tasks []Task, stats *workerStats) error {
	w.observer.IncActiveWorkers()
	defer w.observer.DecActiveWorkers()

	for i := range tasks {
		if err := ctx.Err(); err != nil {
			w.logger.Debug("worker stopping", zap.Int("remaining", len(tasks)-i), zap.Error(err))
			return err
		}

		started := w.clock.Now()
		digest, n, err := w.reader.digest(ctx, tasks[i].Path, w.hasher)
		elapsed := w.clock.Now().Sub(started)

		if err != nil {
			var taskErr *TaskError
			if !errors.As(err, &taskErr) {
				// Context ended while waiting for a handle slot.
				return err
			}
			stats.failed++
			w.observer.ObserveFile(ResultFailed, 0, elapsed)
			if w.strict {
				return err
			}
			w.logger.Error("hash file failed",
				zap.String("path", tasks[i].Path),
				zap.Stringer("stage", taskErr.Kind),
				zap.Error(taskErr.Err),
			)
			continue
		}

		tasks[i].Digest = digest
		stats.hashed++
		stats.bytes += n
		w.observer.ObserveFile(ResultHashed, n, elapsed)
		w.logger.Debug("file hashed", zap.String("path", tasks[i].Path), zap.Int64("bytes", n))
	}
	return nil
}
