// Package checksum implements the parallel read-and-hash pipeline.
//
// A run starts from a path-sorted []Task. The Scheduler splits the slice into
// contiguous, non-overlapping ranges and hands each range to exactly one
// worker goroutine, so task digests are written without locks: a worker only
// ever touches the sub-slice it was given. Scheduler.Run returns once every
// worker has returned, after which the task slice is read-only.
//
// Failure policy:
//   - Lenient (default): per-file failures are logged with the path, the
//     task's Digest stays nil, and the worker moves on.
//   - Strict: the first failure cancels the shared context. Workers check the
//     context between files and stop, and Run returns the failure together
//     with a Summary of what was hashed, failed and abandoned.
package checksum
