package checksum

// Range is a half-open [Start, End) span of task indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of tasks in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// WorkerCount clamps the requested worker count to [1, tasks]. It returns 0
// only when there are no tasks.
func WorkerCount(requested, tasks int) int {
	if tasks <= 0 {
		return 0
	}
	if requested < 1 {
		requested = 1
	}
	if requested > tasks {
		requested = tasks
	}
	return requested
}

// Partition splits n tasks into contiguous ranges, one per worker. Every
// range holds floor(n/workers) tasks except the last, which absorbs the
// remainder. workers is clamped with WorkerCount first, so no range is empty.
func Partition(n, workers int) []Range {
	workers = WorkerCount(workers, n)
	if workers == 0 {
		return nil
	}
	chunk := n / workers
	ranges := make([]Range, 0, workers)
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if i == workers-1 {
			end = n
		}
		ranges = append(ranges, Range{Start: start, End: end})
	}
	return ranges
}
