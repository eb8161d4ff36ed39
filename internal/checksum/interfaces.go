package checksum

import "time"

// File outcomes reported to an Observer.
const (
	ResultHashed = "hashed"
	ResultFailed = "failed"
)

// Observer receives pipeline measurements. Implementations must be safe for
// concurrent use; every worker reports into the same Observer.
type Observer interface {
	ObserveFile(result string, bytes int64, elapsed time.Duration)
	SetWorkers(n int)
	IncActiveWorkers()
	DecActiveWorkers()
}

// Clock abstracts time for run timing.
type Clock interface {
	Now() time.Time
}

type nopObserver struct{}

func (nopObserver) ObserveFile(string, int64, time.Duration) {}
func (nopObserver) SetWorkers(int)                          {}
func (nopObserver) IncActiveWorkers()                       {}
func (nopObserver) DecActiveWorkers()                       {}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }
