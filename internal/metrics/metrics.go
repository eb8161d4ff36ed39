// Package metrics exposes Prometheus collectors for checksum runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns the collectors for a single run. It implements
// checksum.Observer and is safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	files         *prometheus.CounterVec
	bytesRead     prometheus.Counter
	hashDuration  prometheus.Observer
	workers       prometheus.Gauge
	activeWorkers prometheus.Gauge
}

// New registers the run collectors on a fresh registry. algorithm labels the
// duration histogram.
func New(algorithm string) (*Collector, error) {
	reg := prometheus.NewRegistry()
	files := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "filecheck_files_total",
		Help: "Files processed, labeled by result.",
	}, []string{"result"})
	bytesRead := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "filecheck_bytes_read_total",
		Help: "Bytes read from hashed files.",
	})
	hashDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "filecheck_hash_duration_seconds",
		Help:    "Time to read and hash one file, labeled by algorithm.",
		Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"algorithm"})
	workers := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "filecheck_workers",
		Help: "Worker pool size for the run.",
	})
	activeWorkers := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "filecheck_active_workers",
		Help: "Workers currently processing their range.",
	})

	for _, c := range []prometheus.Collector{files, bytesRead, hashDuration, workers, activeWorkers} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	// Pre-create both series so a clean run still reports failed=0.
	files.WithLabelValues("hashed")
	files.WithLabelValues("failed")

	return &Collector{
		registry:      reg,
		files:         files,
		bytesRead:     bytesRead,
		hashDuration:  hashDuration.WithLabelValues(algorithm),
		workers:       workers,
		activeWorkers: activeWorkers,
	}, nil
}

// ObserveFile records one processed file.
func (c *Collector) ObserveFile(result string, bytes int64, elapsed time.Duration) {
	c.files.WithLabelValues(result).Inc()
	if bytes > 0 {
		c.bytesRead.Add(float64(bytes))
	}
	c.hashDuration.Observe(elapsed.Seconds())
}

// SetWorkers records the pool size.
func (c *Collector) SetWorkers(n int) {
	c.workers.Set(float64(n))
}

// IncActiveWorkers increments the active workers gauge.
func (c *Collector) IncActiveWorkers() {
	c.activeWorkers.Inc()
}

// DecActiveWorkers decrements the active workers gauge.
func (c *Collector) DecActiveWorkers() {
	c.activeWorkers.Dec()
}

// Gatherer exposes the run registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile writes the registry in the Prometheus text format, suitable
// for the node_exporter textfile collector. The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
