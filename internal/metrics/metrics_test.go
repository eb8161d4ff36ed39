package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveFile(t *testing.T) {
	t.Parallel()

	c, err := New("wyhash")
	require.NoError(t, err)

	c.ObserveFile("hashed", 128, 2*time.Millisecond)
	c.ObserveFile("hashed", 0, time.Millisecond)
	c.ObserveFile("failed", 0, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(c.files.WithLabelValues("hashed")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.files.WithLabelValues("failed")))
	require.Equal(t, 128.0, testutil.ToFloat64(c.bytesRead))
	count, err := testutil.GatherAndCount(c.Gatherer(), "filecheck_hash_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCollector_WorkerGauges(t *testing.T) {
	t.Parallel()

	c, err := New("sha256")
	require.NoError(t, err)

	c.SetWorkers(4)
	c.IncActiveWorkers()
	c.IncActiveWorkers()
	c.DecActiveWorkers()

	require.Equal(t, 4.0, testutil.ToFloat64(c.workers))
	require.Equal(t, 1.0, testutil.ToFloat64(c.activeWorkers))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	t.Parallel()

	first, err := New("wyhash")
	require.NoError(t, err)
	second, err := New("wyhash")
	require.NoError(t, err)

	first.ObserveFile("hashed", 1, 0)
	require.Zero(t, testutil.ToFloat64(second.files.WithLabelValues("hashed")))
}

func TestCollector_WriteTextfile(t *testing.T) {
	t.Parallel()

	c, err := New("xxh3")
	require.NoError(t, err)
	c.ObserveFile("hashed", 42, time.Millisecond)
	c.SetWorkers(2)

	path := filepath.Join(t.TempDir(), "filecheck.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, `filecheck_files_total{result="hashed"} 1`)
	require.Contains(t, text, `filecheck_files_total{result="failed"} 0`)
	require.Contains(t, text, "filecheck_bytes_read_total 42")
	require.Contains(t, text, `filecheck_hash_duration_seconds_count{algorithm="xxh3"} 1`)
	require.True(t, strings.Contains(text, "filecheck_workers 2"))
}

func TestCollector_WriteTextfileBadDir(t *testing.T) {
	t.Parallel()

	c, err := New("wyhash")
	require.NoError(t, err)
	err = c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "out.prom"))
	require.ErrorContains(t, err, "write metrics textfile")
}
