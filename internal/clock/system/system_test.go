// Package system exercises the real-time clock adapter.
package system

import (
	"testing"
	"time"
)

// TestClockNowCurrent ensures the clock tracks the wall clock.
func TestClockNowCurrent(t *testing.T) {
	t.Parallel()

	clk := New()
	before := time.Now().Add(-time.Second)
	got := clk.Now()
	after := time.Now().Add(time.Second)

	if got.Before(before) || got.After(after) {
		t.Fatalf("expected %v to be between %v and %v", got, before, after)
	}
}

// TestClockElapsedNonNegative checks durations between successive calls.
func TestClockElapsedNonNegative(t *testing.T) {
	t.Parallel()

	clk := New()
	first := clk.Now()
	second := clk.Now()
	if d := second.Sub(first); d < 0 {
		t.Fatalf("expected non-negative elapsed time, got %v", d)
	}
}
