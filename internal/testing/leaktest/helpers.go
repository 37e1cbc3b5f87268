// Package leaktest detects goroutines left running by a test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
	stableSamples = 10
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count once it settles
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{before: settledCount(0), t: t}
}

// Check fails the test if more than tolerance goroutines remain above the
// baseline after giving them time to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settledCount(g.before + tolerance)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running
func WaitForGoroutines(t *testing.T, target int, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= target {
			return
		}
		time.Sleep(pollInterval)
	}
	t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d",
		runtime.NumGoroutine(), target)
}

// settledCount polls until the count is at or below target, or has been
// unchanged for stableSamples polls, or settleTimeout passes.
// A target of 0 only waits for stability.
func settledCount(target int) int {
	deadline := time.Now().Add(settleTimeout)
	last, same := -1, 0
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if target > 0 && n <= target {
			return n
		}
		if n == last {
			same++
		} else {
			last, same = n, 0
		}
		if same >= stableSamples || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
