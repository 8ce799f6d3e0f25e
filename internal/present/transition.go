package present

import (
	"sync"
	"time"
)

// DefaultLockDuration is the interaction cool-down after a snapshot or
// highlight change.
const DefaultLockDuration = 350 * time.Millisecond

// Scheduler schedules a single deferred call. AfterFunc returns a
// cancel function; cancelling after the callback has fired is a no-op.
// The seam exists so tests can drive timers deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// realScheduler backs Scheduler with time.AfterFunc.
type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// NewScheduler returns the production Scheduler.
func NewScheduler() Scheduler {
	return realScheduler{}
}

// TransitionController guards interaction during graph-snapshot swaps.
// Two states: idle and locked. Begin locks and arms a timer; the timer
// unlocks. Re-entrant Begin calls restart the timer, so the latest
// change always wins. The lock is cosmetic: it suppresses clicks, it
// never blocks data updates.
type TransitionController struct {
	mu       sync.Mutex
	locked   bool
	cancel   func()
	duration time.Duration
	sched    Scheduler
}

// NewTransitionController creates a controller with the given lock
// duration. A non-positive duration falls back to DefaultLockDuration;
// a nil scheduler falls back to the production one.
func NewTransitionController(d time.Duration, sched Scheduler) *TransitionController {
	if d <= 0 {
		d = DefaultLockDuration
	}
	if sched == nil {
		sched = NewScheduler()
	}
	return &TransitionController{duration: d, sched: sched}
}

// Begin enters the locked state and (re)starts the unlock timer.
func (t *TransitionController) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	t.locked = true
	t.cancel = t.sched.AfterFunc(t.duration, t.unlock)
}

func (t *TransitionController) unlock() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locked = false
	t.cancel = nil
}

// Locked reports whether interaction is currently suppressed.
func (t *TransitionController) Locked() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.locked
}

// Close cancels any pending unlock timer and leaves the controller
// unlocked. Safe to call more than once.
func (t *TransitionController) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.locked = false
}
