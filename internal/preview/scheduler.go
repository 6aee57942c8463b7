// Package preview drives the live preview's delayed appearance so that it
// mirrors the load-then-setTimeout reveal of the generated document.
package preview

import (
	"math"
	"sync"
	"time"
)

// Scheduler owns the preview visibility flag and at most one pending timer.
type Scheduler struct {
	mu       sync.Mutex
	clock    Clock
	onShow   func()
	timer    Timer
	deadline time.Time
	gen      uint64
	visible  bool
	stopped  bool
}

// NewScheduler creates a Scheduler. onShow, when non-nil, is invoked from the
// timer goroutine after the flag flips to visible.
func NewScheduler(clock Clock, onShow func()) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	return &Scheduler{clock: clock, onShow: onShow}
}

// Reset hides the preview, cancels any pending timer and re-arms it for
// delaySeconds. A zero (or negative) delay shows the preview immediately
// without a timer.
func (s *Scheduler) Reset(delaySeconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.cancelLocked()
	s.visible = false

	if delaySeconds <= 0 {
		s.visible = true
		return
	}

	d := delayDuration(delaySeconds)
	gen := s.gen
	s.deadline = s.clock.Now().Add(d)
	s.timer = s.clock.AfterFunc(d, func() { s.fire(gen) })
}

// Stop cancels the pending timer and disposes the scheduler. No flip happens
// after Stop returns.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.stopped = true
}

// Visible reports whether the preview button should be shown.
func (s *Scheduler) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Pending reports whether a timer is armed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Remaining returns the time left before the pending timer fires, or zero.
func (s *Scheduler) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil {
		return 0
	}
	left := s.deadline.Sub(s.clock.Now())
	if left < 0 {
		return 0
	}
	return left
}

// cancelLocked stops the current timer and bumps the generation so a
// callback that is already running cannot flip the flag.
func (s *Scheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.deadline = time.Time{}
	s.gen++
}

// delayDuration converts seconds to a Duration, saturating instead of
// wrapping negative on overflow.
func delayDuration(seconds int) time.Duration {
	if int64(seconds) > math.MaxInt64/int64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds) * time.Second
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if s.stopped || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.deadline = time.Time{}
	s.visible = true
	onShow := s.onShow
	s.mu.Unlock()

	if onShow != nil {
		onShow()
	}
}
