package testutil

import (
	"sort"
	"sync"
	"time"

	"football-quiz/internal/app"
)

// FakeScheduler is an app.Scheduler driven by Advance. Callbacks run on the
// goroutine that calls Advance, in due-time order.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*FakeTimer
}

// FakeTimer is a callback armed on a FakeScheduler.
type FakeTimer struct {
	s       *FakeScheduler
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// NewFakeScheduler returns a scheduler at time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc arms f to run once d has elapsed on the fake clock.
func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) app.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &FakeTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Stop cancels the timer; it reports whether the call stopped a pending timer.
func (t *FakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d, firing every callback that falls due.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.at
		next.fired = true
		s.mu.Unlock()
		next.f()
	}
}

// Pending counts armed timers that have neither fired nor been stopped.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (s *FakeScheduler) nextDueLocked(target time.Duration) *FakeTimer {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
	sort.Slice(s.timers, func(i, j int) bool {
		if s.timers[i].at != s.timers[j].at {
			return s.timers[i].at < s.timers[j].at
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	if len(s.timers) == 0 || s.timers[0].at > target {
		return nil
	}
	return s.timers[0]
}
