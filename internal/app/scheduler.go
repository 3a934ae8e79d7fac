package app

import "time"

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler arms one-shot callbacks. Sessions take one so tests can drive
// time by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// WallClock schedules callbacks on real timers.
func WallClock() Scheduler {
	return wallClock{}
}

// Timing holds the per-question clock settings.
type Timing struct {
	QuestionSeconds int
	TickInterval    time.Duration
	RevealDelay     time.Duration
}

// DefaultTiming is 20 one-second ticks per question and a 1.5s reveal.
func DefaultTiming() Timing {
	return Timing{
		QuestionSeconds: 20,
		TickInterval:    time.Second,
		RevealDelay:     1500 * time.Millisecond,
	}
}

func (t Timing) withDefaults() Timing {
	def := DefaultTiming()
	if t.QuestionSeconds <= 0 {
		t.QuestionSeconds = def.QuestionSeconds
	}
	if t.TickInterval <= 0 {
		t.TickInterval = def.TickInterval
	}
	if t.RevealDelay <= 0 {
		t.RevealDelay = def.RevealDelay
	}
	return t
}
