package wizard

import (
	"context"
	"sort"
	"time"

	"github.com/Veraticus/acefi/internal/common"
)

// Timer is a pending callback that can be stopped before it fires.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay on the caller's event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// ManualScheduler is a Scheduler driven by Advance. It is deterministic and
// not safe for concurrent use.
type ManualScheduler struct {
	timers []*manualTimer
	now    time.Duration
	seq    int
}

type manualTimer struct {
	fn      func()
	at      time.Duration
	seq     int
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{fn: fn, at: s.now + d, seq: s.seq}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that falls due,
// in due order. Timers scheduled by callbacks fire too if they fall due
// within the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.fired = true
		next.fn()
	}
	s.now = target
	s.compact()
}

// Flush fires every pending timer, advancing the clock as far as needed.
func (s *ManualScheduler) Flush() {
	for s.Pending() > 0 {
		var latest time.Duration
		for _, t := range s.timers {
			if !t.stopped && !t.fired && t.at > latest {
				latest = t.at
			}
		}
		s.Advance(latest - s.now)
	}
}

// Pending returns the number of timers that have neither fired nor stopped.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Now returns the scheduler's clock.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

func (s *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	due := make([]*manualTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= limit {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (s *ManualScheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.timers = live
}

// Request is an owned handle to an in-flight service call. Completions are
// only accepted for the request a component is currently waiting on, so a
// cancelled or superseded request can never update state.
type Request struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewRequest starts a request whose context derives from parent.
func NewRequest(parent context.Context) *Request {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancelCause(parent)
	return &Request{ctx: ctx, cancel: cancel}
}

// Context is cancelled when the request is.
func (r *Request) Context() context.Context {
	return r.ctx
}

// Cancel aborts the request. It is safe to call more than once.
func (r *Request) Cancel() {
	r.cancel(common.ErrRequestCancelled)
}

// Cancelled reports whether Cancel was called or the parent context ended.
func (r *Request) Cancelled() bool {
	return r.ctx.Err() != nil
}

// Err returns why the request ended: common.ErrRequestCancelled after Cancel,
// the parent's cause otherwise, or nil while it is live.
func (r *Request) Err() error {
	return context.Cause(r.ctx)
}

// Timers tracks the timers a component owns so they can all be stopped at
// teardown.
type Timers struct {
	sched  Scheduler
	timers map[*ownedTimer]struct{}
}

type ownedTimer struct {
	set   *Timers
	inner Timer
}

func (t *ownedTimer) Stop() bool {
	delete(t.set.timers, t)
	return t.inner.Stop()
}

// NewTimers creates an empty group on sched.
func NewTimers(sched Scheduler) *Timers {
	return &Timers{sched: sched, timers: make(map[*ownedTimer]struct{})}
}

// After schedules fn as a timer owned by the group.
func (s *Timers) After(d time.Duration, fn func()) Timer {
	t := &ownedTimer{set: s}
	t.inner = s.sched.AfterFunc(d, func() {
		if _, live := s.timers[t]; !live {
			return
		}
		delete(s.timers, t)
		fn()
	})
	s.timers[t] = struct{}{}
	return t
}

// StopAll stops every timer in the group.
func (s *Timers) StopAll() {
	for t := range s.timers {
		t.inner.Stop()
	}
	clear(s.timers)
}

// Len returns the number of timers still pending.
func (s *Timers) Len() int {
	return len(s.timers)
}
