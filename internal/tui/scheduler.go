package tui

import (
	"time"

	"github.com/Veraticus/acefi/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
)

// timerFiredMsg runs a scheduled callback on the event loop.
type timerFiredMsg struct {
	id uint64
}

// teaScheduler implements wizard.Scheduler on top of tea.Tick. Callbacks run
// inside Update when their timerFiredMsg arrives, so they never race with
// other state changes.
type teaScheduler struct {
	timers map[uint64]*teaTimer
	queued []tea.Cmd
	next   uint64
}

type teaTimer struct {
	fn      func()
	stopped bool
}

func (t *teaTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{timers: make(map[uint64]*teaTimer)}
}

// AfterFunc implements wizard.Scheduler. The tick is only started once the
// command returned by drain is handed to the program.
func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) wizard.Timer {
	s.next++
	id := s.next
	t := &teaTimer{fn: fn}
	s.timers[id] = t
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return t
}

// fire runs the callback for id unless it was stopped.
func (s *teaScheduler) fire(id uint64) bool {
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	if t.stopped {
		return false
	}
	t.stopped = true
	t.fn()
	return true
}

// drain returns the ticks scheduled since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
