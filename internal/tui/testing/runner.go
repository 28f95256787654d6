package testing

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCmdTimeout bounds how long Runner waits for a single command.
// Commands that block longer, such as cursor blinks and spinner frames,
// are dropped.
const DefaultCmdTimeout = 50 * time.Millisecond

// Runner drives a tea.Model synchronously: it feeds messages to Update and
// runs the returned commands, feeding their messages back until nothing is
// left or the step budget runs out.
type Runner struct {
	Model   tea.Model
	Seen    []tea.Msg
	Timeout time.Duration
	// MaxSteps caps the number of messages handled per Send.
	MaxSteps int
}

// NewRunner wraps m.
func NewRunner(m tea.Model) *Runner {
	return &Runner{Model: m, Timeout: DefaultCmdTimeout, MaxSteps: 200}
}

// Init runs the model's Init command.
func (r *Runner) Init() *Runner {
	r.run(r.Model.Init())
	return r
}

// Send delivers msgs one at a time, settling after each.
func (r *Runner) Send(msgs ...tea.Msg) *Runner {
	for _, msg := range msgs {
		r.settle([]tea.Msg{msg})
	}
	return r
}

// View renders the model without ANSI codes.
func (r *Runner) View() string {
	return StripANSI(r.Model.View())
}

// SawType reports whether a message of the same type as sample was handled.
func (r *Runner) SawType(sample tea.Msg) bool {
	want := reflect.TypeOf(sample)
	for _, msg := range r.Seen {
		if reflect.TypeOf(msg) == want {
			return true
		}
	}
	return false
}

func (r *Runner) run(cmd tea.Cmd) {
	r.settle(r.exec(cmd))
}

func (r *Runner) settle(queue []tea.Msg) {
	for steps := 0; len(queue) > 0 && steps < r.MaxSteps; steps++ {
		msg := queue[0]
		queue = queue[1:]
		if _, quit := msg.(tea.QuitMsg); quit {
			continue
		}

		r.Seen = append(r.Seen, msg)
		var cmd tea.Cmd
		r.Model, cmd = r.Model.Update(msg)
		queue = append(queue, r.exec(cmd)...)
	}
}

func (r *Runner) exec(cmd tea.Cmd) []tea.Msg {
	return CollectWithin(cmd, r.Timeout)
}

// Collect runs cmd and returns the messages it produces within
// DefaultCmdTimeout, flattening batches.
func Collect(cmd tea.Cmd) []tea.Msg {
	return CollectWithin(cmd, DefaultCmdTimeout)
}

// CollectWithin is Collect with an explicit per-command timeout.
func CollectWithin(cmd tea.Cmd, timeout time.Duration) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(timeout):
		return nil
	}

	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, CollectWithin(c, timeout)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}
