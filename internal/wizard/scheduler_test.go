package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualScheduler_FiresInDueOrder(t *testing.T) {
	s := NewManualScheduler()
	var fired []string

	s.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "c") })
	s.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	s.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "b") })

	s.Advance(99 * time.Millisecond)
	assert.Empty(t, fired)

	s.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, s.Pending())

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 1100*time.Millisecond, s.Now())
}

func TestManualScheduler_ChainedTimers(t *testing.T) {
	s := NewManualScheduler()
	var fired []time.Duration

	s.AfterFunc(100*time.Millisecond, func() {
		fired = append(fired, s.Now())
		s.AfterFunc(50*time.Millisecond, func() {
			fired = append(fired, s.Now())
		})
	})

	s.Advance(200 * time.Millisecond)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 150 * time.Millisecond}, fired)
}

func TestManualScheduler_Stop(t *testing.T) {
	s := NewManualScheduler()
	called := false
	timer := s.AfterFunc(10*time.Millisecond, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	s.Flush()
	assert.False(t, called)
	assert.Zero(t, s.Pending())
}

func TestTimers_StopAll(t *testing.T) {
	s := NewManualScheduler()
	set := NewTimers(s)
	calls := 0

	set.After(10*time.Millisecond, func() { calls++ })
	set.After(20*time.Millisecond, func() { calls++ })
	require.Equal(t, 2, set.Len())

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, set.Len())

	set.StopAll()
	s.Flush()
	assert.Equal(t, 1, calls)
	assert.Zero(t, set.Len())
}

func TestRequest_Cancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := NewRequest(parent)
	assert.False(t, req.Cancelled())

	req.Cancel()
	req.Cancel()
	assert.True(t, req.Cancelled())
	assert.ErrorIs(t, req.Context().Err(), context.Canceled)
	assert.ErrorIs(t, req.Err(), common.ErrRequestCancelled)

	child := NewRequest(parent)
	assert.NoError(t, child.Err())
	cancel()
	assert.True(t, child.Cancelled())
	assert.ErrorIs(t, child.Err(), context.Canceled)
	assert.True(t, common.IsCancelled(child.Err()))
}
