package components

import (
	"fmt"
	"testing"

	"github.com/Veraticus/acefi/internal/model"
	tuitest "github.com/Veraticus/acefi/internal/tui/testing"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_ScrollsAfterChange(t *testing.T) {
	m := NewTranscriptModel(themes.Default, 0)
	m.Resize(60, 5)

	msgs := make([]model.Message, 0, 20)
	for i := range 20 {
		msgs = append(msgs, model.NewMessage(fmt.Sprintf("message %d", i), i%2 == 0))
	}

	cmd := m.SetMessages(msgs, false)
	require.NotNil(t, cmd)
	assert.False(t, m.AtBottom(), "scroll waits for the settle delay")

	settled := tuitest.Collect(cmd)
	require.Len(t, settled, 1)
	m, _ = m.Update(settled[0])
	assert.True(t, m.AtBottom())
	assert.Contains(t, tuitest.StripANSI(m.View()), "message 19")

	assert.Nil(t, m.SetMessages(msgs, false), "no change, no scroll")
	assert.NotNil(t, m.SetMessages(msgs, true), "footer change scrolls")
}

func TestTranscript_OnlyLatestChangeScrolls(t *testing.T) {
	m := NewTranscriptModel(themes.Default, 0)
	m.Resize(60, 3)

	first := m.SetMessages([]model.Message{model.NewMessage("one", true)}, false)
	msgs := make([]model.Message, 0, 10)
	for i := range 10 {
		msgs = append(msgs, model.NewMessage(fmt.Sprintf("line %d", i), false))
	}
	second := m.SetMessages(msgs, false)

	stale := tuitest.Collect(first)
	require.Len(t, stale, 1)
	m, _ = m.Update(stale[0])
	assert.False(t, m.AtBottom())

	latest := tuitest.Collect(second)
	require.Len(t, latest, 1)
	m, _ = m.Update(latest[0])
	assert.True(t, m.AtBottom())
}

func TestTranscript_LoadingIndicator(t *testing.T) {
	m := NewTranscriptModel(themes.Default, 0)
	m.Resize(60, 10)
	m.SetMessages([]model.Message{model.NewMessage("hello", false)}, false)

	m.SetLoading(true)
	assert.Contains(t, tuitest.StripANSI(m.View()), "Ace is typing...")

	m.SetLoading(false)
	assert.NotContains(t, tuitest.StripANSI(m.View()), "Ace is typing...")
}
