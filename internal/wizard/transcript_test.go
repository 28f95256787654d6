package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript(t *testing.T) {
	var tr Transcript

	_, ok := tr.Last()
	assert.False(t, ok)

	first := tr.Append("hello", false)
	second := tr.Append("hi there", true)

	require.Equal(t, 2, tr.Len())
	assert.NotEqual(t, first.ID, second.ID)

	msgs := tr.Messages()
	assert.Equal(t, "hello", msgs[0].Text)
	assert.False(t, msgs[0].IsAI)
	assert.True(t, msgs[1].IsAI)

	msgs[0].Text = "changed"
	assert.Equal(t, "hello", tr.Messages()[0].Text)

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, second.ID, last.ID)

	tr.Reset()
	assert.Zero(t, tr.Len())
}
