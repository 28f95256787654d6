package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChat struct {
	mock.Mock
}

func (m *mockChat) Send(ctx context.Context, text string) string {
	args := m.Called(ctx, text)
	return args.String(0)
}

func TestChatLoop_Run(t *testing.T) {
	tests := []struct {
		replies  map[string]string
		name     string
		input    string
		contains []string
		sent     int
	}{
		{
			name:     "conversation until EOF",
			input:    "hello\n\nwhat is BTC?\n",
			replies:  map[string]string{"hello": "Hi there!", "what is BTC?": "Bitcoin."},
			contains: []string{"Ace: Hi there!", "Ace: Bitcoin."},
			sent:     2,
		},
		{
			name:     "exit command",
			input:    "hi\n/quit\nignored\n",
			replies:  map[string]string{"hi": "Hello!"},
			contains: []string{"Ace: Hello!"},
			sent:     1,
		},
		{
			name:  "exit is case insensitive",
			input: "EXIT\n",
			sent:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &mockChat{}
			for text, reply := range tt.replies {
				chat.On("Send", mock.Anything, text).Return(reply).Once()
			}

			var out bytes.Buffer
			loop := ChatLoop{
				Chat: chat,
				In:   NewLineReader(strings.NewReader(tt.input)),
				Out:  &out,
			}

			sent, err := loop.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.sent, sent)
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
			chat.AssertExpectations(t)
		})
	}
}

func TestChatLoop_CancelledContext(t *testing.T) {
	chat := &mockChat{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sent, err := ChatLoop{
		Chat:   chat,
		In:     NewLineReader(strings.NewReader("")),
		Out:    &out,
		Prompt: "Sam",
	}.Run(ctx)

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Contains(t, out.String(), "Sam ›")
	chat.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
