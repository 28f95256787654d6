package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Chat(ctx context.Context, history []Turn) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

func TestSession_Send(t *testing.T) {
	client := new(mockClient)
	client.On("Chat", mock.Anything, mock.MatchedBy(func(h []Turn) bool {
		return len(h) == 3 && h[2] == Turn{Role: RoleUser, Text: "What is BTC?"}
	})).Return("Bitcoin is a cryptocurrency.", nil).Once()

	s := NewSession(client, WithLogger(common.DiscardLogger()))
	reply := s.Send(context.Background(), "  What is BTC?  ")

	assert.Equal(t, "Bitcoin is a cryptocurrency.", reply)
	history := s.History()
	require.Len(t, history, 4)
	assert.Equal(t, DefaultPreamble[0], history[0])
	assert.Equal(t, DefaultPreamble[1], history[1])
	assert.Equal(t, Turn{Role: RoleModel, Text: "Bitcoin is a cryptocurrency."}, history[3])
	client.AssertExpectations(t)
}

func TestSession_SendCarriesHistory(t *testing.T) {
	client := new(mockClient)
	client.On("Chat", mock.Anything, mock.MatchedBy(func(h []Turn) bool { return len(h) == 3 })).
		Return("first reply", nil).Once()
	client.On("Chat", mock.Anything, mock.MatchedBy(func(h []Turn) bool {
		return len(h) == 5 && h[3].Text == "first reply" && h[4].Text == "second"
	})).Return("second reply", nil).Once()

	s := NewSession(client, WithLogger(common.DiscardLogger()))
	assert.Equal(t, "first reply", s.Send(context.Background(), "first"))
	assert.Equal(t, "second reply", s.Send(context.Background(), "second"))
	client.AssertExpectations(t)
}

func TestSession_SendFailureReturnsFallback(t *testing.T) {
	tests := []struct {
		err   error
		name  string
		reply string
	}{
		{name: "provider error", err: errors.New("boom")},
		{name: "blank reply", reply: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockClient)
			client.On("Chat", mock.Anything, mock.Anything).Return(tt.reply, tt.err)

			s := NewSession(client, WithLogger(common.DiscardLogger()))
			assert.Equal(t, FallbackReply, s.Send(context.Background(), "hello"))
			assert.Len(t, s.History(), len(DefaultPreamble))
		})
	}
}

func TestSession_SendBlankIsIgnored(t *testing.T) {
	client := new(mockClient)

	s := NewSession(client)
	assert.Empty(t, s.Send(context.Background(), "   "))
	client.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
}

func TestSession_WithPreamble(t *testing.T) {
	preamble := []Turn{{Role: RoleUser, Text: "Be brief."}, {Role: RoleModel, Text: "OK."}}
	s := NewSession(new(mockClient), WithPreamble(preamble))

	assert.Equal(t, preamble, s.History())
}
