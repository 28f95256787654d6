package llm

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/Veraticus/acefi/internal/common"
)

// FallbackReply is returned by Session.Send when the provider fails.
const FallbackReply = "I apologize, but I encountered an error. Please try again."

// DefaultPreamble primes the assistant before the first user message.
var DefaultPreamble = []Turn{
	{
		Role: RoleUser,
		Text: "You are an AI assistant for a crypto exchange app called Ace-Fi. You should be friendly and professional. Keep your responses concise.",
	},
	{
		Role: RoleModel,
		Text: "I understand. I will act as a friendly and professional AI assistant for Ace-Fi, keeping my responses concise and focused on helping users with their crypto exchange needs.",
	},
}

// Session is an ongoing conversation with a fixed preamble. It implements
// service.ChatService.
type Session struct {
	client  Client
	logger  *slog.Logger
	history []Turn
	mu      sync.Mutex
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPreamble replaces DefaultPreamble.
func WithPreamble(turns []Turn) SessionOption {
	return func(s *Session) {
		s.history = append([]Turn(nil), turns...)
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = common.ComponentLogger(logger, "llm")
	}
}

// NewSession starts a conversation seeded with the preamble.
func NewSession(client Client, opts ...SessionOption) *Session {
	s := &Session{
		client:  client,
		history: append([]Turn(nil), DefaultPreamble...),
		logger:  common.ComponentLogger(nil, "llm"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send returns the model's reply to text. Failed exchanges are not recorded
// and yield FallbackReply.
func (s *Session) Send(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	request := make([]Turn, 0, len(s.history)+1)
	request = append(request, s.history...)
	request = append(request, Turn{Role: RoleUser, Text: text})

	reply, err := s.client.Chat(ctx, request)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = common.ErrNoReply
	}
	if err != nil {
		s.logger.Error("Failed to generate AI response", "error", err)
		return FallbackReply
	}

	s.history = append(request, Turn{Role: RoleModel, Text: reply})
	return reply
}

// History returns a copy of the recorded conversation, preamble included.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Turn(nil), s.history...)
}
