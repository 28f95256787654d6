package llm

import (
	"context"
	"net/http"
)

// Role identifies who produced a conversation turn.
type Role string

// Conversation roles. Providers map RoleModel onto their own assistant role.
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message in a conversation.
type Turn struct {
	Role Role
	Text string
}

// Client defines the interface for LLM providers.
type Client interface {
	// Chat returns the model's reply to history, whose last turn is the
	// user's message.
	Chat(ctx context.Context, history []Turn) (string, error)
}

// Config holds provider configuration.
type Config struct {
	HTTPClient  *http.Client // Used by the raw HTTP providers; nil means a pooled default
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string // Overrides the provider endpoint
	Temperature float64
	MaxTokens   int
	RateLimit   int // Requests per minute; 0 disables limiting
}
