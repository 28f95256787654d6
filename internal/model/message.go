package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single entry in a chat transcript.
type Message struct {
	CreatedAt time.Time
	ID        string // UUIDv7, sortable in creation order
	Text      string
	IsAI      bool
}

// NewMessage creates a message stamped with a fresh creation-order id.
func NewMessage(text string, isAI bool) Message {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		id = uuid.New()
	}

	return Message{
		ID:        id.String(),
		Text:      text,
		IsAI:      isAI,
		CreatedAt: time.Now(),
	}
}
