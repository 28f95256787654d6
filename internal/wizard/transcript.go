package wizard

import "github.com/Veraticus/acefi/internal/model"

// Transcript is an append-only, ordered list of chat messages.
type Transcript struct {
	messages []model.Message
}

// Append adds a message and returns it.
func (t *Transcript) Append(text string, isAI bool) model.Message {
	msg := model.NewMessage(text, isAI)
	t.messages = append(t.messages, msg)
	return msg
}

// Messages returns the messages in insertion order.
func (t *Transcript) Messages() []model.Message {
	return append([]model.Message(nil), t.messages...)
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the newest message.
func (t *Transcript) Last() (model.Message, bool) {
	if len(t.messages) == 0 {
		return model.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Reset drops every message. Only a session reset does this.
func (t *Transcript) Reset() {
	t.messages = nil
}
