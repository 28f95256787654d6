package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/service"
	"github.com/Veraticus/acefi/internal/wizard"
)

// PlaceholderReply is the canned reply used when no assistant is configured.
const PlaceholderReply = "I'm your AI assistant. How can I help you today?"

// DefaultReplyDelay is how long the placeholder reply takes.
const DefaultReplyDelay = time.Second

// HomeOptions configures Home.
type HomeOptions struct {
	Scheduler wizard.Scheduler
	// Chat answers messages. When nil, every message gets PlaceholderReply.
	Chat       service.ChatService
	Logger     *slog.Logger
	ReplyDelay time.Duration
}

// Home is the post-sign-up assistant chat.
type Home struct {
	chat       service.ChatService
	logger     *slog.Logger
	timers     *wizard.Timers
	pending    *wizard.Request
	transcript wizard.Transcript
	replyDelay time.Duration
	waiting    int
	closed     bool
}

// NewHome creates an empty chat.
func NewHome(opts HomeOptions) *Home {
	if opts.Scheduler == nil {
		panic("app: HomeOptions.Scheduler is required")
	}
	return &Home{
		chat:       opts.Chat,
		logger:     common.ComponentLogger(opts.Logger, "home"),
		timers:     wizard.NewTimers(opts.Scheduler),
		replyDelay: opts.ReplyDelay,
	}
}

// Send appends the user's message and starts the reply. With an assistant
// configured the returned request must be run with Reply and fed to
// CompleteReply; otherwise the placeholder arrives on its own and the
// request is nil. Blank messages and messages sent while an assistant reply
// is outstanding are rejected.
func (h *Home) Send(ctx context.Context, text string) (*wizard.Request, bool) {
	if h.closed || strings.TrimSpace(text) == "" {
		return nil, false
	}
	if h.chat != nil && h.pending != nil {
		return nil, false
	}

	h.transcript.Append(text, false)

	if h.chat == nil {
		h.waiting++
		h.timers.After(h.replyDelay, func() {
			h.waiting--
			h.transcript.Append(PlaceholderReply, true)
		})
		return nil, true
	}

	h.pending = wizard.NewRequest(ctx)
	return h.pending, true
}

// CompleteReply appends the assistant's reply for req. Stale requests are
// ignored.
func (h *Home) CompleteReply(req *wizard.Request, reply string) bool {
	if h.closed || req == nil || req != h.pending || req.Cancelled() {
		return false
	}
	h.pending = nil
	req.Cancel()
	if reply == "" {
		h.logger.Warn("Assistant returned an empty reply")
		return false
	}
	h.transcript.Append(reply, true)
	return true
}

// Reply asks chat for the reply to text under req's context.
func Reply(chat service.ChatService, req *wizard.Request, text string) string {
	return chat.Send(req.Context(), text)
}

// Loading reports whether a reply is outstanding.
func (h *Home) Loading() bool {
	return h.waiting > 0 || h.pending != nil
}

// Messages returns the conversation in order.
func (h *Home) Messages() []model.Message {
	return h.transcript.Messages()
}

// Close stops pending replies.
func (h *Home) Close() {
	h.timers.StopAll()
	h.waiting = 0
	if h.pending != nil {
		h.pending.Cancel()
		h.pending = nil
	}
	h.closed = true
}
