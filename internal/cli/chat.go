package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Veraticus/acefi/internal/service"
)

// Commands that end a chat.
var exitCommands = []string{"/quit", "/exit", "exit", "quit"}

// ChatLoop runs a line-based conversation.
type ChatLoop struct {
	Chat   service.ChatService
	In     *LineReader
	Out    io.Writer
	Prompt string
}

// Run reads lines until EOF, an exit command, or ctx ends. Blank lines are
// ignored. It returns the number of messages sent.
func (c ChatLoop) Run(ctx context.Context) (int, error) {
	prompt := c.Prompt
	if prompt == "" {
		prompt = "You"
	}

	sent := 0
	for {
		if _, err := fmt.Fprint(c.Out, FormatPrompt(prompt)); err != nil {
			return sent, err
		}

		line, err := c.In.ReadLine(ctx)
		switch {
		case errors.Is(err, io.EOF):
			_, err = fmt.Fprintln(c.Out)
			return sent, err
		case errors.Is(err, ErrInputCancelled):
			return sent, nil
		case err != nil:
			return sent, fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			continue
		}
		if isExit(line) {
			return sent, nil
		}

		reply := c.Chat.Send(ctx, line)
		sent++
		if ctx.Err() != nil {
			return sent, nil
		}
		if _, err := fmt.Fprintln(c.Out, FormatAssistant(reply)); err != nil {
			return sent, err
		}
	}
}

func isExit(line string) bool {
	return slices.Contains(exitCommands, strings.ToLower(line))
}
