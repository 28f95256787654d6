package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiSend delivers msg after history and returns the model's response.
type geminiSend func(ctx context.Context, history []*genai.Content, msg genai.Part) (*genai.GenerateContentResponse, error)

// geminiClient implements the Client interface on the Gemini SDK.
type geminiClient struct {
	send geminiSend
}

// newGeminiClient creates a Gemini chat client. cfg.BaseURL overrides the
// API endpoint.
func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is required", common.ErrMissingConfig)
	}

	cfg = withDefaults(cfg, DefaultGeminiModel)

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(float32(cfg.Temperature))
	model.SetMaxOutputTokens(int32(cfg.MaxTokens))

	return &geminiClient{
		send: func(ctx context.Context, history []*genai.Content, msg genai.Part) (*genai.GenerateContentResponse, error) {
			cs := model.StartChat()
			cs.History = history
			return cs.SendMessage(ctx, msg)
		},
	}, nil
}

// Chat replays the earlier turns as chat history and sends the last one.
func (c *geminiClient) Chat(ctx context.Context, history []Turn) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("gemini: empty conversation")
	}

	last := history[len(history)-1]
	resp, err := c.send(ctx, geminiHistory(history[:len(history)-1]), genai.Text(last.Text))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return geminiReply(resp)
}

func geminiHistory(turns []Turn) []*genai.Content {
	out := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		out = append(out, &genai.Content{
			Role:  string(turn.Role),
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return out
}

// geminiReply joins the text parts of the first candidate.
func geminiReply(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: %w", common.ErrNoReply)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	reply := strings.TrimSpace(b.String())
	if reply == "" {
		return "", fmt.Errorf("gemini: %w", common.ErrNoReply)
	}
	return reply, nil
}
