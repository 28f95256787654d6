package tui

import (
	"log/slog"
	"time"

	"github.com/Veraticus/acefi/internal/service"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/Veraticus/acefi/internal/wizard"
)

// Config holds TUI configuration.
type Config struct {
	Theme  themes.Theme
	Banks  service.BankService
	Chat   service.ChatService // nil means placeholder replies on Home
	Logger *slog.Logger
	Pacing wizard.Pacing
	// ReplyDelay paces the placeholder reply on Home.
	ReplyDelay time.Duration
	// ScrollSettle is how long transcripts wait before scrolling to the end.
	ScrollSettle   time.Duration
	Width          int
	Height         int
	SkipOnboarding bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Pacing:       wizard.DefaultPacing(),
		ReplyDelay:   time.Second,
		ScrollSettle: 100 * time.Millisecond,
		Width:        80,
		Height:       24,
	}
}

// WithBankService sets the bank directory and account resolver.
func WithBankService(banks service.BankService) Option {
	return func(c *Config) {
		c.Banks = banks
	}
}

// WithChatService sets the assistant used on the home screen.
func WithChatService(chat service.ChatService) Option {
	return func(c *Config) {
		c.Chat = chat
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithPacing sets the conversational delays.
func WithPacing(p wizard.Pacing, replyDelay, scrollSettle time.Duration) Option {
	return func(c *Config) {
		c.Pacing = p
		c.ReplyDelay = replyDelay
		c.ScrollSettle = scrollSettle
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithSkipOnboarding starts directly on sign-up.
func WithSkipOnboarding(skip bool) Option {
	return func(c *Config) {
		c.SkipOnboarding = skip
	}
}
