package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/acefi/internal/config"
	"github.com/Veraticus/acefi/internal/llm"
	"github.com/Veraticus/acefi/internal/service"
	"github.com/Veraticus/acefi/internal/smeplug"
	"github.com/spf13/viper"
)

// loadConfig reads the effective configuration from viper.
func loadConfig() config.Config {
	return config.Load(viper.GetViper())
}

// newBankService builds the SMEPlug client.
func newBankService(cfg config.Config, logger *slog.Logger) (service.BankService, error) {
	if err := cfg.ValidateSMEPlug(); err != nil {
		return nil, fmt.Errorf("smeplug is not configured (set smeplug.token or ACEFI_SMEPLUG_TOKEN): %w", err)
	}

	client, err := smeplug.NewClient(smeplug.Config{
		BaseURL: cfg.SMEPlug.BaseURL,
		Token:   cfg.SMEPlug.Token,
		Timeout: cfg.SMEPlug.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create smeplug client: %w", err)
	}
	return client, nil
}

// newChatService builds an assistant session, or returns nil when the AI
// provider is disabled.
func newChatService(ctx context.Context, cfg config.Config, logger *slog.Logger) (service.ChatService, error) {
	if !cfg.AI.Enabled {
		return nil, nil
	}
	if err := cfg.ValidateAI(); err != nil {
		return nil, fmt.Errorf("ai provider is not configured: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.Config{
		Provider:    cfg.AI.Provider,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
		RateLimit:   cfg.AI.RateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return llm.NewSession(client, llm.WithLogger(logger)), nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
