// Package smeplug provides a client for the SMEPlug transfer API: the bank
// directory and account-number resolution.
package smeplug

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"golang.org/x/oauth2"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 4 << 20

// Config holds SMEPlug API configuration.
type Config struct {
	HTTPClient *http.Client // Base client; its transport is wrapped with the bearer token
	Logger     *slog.Logger
	BaseURL    string
	Token      string
	Timeout    time.Duration
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: smeplug base URL is required", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("%w: smeplug base URL must be http(s): %s", common.ErrInvalidConfig, c.BaseURL)
	}
	if c.Token == "" {
		return fmt.Errorf("%w: smeplug token is required", common.ErrMissingConfig)
	}
	return nil
}

// Client talks to the SMEPlug API. It implements service.BankService.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewClient creates a new SMEPlug client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx := context.Background()
	if cfg.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.HTTPClient)
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.Token,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     common.ComponentLogger(cfg.Logger, "smeplug"),
	}, nil
}

type bankListResponse struct {
	Banks *[]bankEntry `json:"banks"`
}

type bankEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ListBanks fetches the bank directory. A body without a "banks" array is a
// hard failure wrapping common.ErrInvalidResponse.
func (c *Client) ListBanks(ctx context.Context) ([]model.Bank, error) {
	c.logger.Debug("Fetching bank list")

	body, status, err := c.do(ctx, http.MethodGet, "/transfer/banks", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch banks: %w", err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("bank list API error (status %d): %s", status, truncate(body))
	}

	var resp bankListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidResponse, err)
	}
	if resp.Banks == nil {
		return nil, fmt.Errorf("%w: missing banks list", common.ErrInvalidResponse)
	}

	banks := make([]model.Bank, 0, len(*resp.Banks))
	for _, b := range *resp.Banks {
		banks = append(banks, model.Bank{
			ID:   b.Code,
			Code: b.Code,
			Name: b.Name,
		})
	}

	c.logger.Info("Fetched bank list", "count", len(banks))
	return banks, nil
}

type resolveRequest struct {
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
}

type resolveResponse struct {
	Status json.RawMessage `json:"status"`
	Name   string          `json:"name"`
}

// ResolveAccount returns the legal name on the account. A falsy status wraps
// common.ErrAccountNotFound; transport and format problems are returned as-is.
func (c *Client) ResolveAccount(ctx context.Context, bankCode, accountNumber string) (string, error) {
	c.logger.Debug("Resolving account", "bank_code", bankCode, "account_number", mask(accountNumber))

	payload, err := json.Marshal(resolveRequest{
		BankCode:      bankCode,
		AccountNumber: accountNumber,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	body, status, err := c.do(ctx, http.MethodPost, "/transfer/resolveaccount", payload)
	if err != nil {
		return "", fmt.Errorf("failed to resolve account: %w", err)
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("account resolution API error (status %d): %s", status, truncate(body))
	}

	var resp resolveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidResponse, err)
	}
	if !truthy(resp.Status) {
		c.logger.Info("Account not resolved", "bank_code", bankCode)
		return "", fmt.Errorf("%w: bank %s", common.ErrAccountNotFound, bankCode)
	}

	name := strings.TrimSpace(resp.Name)
	if name == "" {
		return "", fmt.Errorf("%w: missing account name", common.ErrInvalidResponse)
	}

	c.logger.Info("Account resolved", "bank_code", bankCode)
	return name, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// truthy applies JavaScript truthiness to a raw JSON value.
func truthy(raw json.RawMessage) bool {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return false
	}

	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

func mask(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(accountNumber)-4) + accountNumber[len(accountNumber)-4:]
}

func truncate(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
