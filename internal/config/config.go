package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultSMEPlugBaseURL is the production SMEPlug API root.
const DefaultSMEPlugBaseURL = "https://smeplug.ng/api/v1"

// Config is the application configuration. It is built once by the entry
// point and handed to every service constructor.
type Config struct {
	SMEPlug SMEPlugConfig `yaml:"smeplug"`
	AI      AIConfig      `yaml:"ai"`
	Logging LoggingConfig `yaml:"logging"`
	Pacing  PacingConfig  `yaml:"pacing"`
	UI      UIConfig      `yaml:"ui"`
}

// SMEPlugConfig configures the bank directory and account resolution API.
type SMEPlugConfig struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Token   string        `yaml:"token" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// AIConfig configures the conversational AI provider.
type AIConfig struct {
	Provider    string  `yaml:"provider" validate:"omitempty,oneof=gemini openai anthropic"`
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"api_key" validate:"required_if=Enabled true"`
	Temperature float64 `yaml:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `yaml:"max_tokens" validate:"gte=0"`
	RateLimit   int     `yaml:"rate_limit" validate:"gte=0"`
	Enabled     bool    `yaml:"enabled"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	File   string `yaml:"file"`
}

// PacingConfig holds the delays that simulate conversational pacing.
type PacingConfig struct {
	NameSubmit       time.Duration `yaml:"name_submit" validate:"gte=0"`
	VerifiedFollowUp time.Duration `yaml:"verified_follow_up" validate:"gte=0"`
	Navigate         time.Duration `yaml:"navigate" validate:"gte=0"`
	AssistantReply   time.Duration `yaml:"assistant_reply" validate:"gte=0"`
	ScrollSettle     time.Duration `yaml:"scroll_settle" validate:"gte=0"`
}

// UIConfig holds terminal UI switches.
type UIConfig struct {
	Theme          string `yaml:"theme" validate:"omitempty,oneof=default catppuccin-mocha"`
	SkipOnboarding bool   `yaml:"skip_onboarding"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		SMEPlug: SMEPlugConfig{
			BaseURL: DefaultSMEPlugBaseURL,
			Timeout: 30 * time.Second,
		},
		AI: AIConfig{
			Provider:    "gemini",
			Temperature: 0.7,
			MaxTokens:   512,
			RateLimit:   30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "~/.config/acefi/acefi.log",
		},
		Pacing: PacingConfig{
			NameSubmit:       100 * time.Millisecond,
			VerifiedFollowUp: 500 * time.Millisecond,
			Navigate:         1500 * time.Millisecond,
			AssistantReply:   1000 * time.Millisecond,
			ScrollSettle:     100 * time.Millisecond,
		},
		UI: UIConfig{
			Theme: "default",
		},
	}
}

// SetDefaults registers Default() with v so that unset keys fall back to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("smeplug.base_url", d.SMEPlug.BaseURL)
	v.SetDefault("smeplug.timeout", d.SMEPlug.Timeout)
	v.SetDefault("ai.provider", d.AI.Provider)
	v.SetDefault("ai.temperature", d.AI.Temperature)
	v.SetDefault("ai.max_tokens", d.AI.MaxTokens)
	v.SetDefault("ai.rate_limit", d.AI.RateLimit)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("pacing.name_submit", d.Pacing.NameSubmit)
	v.SetDefault("pacing.verified_follow_up", d.Pacing.VerifiedFollowUp)
	v.SetDefault("pacing.navigate", d.Pacing.Navigate)
	v.SetDefault("pacing.assistant_reply", d.Pacing.AssistantReply)
	v.SetDefault("pacing.scroll_settle", d.Pacing.ScrollSettle)
	v.SetDefault("ui.theme", d.UI.Theme)
}

// Load reads the configuration out of v. Keys are looked up by their dotted
// names so that flags, env vars and the config file all apply.
func Load(v *viper.Viper) Config {
	cfg := Config{
		SMEPlug: SMEPlugConfig{
			BaseURL: strings.TrimRight(v.GetString("smeplug.base_url"), "/"),
			Token:   v.GetString("smeplug.token"),
			Timeout: v.GetDuration("smeplug.timeout"),
		},
		AI: AIConfig{
			Enabled:     v.GetBool("ai.enabled"),
			Provider:    strings.ToLower(v.GetString("ai.provider")),
			Model:       v.GetString("ai.model"),
			APIKey:      v.GetString("ai.api_key"),
			Temperature: v.GetFloat64("ai.temperature"),
			MaxTokens:   v.GetInt("ai.max_tokens"),
			RateLimit:   v.GetInt("ai.rate_limit"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		Pacing: PacingConfig{
			NameSubmit:       v.GetDuration("pacing.name_submit"),
			VerifiedFollowUp: v.GetDuration("pacing.verified_follow_up"),
			Navigate:         v.GetDuration("pacing.navigate"),
			AssistantReply:   v.GetDuration("pacing.assistant_reply"),
			ScrollSettle:     v.GetDuration("pacing.scroll_settle"),
		},
		UI: UIConfig{
			Theme:          v.GetString("ui.theme"),
			SkipOnboarding: v.GetBool("ui.skip_onboarding"),
		},
	}

	// Provider-specific key variables are honoured when no explicit key is set.
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = providerKeyFromEnv(v, cfg.AI.Provider)
	}

	return cfg
}

func providerKeyFromEnv(v *viper.Viper, provider string) string {
	var env string
	switch provider {
	case "gemini":
		env = "GEMINI_API_KEY"
	case "openai":
		env = "OPENAI_API_KEY"
	case "anthropic":
		env = "ANTHROPIC_API_KEY"
	default:
		return ""
	}
	_ = v.BindEnv("ai.provider_key."+provider, env)
	return v.GetString("ai.provider_key." + provider)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration. Failures wrap common.ErrInvalidConfig,
// or common.ErrMissingConfig when a required value is absent.
func (c Config) Validate() error {
	return check(c, "Config.", "")
}

// ValidateSMEPlug checks only the bank API section, for commands that do not
// talk to the AI provider.
func (c Config) ValidateSMEPlug() error {
	return Config{
		SMEPlug: c.SMEPlug,
		Logging: c.Logging,
		Pacing:  c.Pacing,
	}.Validate()
}

// ValidateAI checks only the AI provider section.
func (c Config) ValidateAI() error {
	return check(c.AI, "AIConfig.", "ai.")
}

// check validates s, reporting fields by their namespace with prefix
// replaced by display.
func check(s any, prefix, display string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	sentinel := common.ErrInvalidConfig
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if strings.HasPrefix(fe.Tag(), "required") {
			sentinel = common.ErrMissingConfig
		}
		path := display + strings.TrimPrefix(fe.Namespace(), prefix)
		msgs = append(msgs, fmt.Sprintf("%s failed %q", strings.ToLower(path), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", sentinel, strings.Join(msgs, "; "))
}

// Redacted returns a copy with secrets masked, safe to print.
func (c Config) Redacted() Config {
	c.SMEPlug.Token = redact(c.SMEPlug.Token)
	c.AI.APIKey = redact(c.AI.APIKey)
	return c
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "****"
}
