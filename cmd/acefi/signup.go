package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/acefi/internal/tui"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/Veraticus/acefi/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func signupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Run the interactive sign-up flow",
		Long: `Start the full-screen sign-up flow: onboarding, the conversational
sign-up wizard with bank account verification, and the home chat.`,
		RunE: runSignup,
	}
	addSignupFlags(cmd)
	return cmd
}

func addSignupFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-onboarding", false, "start directly on the sign-up wizard")
	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
}

func runSignup(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlag("ui.skip_onboarding", cmd.Flags().Lookup("skip-onboarding")); err != nil {
		return err
	}
	if err := viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme")); err != nil {
		return err
	}

	cfg := loadConfig()

	// The TUI owns the terminal; logs go to a file for the duration.
	var logOut io.Writer = io.Discard
	if cfg.Logging.File != "" {
		f, err := openLogFile(cfg.Logging.File)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	if err := setupLogging(logOut); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logger := slog.Default()

	ctx := cmd.Context()
	banks, err := newBankService(cfg, logger)
	if err != nil {
		return err
	}
	chat, err := newChatService(ctx, cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting sign-up",
		"theme", cfg.UI.Theme,
		"skip_onboarding", cfg.UI.SkipOnboarding,
		"assistant", chat != nil)

	return tui.Run(ctx,
		tui.WithBankService(banks),
		tui.WithChatService(chat),
		tui.WithLogger(logger),
		tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
		tui.WithSkipOnboarding(cfg.UI.SkipOnboarding),
		tui.WithPacing(wizard.Pacing{
			NameSubmit:       cfg.Pacing.NameSubmit,
			VerifiedFollowUp: cfg.Pacing.VerifiedFollowUp,
			Navigate:         cfg.Pacing.Navigate,
		}, cfg.Pacing.AssistantReply, cfg.Pacing.ScrollSettle),
	)
}
