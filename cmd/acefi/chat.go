package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/acefi/internal/cli"
	"github.com/Veraticus/acefi/internal/common"
	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the Ace-Fi assistant",
		Long: `Start a line-based conversation with the configured AI provider.
Type /quit or press Ctrl+D to leave.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if !cfg.AI.Enabled {
				return common.NewUserError("The assistant is disabled. Set ai.enabled (ACEFI_AI_ENABLED=true) and an API key.", common.ErrMissingConfig)
			}

			chat, err := newChatService(cmd.Context(), cfg, slog.Default())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			handler := cli.NewInterruptHandler(out, "Chat ended. See you soon!")
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			fmt.Fprintln(out, cli.RenderBox("Ace-Fi Assistant", "Ask me anything. /quit to leave."))

			sent, err := cli.ChatLoop{
				Chat: chat,
				In:   cli.NewLineReader(cmd.InOrStdin()),
				Out:  out,
			}.Run(ctx)
			slog.Debug("chat ended", "messages", sent, "interrupted", handler.WasInterrupted())
			return err
		},
	}
}
