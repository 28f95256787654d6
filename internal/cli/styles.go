// Package cli provides styled terminal output and line-based interaction for
// the non-TUI commands.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/acefi/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the brand color.
	PrimaryColor = lipgloss.Color("#007AFF")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#34C759")
	// WarningColor indicates warnings.
	WarningColor = lipgloss.Color("#FF9500")
	// ErrorColor indicates failures.
	ErrorColor = lipgloss.Color("#FF3B30")
	// SubtleColor is used for secondary text.
	SubtleColor = lipgloss.Color("#8E8E93")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	// AssistantStyle renders the assistant's side of a conversation.
	AssistantStyle = lipgloss.NewStyle().Foreground(PrimaryColor)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(SubtleColor)
)

// Icons.
const (
	SuccessIcon   = "✓"
	ErrorIcon     = "✗"
	WarningIcon   = "⚠️"
	AssistantIcon = "🤖"
	BankIcon      = "🏦"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatAssistant formats a reply from the assistant.
func FormatAssistant(message string) string {
	return AssistantStyle.Render(AssistantIcon + " Ace: " + message)
}

// FormatPrompt formats a prompt.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " › ")
}

// RenderBox renders content in a titled box.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.UnsetMargins().Render(title),
		content,
	))
}

// RenderAccount renders a resolved account.
func RenderAccount(acct model.ResolvedAccount) string {
	rows := []string{
		fmt.Sprintf("%s %s", SubtleStyle.Render("Account Name:  "), BoldStyle.Render(acct.AccountName)),
		fmt.Sprintf("%s %s", SubtleStyle.Render("Bank:          "), acct.BankName),
		fmt.Sprintf("%s %s", SubtleStyle.Render("Account Number:"), acct.AccountNumber),
	}
	return RenderBox(SuccessIcon+" Account verified", strings.Join(rows, "\n"))
}

// WriteBankTable writes banks as a two-column table.
func WriteBankTable(w io.Writer, banks []model.Bank) error {
	codeWidth := len("CODE")
	for _, b := range banks {
		codeWidth = max(codeWidth, len(b.Code))
	}

	header := TableHeaderStyle.Render(fmt.Sprintf("%-*s  %s", codeWidth, "CODE", "NAME"))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, b := range banks {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", codeWidth, b.Code, b.Name); err != nil {
			return err
		}
	}
	return nil
}
