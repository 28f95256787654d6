package components

import (
	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EmailChangedMsg reports an edit of the email field.
type EmailChangedMsg struct {
	Email string
}

// ConfirmRequestedMsg asks the owner to create the account.
type ConfirmRequestedMsg struct{}

// EditRequestedMsg asks the owner to go back to account validation.
type EditRequestedMsg struct{}

// VerificationModel shows the collected details and asks for an email.
type VerificationModel struct {
	theme      themes.Theme
	email      textinput.Model
	emailError string
	profile    model.AccountProfile
	width      int
}

// NewVerificationModel creates the panel for profile.
func NewVerificationModel(profile model.AccountProfile, theme themes.Theme) VerificationModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.SetValue(profile.Email)
	email.Focus()

	return VerificationModel{
		theme:   theme,
		email:   email,
		profile: profile,
		width:   60,
	}
}

// SetState refreshes the profile and the email error shown.
func (m *VerificationModel) SetState(profile model.AccountProfile, emailError string) {
	m.profile = profile
	m.emailError = emailError
}

// Resize sets the rendered width.
func (m *VerificationModel) Resize(width int) {
	m.width = width
	m.email.Width = max(10, width-8)
}

// Update handles key presses.
func (m VerificationModel) Update(msg tea.Msg) (VerificationModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		return m, func() tea.Msg { return ConfirmRequestedMsg{} }
	case "ctrl+e":
		return m, func() tea.Msg { return EditRequestedMsg{} }
	}

	before := m.email.Value()
	var cmd tea.Cmd
	m.email, cmd = m.email.Update(keyMsg)
	if after := m.email.Value(); after != before {
		return m, tea.Batch(cmd, func() tea.Msg { return EmailChangedMsg{Email: after} })
	}
	return m, cmd
}

// View renders the panel.
func (m VerificationModel) View() string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.Subtitle.MarginBottom(0).Width(18).Render(label),
			m.theme.Bold.Render(value))
	}

	sections := []string{
		m.theme.Title.MarginBottom(0).Render("Verify Your Details"),
		m.theme.Subtitle.Render("Please confirm your account information"),
		row("Full Name", m.profile.Name),
		row("Account Name", m.profile.AccountName),
		row("Bank Name", m.profile.BankName),
		row("Account Number", m.profile.AccountNumber),
		"",
		m.theme.Subtitle.MarginBottom(0).Render("Email Address"),
		m.email.View(),
	}
	if m.emailError != "" {
		sections = append(sections, m.theme.StatusError.Render(m.emailError))
	}
	sections = append(sections, "",
		m.theme.StatusPending.Render("By continuing, you confirm these details are correct."),
		"",
		m.theme.Button.Render("Confirm Details")+"  "+m.theme.StatusPending.Render("enter confirm · ctrl+e edit details"))

	return m.theme.RoundedBox.Width(max(20, m.width-2)).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}
