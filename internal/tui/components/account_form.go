package components

import (
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/Veraticus/acefi/internal/wizard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OpenBankPickerMsg asks the owner to open the picker and fetch banks.
type OpenBankPickerMsg struct{}

// VerifyRequestedMsg asks the owner to resolve the entered account.
type VerifyRequestedMsg struct{}

// AccountCancelledMsg is sent when the user backs out of the form.
type AccountCancelledMsg struct{}

type formField int

const (
	fieldBank formField = iota
	fieldAccount
	fieldVerify
	fieldCount
)

// AccountFormModel renders a wizard.AccountForm. While the form's picker is
// open, input goes to the picker.
type AccountFormModel struct {
	theme   themes.Theme
	form    *wizard.AccountForm
	picker  BankPickerModel
	account textinput.Model
	spinner spinner.Model
	focus   formField
	width   int
	height  int
}

// NewAccountFormModel wraps form.
func NewAccountFormModel(form *wizard.AccountForm, theme themes.Theme) AccountFormModel {
	account := textinput.New()
	account.Placeholder = "10-digit account number"
	account.CharLimit = wizard.AccountNumberLength
	account.SetValue(form.AccountNumber())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	m := AccountFormModel{
		theme:   theme,
		form:    form,
		picker:  NewBankPickerModel(form.Picker(), theme),
		account: account,
		spinner: s,
		width:   60,
		height:  16,
	}
	if _, ok := form.Bank(); ok {
		m.focus = fieldAccount
		m.account.Focus()
	}
	return m
}

// Init starts the spinner.
func (m AccountFormModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Resize sets the available space.
func (m *AccountFormModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.account.Width = max(10, width-8)
	m.picker.Resize(width, height)
}

// Update handles messages.
func (m AccountFormModel) Update(msg tea.Msg) (AccountFormModel, tea.Cmd) {
	if m.form.Picker().Visible() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if !m.form.Verifying() {
			cmd = nil
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// ResumeSpinner restarts the spinner after a verify starts.
func (m AccountFormModel) ResumeSpinner() tea.Cmd {
	return m.spinner.Tick
}

// OpenPicker resets the picker view and starts its spinner.
func (m *AccountFormModel) OpenPicker() tea.Cmd {
	m.picker = NewBankPickerModel(m.form.Picker(), m.theme)
	m.picker.Resize(m.width, m.height)
	return m.picker.Init()
}

func (m AccountFormModel) handleKey(msg tea.KeyMsg) (AccountFormModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return AccountCancelledMsg{} }
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		switch m.focus {
		case fieldBank:
			return m, func() tea.Msg { return OpenBankPickerMsg{} }
		case fieldAccount, fieldVerify:
			if m.form.CanVerify() {
				return m, func() tea.Msg { return VerifyRequestedMsg{} }
			}
		}
		return m, nil
	}

	if m.focus != fieldAccount || m.form.Verifying() {
		return m, nil
	}

	var cmd tea.Cmd
	m.account, cmd = m.account.Update(msg)
	m.form.SetAccountNumber(m.account.Value())
	if m.account.Value() != m.form.AccountNumber() {
		m.account.SetValue(m.form.AccountNumber())
	}
	return m, cmd
}

func (m *AccountFormModel) setFocus(f formField) {
	m.focus = f
	if f == fieldAccount {
		m.account.Focus()
	} else {
		m.account.Blur()
	}
}

// View renders the form, or the picker while it is open.
func (m AccountFormModel) View() string {
	if m.form.Picker().Visible() {
		return m.picker.View()
	}

	bankLabel := m.theme.StatusPending.Render("Select your bank")
	if bank, ok := m.form.Bank(); ok {
		bankLabel = m.theme.Bold.Render(bank.Name)
	}
	bankField := m.field("Bank", bankLabel+"  "+m.theme.StatusPending.Render("▾"), m.focus == fieldBank)
	accountField := m.field("Account Number", m.account.View(), m.focus == fieldAccount)

	sections := []string{
		m.theme.Title.Render("Verify Your Bank Account"),
		bankField,
		accountField,
	}
	if hint := m.form.AccountNumberHint(); hint != "" {
		sections = append(sections, m.theme.StatusPending.Render(hint))
	}
	if errText := m.form.Error(); errText != "" {
		sections = append(sections, m.theme.StatusError.Render(errText))
	}

	button := m.theme.ButtonMuted.Render("Verify Account")
	switch {
	case m.form.Verifying():
		button = m.spinner.View() + " " + m.theme.StatusPending.Render("Verifying...")
	case m.form.CanVerify():
		button = m.theme.Button.Render("Verify Account")
		if m.focus == fieldVerify {
			button = m.theme.Selected.Render("› Verify Account")
		}
	}
	sections = append(sections, "", button, "",
		m.theme.StatusPending.Render("tab next field · enter select · esc back to chat"))

	return m.theme.RoundedBox.Width(max(20, m.width-2)).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m AccountFormModel) field(label, value string, focused bool) string {
	style := m.theme.Subtitle.MarginBottom(0)
	if focused {
		style = style.Foreground(m.theme.Primary).Bold(true)
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(label), value, "")
}
