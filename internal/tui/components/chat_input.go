package components

import (
	"strings"

	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputMode says who owns the text of a ChatInputModel.
type InputMode int

const (
	// InputOwned keeps the text inside the component and clears it after a
	// submit.
	InputOwned InputMode = iota
	// InputControlled reports every edit with InputChangedMsg and never
	// clears itself; the owner resets or replaces the text with SetValue.
	InputControlled
)

// InputChangedMsg reports an edit of a controlled input.
type InputChangedMsg struct {
	ID    string
	Value string
}

// InputSubmittedMsg is sent when the user presses enter on non-blank text.
type InputSubmittedMsg struct {
	ID   string
	Text string
}

// ChatInputModel is a single-line message box with a send action.
type ChatInputModel struct {
	theme    themes.Theme
	input    textinput.Model
	id       string
	mode     InputMode
	width    int
	disabled bool
}

// NewChatInputModel creates an input in the given mode. id tags the
// messages it emits.
func NewChatInputModel(id string, mode InputMode, placeholder string, theme themes.Theme) ChatInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Prompt = "› "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Primary)

	return ChatInputModel{
		theme: theme,
		input: ti,
		id:    id,
		mode:  mode,
	}
}

// Mode returns the input's ownership mode.
func (m ChatInputModel) Mode() InputMode {
	return m.mode
}

// Focus gives the input keyboard focus.
func (m *ChatInputModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *ChatInputModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has focus.
func (m ChatInputModel) Focused() bool {
	return m.input.Focused()
}

// SetValue replaces the text. Setting the current value is a no-op, so the
// cursor stays where the user left it.
func (m *ChatInputModel) SetValue(v string) {
	if v == m.input.Value() {
		return
	}
	m.input.SetValue(v)
	m.input.CursorEnd()
}

// Value returns the current text.
func (m ChatInputModel) Value() string {
	return m.input.Value()
}

// SetDisabled blocks submits, for example while a reply is loading.
func (m *ChatInputModel) SetDisabled(disabled bool) {
	m.disabled = disabled
}

// Resize sets the rendered width.
func (m *ChatInputModel) Resize(width int) {
	m.width = width
	m.input.Width = max(10, width-4)
}

// Update handles key presses.
func (m ChatInputModel) Update(msg tea.Msg) (ChatInputModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if keyMsg.Type == tea.KeyEnter {
		return m.submit()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()

	if m.mode == InputControlled && after != before {
		id := m.id
		return m, tea.Batch(cmd, func() tea.Msg {
			return InputChangedMsg{ID: id, Value: after}
		})
	}
	return m, cmd
}

func (m ChatInputModel) submit() (ChatInputModel, tea.Cmd) {
	text := m.input.Value()
	if m.disabled || strings.TrimSpace(text) == "" {
		return m, nil
	}
	if m.mode == InputOwned {
		m.input.Reset()
	}
	id := m.id
	return m, func() tea.Msg {
		return InputSubmittedMsg{ID: id, Text: text}
	}
}

// View renders the input.
func (m ChatInputModel) View() string {
	style := m.theme.RoundedBox.Padding(0, 1)
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	if m.input.Focused() {
		style = style.BorderForeground(m.theme.Primary)
	}
	return style.Render(m.input.View())
}
