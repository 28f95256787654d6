package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/Veraticus/acefi/internal/wizard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BankChosenMsg is sent when the user picks a bank.
type BankChosenMsg struct {
	Code string
}

// BankRetryMsg asks the owner to re-run the bank fetch.
type BankRetryMsg struct{}

// PickerDismissedMsg is sent when the user closes the picker without
// choosing.
type PickerDismissedMsg struct{}

// BankPickerModel renders a wizard.BankPicker with a search box.
type BankPickerModel struct {
	theme   themes.Theme
	picker  *wizard.BankPicker
	search  textinput.Model
	spinner spinner.Model
	cursor  int
	offset  int
	width   int
	height  int
}

// NewBankPickerModel wraps picker.
func NewBankPickerModel(picker *wizard.BankPicker, theme themes.Theme) BankPickerModel {
	search := textinput.New()
	search.Placeholder = "Search banks..."
	search.CharLimit = 50
	search.Prompt = "🔍 "
	search.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return BankPickerModel{
		theme:   theme,
		picker:  picker,
		search:  search,
		spinner: s,
		width:   60,
		height:  12,
	}
}

// Init starts the loading spinner.
func (m BankPickerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Resize sets the available space.
func (m *BankPickerModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(10, width-6)
}

// Cursor returns the highlighted row in the filtered list.
func (m BankPickerModel) Cursor() int {
	return m.cursor
}

// Update handles messages.
func (m BankPickerModel) Update(msg tea.Msg) (BankPickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.picker.State() != wizard.PickerLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BankPickerModel) handleKey(msg tea.KeyMsg) (BankPickerModel, tea.Cmd) {
	if msg.String() == "esc" {
		return m, func() tea.Msg { return PickerDismissedMsg{} }
	}

	switch m.picker.State() {
	case wizard.PickerLoading:
		return m, nil

	case wizard.PickerError:
		switch msg.String() {
		case "r", "enter":
			return m, tea.Batch(
				func() tea.Msg { return BankRetryMsg{} },
				m.spinner.Tick,
			)
		}
		return m, nil

	case wizard.PickerEmpty:
		if msg.String() == "ctrl+u" {
			m.search.Reset()
			m.picker.ClearSearch()
			m.cursor = 0
			m.offset = 0
			return m, nil
		}
	}

	banks := m.picker.Filtered()
	switch msg.String() {
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureVisible()
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(banks)-1 {
			m.cursor++
		}
		m.ensureVisible()
		return m, nil
	case "enter":
		if m.cursor < len(banks) {
			code := banks[m.cursor].Code
			return m, func() tea.Msg { return BankChosenMsg{Code: code} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.picker.Query() {
		m.picker.SetQuery(m.search.Value())
		m.cursor = 0
		m.offset = 0
	}
	return m, cmd
}

func (m *BankPickerModel) listHeight() int {
	return max(3, m.height-6)
}

func (m *BankPickerModel) ensureVisible() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// View renders the picker.
func (m BankPickerModel) View() string {
	sections := []string{
		m.theme.Title.Render("Select Bank"),
	}

	switch m.picker.State() {
	case wizard.PickerLoading:
		sections = append(sections,
			m.spinner.View()+" "+m.theme.StatusPending.Render("Loading banks..."))

	case wizard.PickerError:
		sections = append(sections,
			m.theme.StatusError.Render(m.picker.Error()),
			"",
			m.theme.Button.Render("Retry")+"  "+m.theme.StatusPending.Render("r to retry · esc to close"))

	case wizard.PickerEmpty:
		sections = append(sections, m.search.View(), "",
			m.theme.Subtitle.Render(fmt.Sprintf("No banks match %q", m.picker.Query())))
		if hints := m.picker.Suggestions(3); len(hints) > 0 {
			sections = append(sections,
				m.theme.StatusPending.Render("Did you mean: "+strings.Join(hints, ", ")+"?"))
		}
		sections = append(sections, m.theme.StatusPending.Render("ctrl+u to clear search · esc to close"))

	case wizard.PickerReady:
		sections = append(sections, m.search.View(), "", m.renderList(),
			m.theme.StatusPending.Render("↑/↓ move · enter select · esc close"))
	}

	return m.theme.RoundedBox.Width(max(20, m.width-2)).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m BankPickerModel) renderList() string {
	banks := m.picker.Filtered()
	end := min(len(banks), m.offset+m.listHeight())

	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		row := fmt.Sprintf("%-6s %s", banks[i].Code, banks[i].Name)
		if i == m.cursor {
			rows = append(rows, m.theme.Selected.Render("› "+row))
		} else {
			rows = append(rows, m.theme.Normal.Render("  "+row))
		}
	}
	return strings.Join(rows, "\n")
}
