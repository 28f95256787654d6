package components

import (
	"strings"
	"time"

	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScrollSettledMsg scrolls the transcript to the end once layout settles.
type ScrollSettledMsg struct {
	seq int
}

// TranscriptModel renders chat messages in a scrolling viewport.
type TranscriptModel struct {
	theme    themes.Theme
	viewport viewport.Model
	messages []model.Message
	settle   time.Duration
	seq      int
	footer   bool
	loading  bool
}

// NewTranscriptModel creates an empty transcript. settle is how long to wait
// after a change before scrolling to the end.
func NewTranscriptModel(theme themes.Theme, settle time.Duration) TranscriptModel {
	return TranscriptModel{
		theme:    theme,
		viewport: viewport.New(80, 20),
		settle:   settle,
	}
}

// SetMessages replaces the rendered messages. footerVisible is the state of
// any panel rendered below the transcript; a change to either schedules a
// scroll to the end.
func (m *TranscriptModel) SetMessages(msgs []model.Message, footerVisible bool) tea.Cmd {
	changed := len(msgs) != len(m.messages) || footerVisible != m.footer
	m.messages = msgs
	m.footer = footerVisible
	m.refresh()
	if !changed {
		return nil
	}

	m.seq++
	seq := m.seq
	return tea.Tick(m.settle, func(time.Time) tea.Msg {
		return ScrollSettledMsg{seq: seq}
	})
}

// SetLoading shows a typing indicator after the last message.
func (m *TranscriptModel) SetLoading(loading bool) {
	if m.loading != loading {
		m.loading = loading
		m.refresh()
	}
}

// Resize sets the viewport dimensions.
func (m *TranscriptModel) Resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(1, height)
	m.refresh()
}

// AtBottom reports whether the viewport shows the last line.
func (m TranscriptModel) AtBottom() bool {
	return m.viewport.AtBottom()
}

// Update handles scrolling.
func (m TranscriptModel) Update(msg tea.Msg) (TranscriptModel, tea.Cmd) {
	if msg, ok := msg.(ScrollSettledMsg); ok {
		// Only the latest change scrolls.
		if msg.seq == m.seq {
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the transcript.
func (m TranscriptModel) View() string {
	return m.viewport.View()
}

func (m *TranscriptModel) refresh() {
	m.viewport.SetContent(m.render())
}

func (m TranscriptModel) render() string {
	width := m.viewport.Width
	bubbleWidth := max(10, width*3/4)

	lines := make([]string, 0, len(m.messages)+1)
	for _, msg := range m.messages {
		if msg.IsAI {
			bubble := m.theme.AIBubble.MaxWidth(bubbleWidth).Render(wrap(msg.Text, bubbleWidth-2))
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble))
		} else {
			bubble := m.theme.UserBubble.MaxWidth(bubbleWidth).Render(wrap(msg.Text, bubbleWidth-2))
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble))
		}
	}
	if m.loading {
		lines = append(lines, m.theme.StatusPending.Render("Ace is typing..."))
	}
	return strings.Join(lines, "\n\n")
}

func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(max(1, width)).Render(text)
}
