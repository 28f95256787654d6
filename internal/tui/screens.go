package tui

import (
	"context"
	"strings"

	"github.com/Veraticus/acefi/internal/app"
	"github.com/Veraticus/acefi/internal/service"
	"github.com/Veraticus/acefi/internal/tui/components"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/Veraticus/acefi/internal/wizard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const homeInputID = "home"

// onboardingScreen renders app.Onboarding.
type onboardingScreen struct {
	onboarding *app.Onboarding
	theme      themes.Theme
	keymap     KeyMap
}

func (s onboardingScreen) update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, s.keymap.Next):
		s.onboarding.Next()
	case key.Matches(keyMsg, s.keymap.Skip):
		s.onboarding.Skip()
	}
	return nil
}

func (s onboardingScreen) view(width, height int) string {
	slide := s.onboarding.Slide()

	dots := make([]string, len(app.Slides))
	for i := range app.Slides {
		if i == s.onboarding.Index() {
			dots[i] = lipgloss.NewStyle().Foreground(s.theme.Primary).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(s.theme.Muted).Render("○")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.theme.Title.Render(slide.Title),
		s.theme.Subtitle.Render(slide.Text),
		strings.Join(dots, " "),
		"",
		s.theme.Button.Render(s.onboarding.ButtonLabel()),
		"",
		s.theme.StatusPending.Render("enter next · s skip"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// successScreen renders app.Success.
type successScreen struct {
	success *app.Success
	theme   themes.Theme
}

func (s successScreen) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		s.success.Continue()
	}
	return nil
}

func (s successScreen) view(width, height int) string {
	check := lipgloss.NewStyle().
		Foreground(s.theme.Success).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.Success).
		Padding(0, 2).
		Render("✓")

	content := lipgloss.JoinVertical(lipgloss.Center,
		check,
		"",
		s.theme.Title.Render(s.success.Title()),
		s.theme.Subtitle.Render("Your account has been created successfully"),
		s.theme.Normal.Render("You can now start using all features of the Ace-Fi platform."),
		"",
		s.theme.Button.Render("Get Started"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// homeScreen is the assistant chat shown after sign-up.
type homeScreen struct {
	ctx        context.Context
	home       *app.Home
	chat       service.ChatService
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	input      components.ChatInputModel
	transcript components.TranscriptModel
	width      int
	height     int
}

func newHomeScreen(ctx context.Context, cfg Config, sched wizard.Scheduler, keymap KeyMap) homeScreen {
	s := homeScreen{
		ctx: ctx,
		home: app.NewHome(app.HomeOptions{
			Scheduler:  sched,
			Chat:       cfg.Chat,
			Logger:     cfg.Logger,
			ReplyDelay: cfg.ReplyDelay,
		}),
		chat:       cfg.Chat,
		theme:      cfg.Theme,
		keymap:     keymap,
		help:       help.New(),
		input:      components.NewChatInputModel(homeInputID, components.InputOwned, "Ask Ace anything...", cfg.Theme),
		transcript: components.NewTranscriptModel(cfg.Theme, cfg.ScrollSettle),
	}
	s.input.Focus()
	s.resize(cfg.Width, cfg.Height)
	return s
}

func (s homeScreen) update(msg tea.Msg) (homeScreen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)

	case components.InputSubmittedMsg:
		if msg.ID == homeInputID {
			if req, ok := s.home.Send(s.ctx, msg.Text); ok && req != nil {
				cmds = append(cmds, askAssistant(s.chat, req, msg.Text))
			}
		}

	case replyReceivedMsg:
		s.home.CompleteReply(msg.req, msg.reply)

	case components.ScrollSettledMsg:
		var cmd tea.Cmd
		s.transcript, cmd = s.transcript.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		var cmd tea.Cmd
		if key.Matches(msg, s.keymap.PageUp) || key.Matches(msg, s.keymap.PageDown) {
			s.transcript, cmd = s.transcript.Update(msg)
		} else {
			s.input, cmd = s.input.Update(msg)
		}
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	s.input.SetDisabled(s.chat != nil && s.home.Loading())
	s.transcript.SetLoading(s.home.Loading())
	cmds = append(cmds, s.transcript.SetMessages(s.home.Messages(), false))
	return s, tea.Batch(cmds...)
}

func (s *homeScreen) resize(width, height int) {
	s.width = width
	s.height = height
	s.input.Resize(width)
	s.help.Width = width
	s.transcript.Resize(width, height-8)
}

func (s homeScreen) view() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.theme.Title.Render("Ace-Fi"),
		s.transcript.View(),
		s.input.View(),
		s.help.View(homeHelp{s.keymap}),
	)
}

func (s homeScreen) close() {
	s.home.Close()
}
