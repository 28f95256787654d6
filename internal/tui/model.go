package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/acefi/internal/app"
	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root of the TUI. It shows the screen for the navigator's
// current route and rebuilds it whenever the route changes.
type Model struct {
	ctx        context.Context
	logger     *slog.Logger
	sched      *teaScheduler
	nav        *app.Navigator
	onboarding onboardingScreen
	success    successScreen
	theme      themes.Theme
	route      model.Route
	config     Config
	keymap     KeyMap
	signup     signUpScreen
	home       homeScreen
	initial    tea.Cmd
	width      int
	height     int
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	start := model.Route{Name: model.RouteOnboarding}
	if cfg.SkipOnboarding {
		start = model.Route{Name: model.RouteSignUp}
	}

	m := Model{
		ctx:    ctx,
		logger: common.ComponentLogger(cfg.Logger, "tui"),
		sched:  newTeaScheduler(),
		nav:    app.NewNavigator(start, cfg.Logger),
		theme:  cfg.Theme,
		config: cfg,
		keymap: DefaultKeyMap(),
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.initial = m.enter(start)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.initial, m.sched.drain())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			m.leave()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.Width = msg.Width
		m.config.Height = msg.Height

	case timerFiredMsg:
		m.sched.fire(msg.id)
	}

	cmds = append(cmds, m.updateScreen(msg))

	if current := m.nav.Current(); current != m.route {
		m.leave()
		cmds = append(cmds, m.enter(current))
	}

	cmds = append(cmds, m.sched.drain())
	return m, tea.Batch(cmds...)
}

func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.route.Name {
	case model.RouteOnboarding:
		cmd = m.onboarding.update(msg)
	case model.RouteSignUp:
		m.signup, cmd = m.signup.update(msg)
	case model.RouteSuccess:
		cmd = m.success.update(msg)
	case model.RouteHome:
		m.home, cmd = m.home.update(msg)
	}
	return cmd
}

// enter builds the screen for r.
func (m *Model) enter(r model.Route) tea.Cmd {
	m.logger.Info("Entering screen", "route", r.String())
	m.route = r

	cfg := m.config
	switch r.Name {
	case model.RouteOnboarding:
		m.onboarding = onboardingScreen{onboarding: app.NewOnboarding(m.nav), theme: m.theme, keymap: m.keymap}
	case model.RouteSignUp:
		m.signup = newSignUpScreen(m.ctx, cfg, m.sched, m.nav.Navigate, m.keymap)
		return m.signup.sync()
	case model.RouteSuccess:
		m.success = successScreen{success: app.NewSuccess(m.nav, r), theme: m.theme}
	case model.RouteHome:
		m.home = newHomeScreen(m.ctx, cfg, m.sched, m.keymap)
	}
	return nil
}

// leave tears down the current screen's timers and requests.
func (m *Model) leave() {
	switch m.route.Name {
	case model.RouteSignUp:
		m.signup.close()
	case model.RouteHome:
		m.home.close()
	}
}

// Route returns the route being shown.
func (m Model) Route() model.Route {
	return m.route
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.route.Name {
	case model.RouteOnboarding:
		return m.onboarding.view(m.width, m.height)
	case model.RouteSignUp:
		return m.signup.view()
	case model.RouteSuccess:
		return m.success.view(m.width, m.height)
	case model.RouteHome:
		return m.home.view()
	}
	return ""
}
