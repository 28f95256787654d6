package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/service"
	"github.com/Veraticus/acefi/internal/tui/components"
	"github.com/Veraticus/acefi/internal/tui/themes"
	"github.com/Veraticus/acefi/internal/wizard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const signUpInputID = "signup"

// signUpScreen drives a wizard.Wizard. The wizard owns the state; this
// screen turns key presses into wizard calls and service results back into
// wizard completions.
type signUpScreen struct {
	ctx        context.Context
	banks      service.BankService
	logger     *slog.Logger
	wiz        *wizard.Wizard
	formRef    *wizard.AccountForm
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	input      components.ChatInputModel
	transcript components.TranscriptModel
	form       components.AccountFormModel
	verify     components.VerificationModel
	userInput  string
	width      int
	height     int
	confirming bool
}

func newSignUpScreen(ctx context.Context, cfg Config, sched wizard.Scheduler, onNavigate func(model.Route), keymap KeyMap) signUpScreen {
	s := signUpScreen{
		ctx:    ctx,
		banks:  cfg.Banks,
		logger: cfg.Logger,
		wiz: wizard.New(wizard.Options{
			Scheduler:  sched,
			Pacing:     cfg.Pacing,
			Logger:     cfg.Logger,
			OnNavigate: onNavigate,
		}),
		theme:      cfg.Theme,
		keymap:     keymap,
		help:       help.New(),
		input:      components.NewChatInputModel(signUpInputID, components.InputControlled, "Type your name...", cfg.Theme),
		transcript: components.NewTranscriptModel(cfg.Theme, cfg.ScrollSettle),
		width:      cfg.Width,
		height:     cfg.Height,
	}
	s.input.Focus()
	s.resize(cfg.Width, cfg.Height)
	return s
}

func (s signUpScreen) update(msg tea.Msg) (signUpScreen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)

	case components.InputChangedMsg:
		if msg.ID == signUpInputID {
			s.userInput = msg.Value
		}

	case components.InputSubmittedMsg:
		if msg.ID == signUpInputID && s.submit(msg.Text) {
			s.userInput = ""
			s.input.SetValue("")
		}

	case components.OpenBankPickerMsg:
		if form := s.wiz.Form(); form != nil {
			if req := form.Picker().Open(s.ctx); req != nil {
				cmds = append(cmds, fetchBanks(s.banks, req), s.form.OpenPicker())
			}
		}

	case components.BankRetryMsg:
		if form := s.wiz.Form(); form != nil {
			if req := form.Picker().Retry(s.ctx); req != nil {
				cmds = append(cmds, fetchBanks(s.banks, req))
			}
		}

	case banksFetchedMsg:
		if form := s.wiz.Form(); form != nil {
			form.Picker().CompleteFetch(msg.req, msg.banks, msg.err)
		}

	case components.BankChosenMsg:
		if form := s.wiz.Form(); form != nil {
			form.ChooseBank(msg.Code)
		}

	case components.PickerDismissedMsg:
		if form := s.wiz.Form(); form != nil {
			form.Picker().Close()
		}

	case components.VerifyRequestedMsg:
		if req, in, ok := s.wiz.VerifyAccount(s.ctx); ok {
			cmds = append(cmds, resolveAccount(s.banks, req, in), s.form.ResumeSpinner())
		}

	case accountResolvedMsg:
		s.wiz.CompleteResolution(msg.req, msg.name, msg.err)

	case components.AccountCancelledMsg:
		s.wiz.CancelAccountValidation()

	case components.EmailChangedMsg:
		s.wiz.SetEmail(msg.Email)

	case components.ConfirmRequestedMsg:
		s.wiz.Confirm()

	case components.EditRequestedMsg:
		s.wiz.Edit()

	case components.ScrollSettledMsg:
		var cmd tea.Cmd
		s.transcript, cmd = s.transcript.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		cmds = append(cmds, s.handleKey(msg))

	default:
		// Spinner ticks belong to the form, cursor blinks to the input.
		var cmd tea.Cmd
		switch s.wiz.Step() {
		case wizard.StepAccountValidation:
			s.form, cmd = s.form.Update(msg)
		case wizard.StepInitial, wizard.StepChat:
			s.input, cmd = s.input.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, s.sync())
	return s, tea.Batch(cmds...)
}

func (s *signUpScreen) submit(text string) bool {
	switch s.wiz.Step() {
	case wizard.StepInitial:
		return s.wiz.SubmitName(text)
	case wizard.StepChat:
		return s.wiz.SendMessage(text)
	default:
		return false
	}
}

func (s *signUpScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, s.keymap.StartOver) {
		s.wiz.Reset()
		s.userInput = ""
		s.input.SetValue("")
		return nil
	}

	var cmd tea.Cmd
	switch s.wiz.Step() {
	case wizard.StepInitial:
		s.input, cmd = s.input.Update(msg)

	case wizard.StepChat:
		switch {
		case key.Matches(msg, s.keymap.VerifyAccount):
			s.wiz.RequestAccountValidation()
		case key.Matches(msg, s.keymap.PageUp), key.Matches(msg, s.keymap.PageDown):
			s.transcript, cmd = s.transcript.Update(msg)
		default:
			s.input, cmd = s.input.Update(msg)
		}

	case wizard.StepAccountValidation:
		s.form, cmd = s.form.Update(msg)

	case wizard.StepVerification:
		if s.wiz.ConfirmationVisible() {
			s.verify, cmd = s.verify.Update(msg)
		}

	case wizard.StepComplete:
		s.transcript, cmd = s.transcript.Update(msg)
	}
	return cmd
}

// sync rebuilds sub-views whose wizard state changed.
func (s *signUpScreen) sync() tea.Cmd {
	var cmds []tea.Cmd

	if form := s.wiz.Form(); form != s.formRef {
		s.formRef = form
		if form != nil {
			s.form = components.NewAccountFormModel(form, s.theme)
			s.form.Resize(s.width, s.height-4)
		}
	}

	confirming := s.wiz.ConfirmationVisible()
	if confirming && !s.confirming {
		s.verify = components.NewVerificationModel(s.wiz.Profile(), s.theme)
		s.verify.Resize(s.width)
	}
	s.confirming = confirming
	s.verify.SetState(s.wiz.Profile(), s.wiz.EmailError())

	if step := s.wiz.Step(); step == wizard.StepInitial || step == wizard.StepChat {
		if !s.input.Focused() {
			cmds = append(cmds, s.input.Focus())
		}
	} else {
		s.input.Blur()
	}

	s.transcript.Resize(s.width, s.transcriptHeight())
	cmds = append(cmds, s.transcript.SetMessages(s.wiz.Messages(), confirming))
	return tea.Batch(cmds...)
}

func (s *signUpScreen) resize(width, height int) {
	s.width = width
	s.height = height
	s.input.Resize(width)
	s.form.Resize(width, height-4)
	s.verify.Resize(width)
	s.help.Width = width
	s.transcript.Resize(width, s.transcriptHeight())
}

func (s signUpScreen) footer() string {
	switch s.wiz.Step() {
	case wizard.StepChat:
		return lipgloss.JoinVertical(lipgloss.Left, s.input.View(), s.help.View(chatHelp{s.keymap}))
	case wizard.StepVerification:
		if s.confirming {
			return s.verify.View()
		}
	case wizard.StepComplete:
		return s.theme.StatusSuccess.Render("✓ Setting up your account...")
	}
	return ""
}

func (s signUpScreen) transcriptHeight() int {
	return max(3, s.height-3-lipgloss.Height(s.footer()))
}

func (s signUpScreen) view() string {
	switch s.wiz.Step() {
	case wizard.StepInitial:
		return s.viewInitial()
	case wizard.StepAccountValidation:
		return lipgloss.JoinVertical(lipgloss.Left, s.header(), s.form.View())
	}

	s.transcript.Resize(s.width, s.transcriptHeight())
	return lipgloss.JoinVertical(lipgloss.Left, s.header(), s.transcript.View(), s.footer())
}

func (s signUpScreen) header() string {
	return s.theme.Title.Render("Get Started With Ace")
}

func (s signUpScreen) viewInitial() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.theme.Title.Render("Hey buddy, What is your name?"),
		s.input.View(),
	)
	switch {
	case s.wiz.Pending():
		content = lipgloss.JoinVertical(lipgloss.Center, content, s.theme.StatusPending.Render("..."))
	case strings.TrimSpace(s.userInput) != "":
		content = lipgloss.JoinVertical(lipgloss.Center, content, s.theme.StatusPending.Render("enter to continue"))
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, content)
}

func (s signUpScreen) close() {
	s.wiz.Close()
}
