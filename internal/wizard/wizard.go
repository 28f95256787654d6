package wizard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
)

// Step is the active phase of the sign-up flow.
type Step int

const (
	StepInitial Step = iota
	StepChat
	StepAccountValidation
	StepVerification
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepInitial:
		return "initial"
	case StepChat:
		return "chat"
	case StepAccountValidation:
		return "account-validation"
	case StepVerification:
		return "verification"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Messages appended by the wizard.
const (
	MsgAccountVerified = "Account verified: "
	MsgVerifyDetails   = "Perfect! Please verify your details to continue."
	MsgAccountCreated  = "Your account has been created successfully! 🎉"
	MsgStartUsing      = "You can now start using the app."

	ErrTextEmailRequired = "Email is required"
	ErrTextEmailInvalid  = "Please enter a valid email address"
)

// Pacing holds the cosmetic delays between wizard transitions.
type Pacing struct {
	NameSubmit       time.Duration
	VerifiedFollowUp time.Duration
	Navigate         time.Duration
}

// DefaultPacing returns the stock delays.
func DefaultPacing() Pacing {
	return Pacing{
		NameSubmit:       100 * time.Millisecond,
		VerifiedFollowUp: 500 * time.Millisecond,
		Navigate:         1500 * time.Millisecond,
	}
}

// Options configures a Wizard.
type Options struct {
	Scheduler  Scheduler
	Logger     *slog.Logger
	OnNavigate func(model.Route)
	Pacing     Pacing
}

// Wizard is the sign-up state machine. It owns the transcript, the profile
// under construction and every timer and request it starts.
type Wizard struct {
	logger     *slog.Logger
	timers     *Timers
	onNavigate func(model.Route)
	form       *AccountForm
	transcript *Transcript
	emailError string
	profile    model.AccountProfile
	pacing     Pacing
	step       Step
	confirming bool
	starting   bool
	closed     bool
}

// New creates a wizard on the initial step.
func New(opts Options) *Wizard {
	if opts.Scheduler == nil {
		panic("wizard: Options.Scheduler is required")
	}
	return &Wizard{
		logger:     common.ComponentLogger(opts.Logger, "wizard"),
		timers:     NewTimers(opts.Scheduler),
		onNavigate: opts.OnNavigate,
		transcript: &Transcript{},
		pacing:     opts.Pacing,
	}
}

// SubmitName records the user's name and moves to the chat step once the
// name-submit delay elapses. Blank names are ignored.
func (w *Wizard) SubmitName(name string) bool {
	name = strings.TrimSpace(name)
	if w.closed || w.step != StepInitial || w.starting || name == "" {
		return false
	}
	w.profile.Name = name
	w.starting = true
	w.timers.After(w.pacing.NameSubmit, func() {
		w.starting = false
		w.setStep(StepChat)
	})
	return true
}

// SendMessage appends a user message on the chat step.
func (w *Wizard) SendMessage(text string) bool {
	if w.closed || w.step != StepChat || strings.TrimSpace(text) == "" {
		return false
	}
	w.transcript.Append(text, false)
	return true
}

// RequestAccountValidation opens a fresh account form.
func (w *Wizard) RequestAccountValidation() bool {
	if w.closed || w.step != StepChat {
		return false
	}
	w.form = NewAccountForm(w.logger)
	w.setStep(StepAccountValidation)
	return true
}

// CancelAccountValidation tears the form down and returns to chat.
func (w *Wizard) CancelAccountValidation() bool {
	if w.closed || w.step != StepAccountValidation {
		return false
	}
	w.closeForm()
	w.setStep(StepChat)
	return true
}

// CompleteResolution feeds a resolution outcome to the account form. On
// success the profile takes the resolved account and the wizard moves to
// verification; the confirmation panel appears after a short delay.
func (w *Wizard) CompleteResolution(req *Request, accountName string, err error) bool {
	if w.closed || w.step != StepAccountValidation || w.form == nil {
		return false
	}
	resolved, ok := w.form.Complete(req, accountName, err)
	if !ok {
		return false
	}

	w.profile = w.profile.WithResolution(resolved)
	w.closeForm()
	w.setStep(StepVerification)
	w.transcript.Append(MsgAccountVerified+resolved.AccountName, true)

	w.timers.After(w.pacing.VerifiedFollowUp, func() {
		w.transcript.Append(MsgVerifyDetails, true)
		w.confirming = true
	})
	return true
}

// SetEmail records the email address and clears any email error.
func (w *Wizard) SetEmail(email string) {
	if w.closed {
		return
	}
	w.profile.Email = strings.TrimSpace(email)
	w.emailError = ""
}

// Confirm creates the account if the email is valid, then navigates to the
// success screen after the navigate delay.
func (w *Wizard) Confirm() bool {
	if w.closed || w.step != StepVerification || !w.confirming {
		return false
	}
	switch {
	case w.profile.Email == "":
		w.emailError = ErrTextEmailRequired
		return false
	case !IsValidEmail(w.profile.Email):
		w.emailError = ErrTextEmailInvalid
		return false
	}

	w.emailError = ""
	w.transcript.Append(MsgAccountCreated, true)
	w.transcript.Append(MsgStartUsing, true)
	w.confirming = false
	w.setStep(StepComplete)

	route := model.Route{Name: model.RouteSuccess, UserName: w.profile.FirstName()}
	w.timers.After(w.pacing.Navigate, func() {
		w.logger.Info("Sign-up complete", "route", route.String())
		if w.onNavigate != nil {
			w.onNavigate(route)
		}
	})
	return true
}

// Edit goes back to account validation with the current bank and account
// number filled in.
func (w *Wizard) Edit() bool {
	if w.closed || w.step != StepVerification || !w.confirming {
		return false
	}
	w.confirming = false
	w.form = NewAccountForm(w.logger)
	w.form.SelectBank(model.Bank{Code: w.profile.BankCode, Name: w.profile.BankName})
	w.form.SetAccountNumber(w.profile.AccountNumber)
	w.setStep(StepAccountValidation)
	return true
}

// Close stops every timer and cancels every request the wizard owns. No
// callback changes state afterwards.
func (w *Wizard) Close() {
	w.timers.StopAll()
	w.closeForm()
	w.closed = true
}

// Reset closes the session and starts a new one on the initial step.
func (w *Wizard) Reset() {
	w.Close()
	w.closed = false
	w.transcript.Reset()
	w.profile = model.AccountProfile{}
	w.emailError = ""
	w.confirming = false
	w.starting = false
	w.step = StepInitial
}

func (w *Wizard) closeForm() {
	if w.form != nil {
		w.form.Close()
		w.form = nil
	}
}

func (w *Wizard) setStep(s Step) {
	w.logger.Debug("Wizard step changed", "from", w.step.String(), "to", s.String())
	w.step = s
}

// Step returns the active step.
func (w *Wizard) Step() Step { return w.step }

// Profile returns a copy of the profile.
func (w *Wizard) Profile() model.AccountProfile { return w.profile }

// Messages returns the transcript in order.
func (w *Wizard) Messages() []model.Message { return w.transcript.Messages() }

// Form returns the account form while on the account validation step.
func (w *Wizard) Form() *AccountForm { return w.form }

// ConfirmationVisible reports whether the verification panel is shown.
func (w *Wizard) ConfirmationVisible() bool { return w.confirming }

// EmailError returns the email validation error text.
func (w *Wizard) EmailError() string { return w.emailError }

// Pending reports whether a name submission is waiting to take effect.
func (w *Wizard) Pending() bool { return w.starting }

// Closed reports whether Close was called.
func (w *Wizard) Closed() bool { return w.closed }

// VerifyAccount starts resolving the form's input. The caller runs Resolve
// with the returned request and passes the outcome to CompleteResolution.
func (w *Wizard) VerifyAccount(ctx context.Context) (*Request, ResolveInput, bool) {
	if w.closed || w.step != StepAccountValidation || w.form == nil {
		return nil, ResolveInput{}, false
	}
	return w.form.BeginVerify(ctx)
}
