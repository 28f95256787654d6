package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Onboarding
	Next key.Binding
	Skip key.Binding

	// Sign-up
	Submit        key.Binding
	VerifyAccount key.Binding
	Edit          key.Binding
	Back          key.Binding
	StartOver     key.Binding

	// Transcript scrolling
	PageUp   key.Binding
	PageDown key.Binding

	// Application
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("enter/→", "next"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s", "esc"),
			key.WithHelp("s", "skip"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		VerifyAccount: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "verify bank account"),
		),
		Edit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "edit details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		StartOver: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "start over"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),

		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.VerifyAccount, k.StartOver, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Skip},
		{k.Submit, k.VerifyAccount, k.Edit, k.Back, k.StartOver},
		{k.PageUp, k.PageDown, k.Quit},
	}
}

// chatHelp is shown under the sign-up chat.
type chatHelp struct{ k KeyMap }

func (h chatHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.VerifyAccount, h.k.StartOver, h.k.Quit}
}

func (h chatHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

// homeHelp is shown under the home chat.
type homeHelp struct{ k KeyMap }

func (h homeHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.PageUp, h.k.PageDown, h.k.Quit}
}

func (h homeHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
