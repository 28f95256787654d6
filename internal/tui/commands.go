package tui

import (
	"github.com/Veraticus/acefi/internal/app"
	"github.com/Veraticus/acefi/internal/service"
	"github.com/Veraticus/acefi/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
)

// fetchBanks loads the bank directory for req.
func fetchBanks(dir service.BankDirectory, req *wizard.Request) tea.Cmd {
	return func() tea.Msg {
		banks, err := wizard.FetchBanks(dir, req)
		return banksFetchedMsg{req: req, banks: banks, err: err}
	}
}

// resolveAccount resolves in for req.
func resolveAccount(resolver service.AccountResolver, req *wizard.Request, in wizard.ResolveInput) tea.Cmd {
	return func() tea.Msg {
		name, err := wizard.Resolve(resolver, req, in)
		return accountResolvedMsg{req: req, name: name, err: err}
	}
}

// askAssistant gets the assistant's reply to text for req.
func askAssistant(chat service.ChatService, req *wizard.Request, text string) tea.Cmd {
	return func() tea.Msg {
		return replyReceivedMsg{req: req, reply: app.Reply(chat, req, text)}
	}
}
