package tui

import (
	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/wizard"
)

// Service results. Each carries the request it was issued for so stale
// results can be told apart.
type banksFetchedMsg struct {
	err   error
	req   *wizard.Request
	banks []model.Bank
}

type accountResolvedMsg struct {
	err  error
	req  *wizard.Request
	name string
}

type replyReceivedMsg struct {
	req   *wizard.Request
	reply string
}
