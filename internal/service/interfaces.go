// Package service defines the interfaces between the UI layer and the
// external services it talks to.
package service

import (
	"context"

	"github.com/Veraticus/acefi/internal/model"
)

// BankDirectory lists the banks accounts can be resolved against.
type BankDirectory interface {
	ListBanks(ctx context.Context) ([]model.Bank, error)
}

// AccountResolver maps a bank code and account number to the legal name on
// the account. A business failure (no such account) wraps
// common.ErrAccountNotFound.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, bankCode, accountNumber string) (string, error)
}

// BankService is the full bank API surface.
type BankService interface {
	BankDirectory
	AccountResolver
}

// ChatService exchanges free-text messages for free-text replies within a
// single conversation.
type ChatService interface {
	// Send never fails; on error it returns a fixed apology.
	Send(ctx context.Context, text string) string
}
