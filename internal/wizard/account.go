package wizard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/service"
)

// Account form messages shown to the user.
const (
	ErrTextAccountNotFound  = "Could not validate account. Please check your details."
	ErrTextResolveFailed    = "Failed to validate account. Please try again."
	HintAccountNumberLength = "Please enter a valid 10-digit account number"
)

// ResolveInput is what the form submits for resolution.
type ResolveInput struct {
	BankCode      string
	AccountNumber string
}

// AccountForm collects a bank and account number and resolves them to the
// account holder's name.
type AccountForm struct {
	logger        *slog.Logger
	picker        *BankPicker
	pending       *Request
	bank          model.Bank
	accountNumber string
	err           string
	hasBank       bool
}

// NewAccountForm creates an empty form with its own bank picker.
func NewAccountForm(logger *slog.Logger) *AccountForm {
	return &AccountForm{
		logger: common.ComponentLogger(logger, "account_form"),
		picker: NewBankPicker(logger),
	}
}

// Picker returns the form's bank picker.
func (f *AccountForm) Picker() *BankPicker {
	return f.picker
}

// SelectBank sets the bank to resolve against and clears any resolution error.
func (f *AccountForm) SelectBank(bank model.Bank) {
	f.bank = bank
	f.hasBank = true
	f.err = ""
}

// ChooseBank selects the listed bank with code via the picker, which closes
// as part of the same step.
func (f *AccountForm) ChooseBank(code string) bool {
	bank, ok := f.picker.Select(code)
	if !ok {
		return false
	}
	f.SelectBank(bank)
	return true
}

// Bank returns the selected bank.
func (f *AccountForm) Bank() (model.Bank, bool) {
	return f.bank, f.hasBank
}

// SetAccountNumber stores raw after dropping non-digits and truncating. A
// changed number clears any resolution error.
func (f *AccountForm) SetAccountNumber(raw string) {
	n := SanitizeAccountNumber(raw)
	if n != f.accountNumber {
		f.err = ""
	}
	f.accountNumber = n
}

// AccountNumber returns the sanitised account number.
func (f *AccountForm) AccountNumber() string {
	return f.accountNumber
}

// AccountNumberHint returns the length hint while a partial number is typed.
func (f *AccountForm) AccountNumberHint() string {
	if f.accountNumber != "" && !IsValidAccountNumber(f.accountNumber) {
		return HintAccountNumberLength
	}
	return ""
}

// CanVerify reports whether the verify action is enabled.
func (f *AccountForm) CanVerify() bool {
	return f.hasBank && IsValidAccountNumber(f.accountNumber) && f.pending == nil
}

// Verifying reports whether a resolution is in flight.
func (f *AccountForm) Verifying() bool {
	return f.pending != nil
}

// Error returns the last resolution error text.
func (f *AccountForm) Error() string {
	return f.err
}

// BeginVerify starts a resolution. It returns false without side effects when
// the form cannot verify.
func (f *AccountForm) BeginVerify(ctx context.Context) (*Request, ResolveInput, bool) {
	if !f.CanVerify() {
		return nil, ResolveInput{}, false
	}
	f.err = ""
	f.pending = NewRequest(ctx)
	in := ResolveInput{BankCode: f.bank.Code, AccountNumber: f.accountNumber}
	f.logger.Debug("Resolving account", "bank_code", in.BankCode)
	return f.pending, in, true
}

// Complete applies the outcome of req. Results for stale or cancelled
// requests are ignored and report false.
func (f *AccountForm) Complete(req *Request, accountName string, err error) (model.ResolvedAccount, bool) {
	if req == nil || req != f.pending || req.Cancelled() {
		if req != nil && common.IsCancelled(req.Err()) {
			f.logger.Debug("Dropped resolution for cancelled request", "error", err)
		}
		return model.ResolvedAccount{}, false
	}
	f.pending = nil
	req.Cancel()

	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			f.logger.Info("Account not found", "bank_code", f.bank.Code)
			f.err = ErrTextAccountNotFound
		} else {
			f.logger.Error("Account resolution failed", "error", err)
			f.err = ErrTextResolveFailed
		}
		return model.ResolvedAccount{}, false
	}

	// The bank name comes from the selection, not the resolution response.
	return model.ResolvedAccount{
		AccountNumber: f.accountNumber,
		AccountName:   accountName,
		BankName:      f.bank.Name,
		BankCode:      f.bank.Code,
	}, true
}

// Close cancels any resolution or bank fetch in flight.
func (f *AccountForm) Close() {
	if f.pending != nil {
		f.pending.Cancel()
		f.pending = nil
	}
	f.picker.Close()
}

// Resolve performs the blocking resolution for req.
func Resolve(resolver service.AccountResolver, req *Request, in ResolveInput) (string, error) {
	return resolver.ResolveAccount(req.Context(), in.BankCode, in.AccountNumber)
}

// FetchBanks performs the blocking bank directory fetch for req.
func FetchBanks(dir service.BankDirectory, req *Request) ([]model.Bank, error) {
	return dir.ListBanks(req.Context())
}
