package model

import "strings"

// AccountProfile is the sign-up data collected across the wizard steps.
type AccountProfile struct {
	Name          string
	Email         string
	BankName      string
	BankCode      string
	AccountNumber string
	AccountName   string
}

// FirstName returns the first whitespace-separated token of Name.
func (p AccountProfile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// IsResolved reports whether the bank account has been resolved.
func (p AccountProfile) IsResolved() bool {
	return p.AccountNumber != "" && p.BankCode != "" && p.AccountName != ""
}

// WithResolution returns a copy of p carrying the resolved bank account.
func (p AccountProfile) WithResolution(r ResolvedAccount) AccountProfile {
	p.AccountNumber = r.AccountNumber
	p.AccountName = r.AccountName
	p.BankName = r.BankName
	p.BankCode = r.BankCode
	return p
}
