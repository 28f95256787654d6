package model

// Bank is an entry from the bank directory.
type Bank struct {
	ID   string
	Code string // Unique per bank; the key sent to account resolution
	Name string
}

// ResolvedAccount is the outcome of a successful account resolution.
type ResolvedAccount struct {
	AccountNumber string
	AccountName   string
	BankName      string
	BankCode      string
}
