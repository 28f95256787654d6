package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountProfile_FirstName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single token", in: "Sam", want: "Sam"},
		{name: "full name", in: "Sam Adeyemi", want: "Sam"},
		{name: "surrounding whitespace", in: "  Sam   Adeyemi ", want: "Sam"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountProfile{Name: tt.in}.FirstName())
		})
	}
}

func TestAccountProfile_IsResolved(t *testing.T) {
	p := AccountProfile{Name: "Sam"}
	assert.False(t, p.IsResolved())

	p = p.WithResolution(ResolvedAccount{
		AccountNumber: "1234567890",
		AccountName:   "SAM ADEYEMI",
		BankName:      "Access Bank",
		BankCode:      "044",
	})
	assert.True(t, p.IsResolved())
	assert.Equal(t, "Sam", p.Name)
	assert.Equal(t, "Access Bank", p.BankName)

	p.AccountName = ""
	assert.False(t, p.IsResolved())
}

func TestNewMessage(t *testing.T) {
	first := NewMessage("hello", false)
	second := NewMessage("hi there", true)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "hello", first.Text)
	assert.False(t, first.IsAI)
	assert.True(t, second.IsAI)
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))
}
