package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"github.com/Veraticus/acefi/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBankService struct {
	mock.Mock
}

func (m *mockBankService) ListBanks(ctx context.Context) ([]model.Bank, error) {
	args := m.Called(ctx)
	banks, _ := args.Get(0).([]model.Bank)
	return banks, args.Error(1)
}

func (m *mockBankService) ResolveAccount(ctx context.Context, bankCode, accountNumber string) (string, error) {
	args := m.Called(ctx, bankCode, accountNumber)
	return args.String(0), args.Error(1)
}

var testBanks = []model.Bank{
	{ID: "057", Code: "057", Name: "Zenith Bank"},
	{ID: "044", Code: "044", Name: "Access Bank"},
	{ID: "058", Code: "058", Name: "GTBank"},
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestPrintBanks(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		inOrder  []string
		contains []string
		absent   []string
	}{
		{
			name:     "all banks sorted",
			inOrder:  []string{"Access Bank", "GTBank", "Zenith Bank"},
			contains: []string{"3 of 3 banks"},
		},
		{
			name:     "filtered",
			search:   "ZEN",
			contains: []string{"Zenith Bank", "1 of 3 banks"},
			absent:   []string{"Access Bank"},
		},
		{
			name:     "no match suggests",
			search:   "zenth",
			contains: []string{`No banks match "zenth"`, "Did you mean: Zenith Bank?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := testCommand()
			require.NoError(t, printBanks(cmd, testBanks, tt.search))

			got := out.String()
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, notWant := range tt.absent {
				assert.NotContains(t, got, notWant)
			}
			last := -1
			for _, want := range tt.inOrder {
				idx := bytes.Index(out.Bytes(), []byte(want))
				require.Greater(t, idx, last, "%s out of order", want)
				last = idx
			}
		})
	}
}

func TestResolveInput(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		account string
		want    wizard.ResolveInput
		wantErr string
	}{
		{name: "valid", code: "058", account: "0123456789", want: wizard.ResolveInput{BankCode: "058", AccountNumber: "0123456789"}},
		{name: "sanitised", code: " 058 ", account: "012-345-6789", want: wizard.ResolveInput{BankCode: "058", AccountNumber: "0123456789"}},
		{name: "too short", code: "058", account: "12345", wantErr: wizard.HintAccountNumberLength},
		{name: "letters stripped", code: "058", account: "12345abcde", wantErr: wizard.HintAccountNumberLength},
		{name: "no bank", code: "  ", account: "0123456789", wantErr: "Please select a bank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveInput(tt.code, tt.account)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, common.UserMessage(err, ""))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAccount(t *testing.T) {
	in := wizard.ResolveInput{BankCode: "058", AccountNumber: "0123456789"}

	t.Run("success", func(t *testing.T) {
		banks := &mockBankService{}
		banks.On("ResolveAccount", mock.Anything, "058", "0123456789").Return("SAMUEL ADE", nil)
		banks.On("ListBanks", mock.Anything).Return(testBanks, nil)

		cmd, _ := testCommand()
		acct, err := resolveAccount(cmd, banks, in)
		require.NoError(t, err)
		assert.Equal(t, model.ResolvedAccount{
			AccountNumber: "0123456789",
			AccountName:   "SAMUEL ADE",
			BankName:      "GTBank",
			BankCode:      "058",
		}, acct)
		banks.AssertExpectations(t)
	})

	t.Run("directory failure keeps the code", func(t *testing.T) {
		banks := &mockBankService{}
		banks.On("ResolveAccount", mock.Anything, "058", "0123456789").Return("SAMUEL ADE", nil)
		banks.On("ListBanks", mock.Anything).Return(nil, errors.New("offline"))

		cmd, _ := testCommand()
		acct, err := resolveAccount(cmd, banks, in)
		require.NoError(t, err)
		assert.Equal(t, "058", acct.BankName)
	})

	t.Run("not found", func(t *testing.T) {
		banks := &mockBankService{}
		banks.On("ResolveAccount", mock.Anything, "058", "0123456789").
			Return("", fmt.Errorf("resolve: %w", common.ErrAccountNotFound))

		cmd, _ := testCommand()
		_, err := resolveAccount(cmd, banks, in)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrAccountNotFound)
		assert.Equal(t, wizard.ErrTextAccountNotFound, common.UserMessage(err, ""))
		banks.AssertNotCalled(t, "ListBanks", mock.Anything)
	})

	t.Run("transport failure", func(t *testing.T) {
		banks := &mockBankService{}
		banks.On("ResolveAccount", mock.Anything, "058", "0123456789").Return("", errors.New("timeout"))

		cmd, _ := testCommand()
		_, err := resolveAccount(cmd, banks, in)
		assert.Equal(t, wizard.ErrTextResolveFailed, common.UserMessage(err, ""))
	})
}

func TestVersionCmd(t *testing.T) {
	cmd := versionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)
	assert.Equal(t, "acefi dev\n", out.String())
}
