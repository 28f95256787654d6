package wizard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
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

var gtBank = model.Bank{ID: "3", Code: "058", Name: "GTBank"}

func TestAccountForm_CanVerify(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		bank    bool
		want    bool
		wantNum string
	}{
		{"short number", "12345", true, false, "12345"},
		{"ten digits", "1234567890", true, true, "1234567890"},
		{"letters stripped", "12345abcde", true, false, "12345"},
		{"no bank", "1234567890", false, false, "1234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAccountForm(common.DiscardLogger())
			if tt.bank {
				f.SelectBank(gtBank)
			}
			f.SetAccountNumber(tt.raw)

			assert.Equal(t, tt.wantNum, f.AccountNumber())
			assert.Equal(t, tt.want, f.CanVerify())
		})
	}
}

func TestAccountForm_Hint(t *testing.T) {
	f := NewAccountForm(common.DiscardLogger())
	assert.Empty(t, f.AccountNumberHint())

	f.SetAccountNumber("123")
	assert.Equal(t, HintAccountNumberLength, f.AccountNumberHint())

	f.SetAccountNumber("1234567890")
	assert.Empty(t, f.AccountNumberHint())
}

func TestAccountForm_BeginVerifyPrecondition(t *testing.T) {
	f := NewAccountForm(common.DiscardLogger())
	f.SetAccountNumber("1234567890")

	req, _, ok := f.BeginVerify(context.Background())
	assert.False(t, ok)
	assert.Nil(t, req)
	assert.Empty(t, f.Error())
	assert.False(t, f.Verifying())
}

func TestAccountForm_Resolve(t *testing.T) {
	svc := &mockBankService{}
	svc.On("ResolveAccount", mock.Anything, "058", "1234567890").Return("SAM ADEYEMI", nil)

	f := NewAccountForm(common.DiscardLogger())
	f.SelectBank(gtBank)
	f.SetAccountNumber("1234567890")

	req, in, ok := f.BeginVerify(context.Background())
	require.True(t, ok)
	assert.Equal(t, ResolveInput{BankCode: "058", AccountNumber: "1234567890"}, in)
	assert.True(t, f.Verifying())
	assert.False(t, f.CanVerify(), "no double submit while verifying")

	name, err := Resolve(svc, req, in)
	require.NoError(t, err)

	got, ok := f.Complete(req, name, err)
	require.True(t, ok)
	assert.Equal(t, model.ResolvedAccount{
		AccountNumber: "1234567890",
		AccountName:   "SAM ADEYEMI",
		BankName:      "GTBank",
		BankCode:      "058",
	}, got)
	assert.False(t, f.Verifying())
	svc.AssertExpectations(t)
}

func TestAccountForm_Failures(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{
			name: "account not found",
			err:  fmt.Errorf("resolve 058: %w", common.ErrAccountNotFound),
			want: ErrTextAccountNotFound,
		},
		{
			name: "invalid response",
			err:  common.ErrInvalidResponse,
			want: ErrTextResolveFailed,
		},
		{
			name: "transport",
			err:  errors.New("unexpected status 502"),
			want: ErrTextResolveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAccountForm(common.DiscardLogger())
			f.SelectBank(gtBank)
			f.SetAccountNumber("1234567890")
			req, _, ok := f.BeginVerify(context.Background())
			require.True(t, ok)

			_, ok = f.Complete(req, "", tt.err)
			assert.False(t, ok)
			assert.Equal(t, tt.want, f.Error())
			assert.True(t, f.CanVerify(), "user may resubmit")

			_, _, ok = f.BeginVerify(context.Background())
			require.True(t, ok)
			assert.Empty(t, f.Error(), "resubmitting clears the error")
		})
	}
}

func TestAccountForm_EditClearsError(t *testing.T) {
	failed := func(t *testing.T) *AccountForm {
		t.Helper()
		f := NewAccountForm(common.DiscardLogger())
		f.SelectBank(gtBank)
		f.SetAccountNumber("1234567890")
		req, _, ok := f.BeginVerify(context.Background())
		require.True(t, ok)
		_, ok = f.Complete(req, "", common.ErrAccountNotFound)
		require.False(t, ok)
		require.Equal(t, ErrTextAccountNotFound, f.Error())
		return f
	}

	t.Run("same number keeps error", func(t *testing.T) {
		f := failed(t)
		f.SetAccountNumber("1234567890")
		assert.Equal(t, ErrTextAccountNotFound, f.Error())
	})

	t.Run("new number", func(t *testing.T) {
		f := failed(t)
		f.SetAccountNumber("123456789")
		assert.Empty(t, f.Error())
	})

	t.Run("new bank", func(t *testing.T) {
		f := failed(t)
		f.SelectBank(model.Bank{ID: "1", Code: "044", Name: "Access Bank"})
		assert.Empty(t, f.Error())
	})
}

func TestAccountForm_CloseIgnoresLateResult(t *testing.T) {
	f := NewAccountForm(common.DiscardLogger())
	f.SelectBank(gtBank)
	f.SetAccountNumber("1234567890")
	req, _, ok := f.BeginVerify(context.Background())
	require.True(t, ok)

	f.Close()
	assert.True(t, req.Cancelled())

	_, ok = f.Complete(req, "SAM ADEYEMI", nil)
	assert.False(t, ok)
	assert.Empty(t, f.Error())
}

func TestAccountForm_LogsCancelledResult(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := NewAccountForm(logger)
	f.SelectBank(gtBank)
	f.SetAccountNumber("1234567890")
	req, _, ok := f.BeginVerify(context.Background())
	require.True(t, ok)

	f.Close()
	_, ok = f.Complete(req, "", req.Context().Err())
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Dropped resolution for cancelled request")
	assert.Empty(t, f.Error())
}

func TestAccountForm_ChooseBank(t *testing.T) {
	svc := &mockBankService{}
	svc.On("ListBanks", mock.Anything).Return(testBanks(), nil)

	f := NewAccountForm(common.DiscardLogger())
	req := f.Picker().Open(context.Background())
	banks, err := FetchBanks(svc, req)
	require.NoError(t, err)
	require.True(t, f.Picker().CompleteFetch(req, banks, err))

	assert.False(t, f.ChooseBank("000"))
	require.True(t, f.ChooseBank("058"))

	bank, ok := f.Bank()
	require.True(t, ok)
	assert.Equal(t, gtBank, bank)
	assert.False(t, f.Picker().Visible())
	svc.AssertExpectations(t)
}
