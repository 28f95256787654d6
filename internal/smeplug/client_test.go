package smeplug

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:    srv.URL + "/api/v1/",
		Token:      "test-token",
		HTTPClient: srv.Client(),
		Logger:     common.DiscardLogger(),
	})
	require.NoError(t, err)
	return client
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		config  Config
	}{
		{
			name:   "valid config",
			config: Config{BaseURL: "https://smeplug.ng/api/v1", Token: "t"},
		},
		{
			name:    "missing base URL",
			config:  Config{Token: "t"},
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "non-http base URL",
			config:  Config{BaseURL: "ftp://smeplug.ng", Token: "t"},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "missing token",
			config:  Config{BaseURL: "https://smeplug.ng/api/v1"},
			wantErr: common.ErrMissingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_ListBanks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/transfer/banks", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"banks":[{"code":"058","name":"Guaranty Trust Bank"},{"code":"044","name":"Access Bank"}]}`)
	})

	banks, err := client.ListBanks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Bank{
		{ID: "058", Code: "058", Name: "Guaranty Trust Bank"},
		{ID: "044", Code: "044", Name: "Access Bank"},
	}, banks)
}

func TestClient_ListBanks_Failures(t *testing.T) {
	tests := []struct {
		wantIs error
		name   string
		body   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"bad token"}`},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantIs: common.ErrInvalidResponse},
		{name: "missing banks key", status: http.StatusOK, body: `{"data":[]}`, wantIs: common.ErrInvalidResponse},
		{name: "banks not an array", status: http.StatusOK, body: `{"banks":"none"}`, wantIs: common.ErrInvalidResponse},
		{name: "banks null", status: http.StatusOK, body: `{"banks":null}`, wantIs: common.ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			banks, err := client.ListBanks(context.Background())
			require.Error(t, err)
			assert.Nil(t, banks)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestClient_ListBanks_EmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"banks":[]}`)
	})

	banks, err := client.ListBanks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, banks)
}

func TestClient_ResolveAccount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/transfer/resolveaccount", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]string{"bank_code": "058", "account_number": "1234567890"}, req)

		_, _ = io.WriteString(w, `{"status":true,"name":"SAM ADEYEMI"}`)
	})

	name, err := client.ResolveAccount(context.Background(), "058", "1234567890")
	require.NoError(t, err)
	assert.Equal(t, "SAM ADEYEMI", name)
}

func TestClient_ResolveAccount_Failures(t *testing.T) {
	tests := []struct {
		wantIs error
		name   string
		body   string
		status int
	}{
		{name: "status false", status: http.StatusOK, body: `{"status":false,"message":"not found"}`, wantIs: common.ErrAccountNotFound},
		{name: "status zero", status: http.StatusOK, body: `{"status":0,"name":"X"}`, wantIs: common.ErrAccountNotFound},
		{name: "status empty string", status: http.StatusOK, body: `{"status":"","name":"X"}`, wantIs: common.ErrAccountNotFound},
		{name: "status missing", status: http.StatusOK, body: `{"name":"X"}`, wantIs: common.ErrAccountNotFound},
		{name: "status null", status: http.StatusOK, body: `{"status":null,"name":"X"}`, wantIs: common.ErrAccountNotFound},
		{name: "truthy status without name", status: http.StatusOK, body: `{"status":"success"}`, wantIs: common.ErrInvalidResponse},
		{name: "not json", status: http.StatusOK, body: `nope`, wantIs: common.ErrInvalidResponse},
		{name: "non-ok response", status: http.StatusBadRequest, body: `{"status":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			name, err := client.ResolveAccount(context.Background(), "058", "1234567890")
			require.Error(t, err)
			assert.Empty(t, name)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestClient_ResolveAccount_TruthyStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":1,"name":"  ADA OBI "}`)
	})

	name, err := client.ResolveAccount(context.Background(), "044", "0000000001")
	require.NoError(t, err)
	assert.Equal(t, "ADA OBI", name)
}

func TestClient_ResolveAccount_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":true,"name":"SAM"}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ResolveAccount(ctx, "058", "1234567890")
	require.Error(t, err)
	assert.True(t, common.IsCancelled(err))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "******7890", mask("1234567890"))
	assert.Equal(t, "****", mask("12"))
}
