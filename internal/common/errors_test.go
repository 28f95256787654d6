package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewUserError("Failed to load banks", inner)

	assert.Equal(t, "Failed to load banks: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "Failed to load banks", UserMessage(err, "fallback"))
	assert.Equal(t, "fallback", UserMessage(inner, "fallback"))

	wrapped := fmt.Errorf("picker: %w", err)
	assert.Equal(t, "Failed to load banks", UserMessage(wrapped, "fallback"))
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(ErrRequestCancelled))
	assert.True(t, IsCancelled(fmt.Errorf("resolve: %w", context.Canceled)))
	assert.False(t, IsCancelled(ErrAccountNotFound))
	assert.False(t, IsCancelled(nil))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "debug"},
		{in: "INFO"},
		{in: ""},
		{in: "warn"},
		{in: "error"},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
