// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Bank API errors.
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidResponse = errors.New("invalid response format")

	// Request lifecycle errors.
	ErrRequestCancelled = errors.New("request cancelled")

	// AI errors.
	ErrNoReply = errors.New("no reply returned")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message meant for the user, or fallback when err
// carries none.
func UserMessage(err error, fallback string) string {
	var userErr *UserError
	if errors.As(err, &userErr) && userErr.UserMessage != "" {
		return userErr.UserMessage
	}
	return fallback
}

// IsCancelled reports whether err stems from a cancelled request or context.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrRequestCancelled) ||
		errors.Is(err, context.Canceled)
}
