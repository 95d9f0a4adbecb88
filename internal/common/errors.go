// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Rule table errors. These are programmer errors and abort startup.
	ErrDuplicateRuleID = errors.New("duplicate rule id")
	ErrEmptyRuleID     = errors.New("empty rule id")
	ErrInvalidPattern  = errors.New("invalid rule pattern")
	ErrEmptyRuleTable  = errors.New("rule table is empty")

	// Classifier model errors.
	ErrModelNotFound = errors.New("classifier model not found")
	ErrModelCorrupt  = errors.New("classifier model corrupt")

	// Input errors.
	ErrNoTransactions = errors.New("no transactions to classify")

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
