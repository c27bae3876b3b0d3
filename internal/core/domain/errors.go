package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUserNotFound is returned when no account matches the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when registering a phone already in the store.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a password mismatch during login.
	// Deliberately distinct from ErrUnauthenticated: a wrong password is a
	// 400-class input problem, not a bearer-token failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingCredential is returned when a protected route is called
	// without a bearer credential in the Authorization header.
	ErrMissingCredential = errors.New("missing bearer credential")
	// ErrUnauthenticated is returned when the identity provider rejects the
	// presented token (malformed, expired, or bad signature).
	ErrUnauthenticated = errors.New("invalid authentication token")
	// ErrUninitialized signals use of the dependency resolver before startup
	// wiring completed. A programming-contract fault, never user-facing.
	ErrUninitialized = errors.New("dependency resolver not initialized")
)

// ValidationError carries per-field messages for malformed or missing input.
// The handler layer renders Fields verbatim in the error envelope.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}
