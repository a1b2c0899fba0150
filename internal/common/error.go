// Package common defines shared constants and sentinel errors used across
// the storefront components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors. One sentinel for malformed, badly signed and expired
	// tokens so the transport cannot leak which check failed.
	ErrInvalidToken = errors.New("invalid token")

	// Registration / login errors.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUnknownEmail  = errors.New("unknown email")
	ErrWrongPassword = errors.New("wrong password")

	// Cart errors.
	ErrInvalidSlot = errors.New("invalid cart slot")
)
