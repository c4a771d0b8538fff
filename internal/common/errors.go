// Package common defines sentinel errors and small helpers shared by the
// storage, service and CLI layers. Callers should use errors.Is to match
// these values; services wrap them with a short description of the cause.
package common

import "errors"

var (
	// Input errors.
	ErrValidation = errors.New("validation error")
	ErrIncomplete = errors.New("quiz is incomplete")

	// Account errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Lookup and ownership errors.
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
)
