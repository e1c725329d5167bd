// Package common defines sentinel errors shared by the samba repositories,
// services and command-line front ends. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// ErrorConflict is returned when a delete cannot proceed because
	// dependent rows still reference the record (messages referencing a user).
	ErrorConflict = errors.New("conflict")

	// Service-level errors.
	ErrorIncorrectPassword = errors.New("incorrect password")
	ErrorValidation        = errors.New("validation error")
	ErrorInternal          = errors.New("internal error")
)
