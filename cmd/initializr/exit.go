package main

import (
	"errors"

	"github.com/eduardo/initializr/internal/domain"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitNotFound     = 3
	ExitConflict     = 4
	ExitStorageError = 5
)

// exitCodeFromError maps an error category to the process exit code.
func exitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, domain.ErrConfiguration):
		return ExitConfigError
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrConflict):
		return ExitConflict
	case errors.Is(err, domain.ErrStorage), errors.Is(err, domain.ErrArchive):
		return ExitStorageError
	default:
		return ExitGeneralError
	}
}
