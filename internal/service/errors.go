package service

import (
	"errors"

	"github.com/sefazor/snapvault-backend/internal/repository"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive user")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
	ErrStorageDisabled    = errors.New("object storage is not configured")
)

// Error pairs one of the sentinel kinds with the message shown to clients.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, detail string) error {
	return &Error{Kind: kind, Detail: detail}
}

// notFound turns a repository miss into a client facing not found error and
// passes anything else through.
func notFound(err error, detail string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fail(ErrNotFound, detail)
	}
	return err
}
