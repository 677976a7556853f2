package lib

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// Input errors
var ErrValidation = errors.New("validation failed")

// Validationf wraps ErrValidation with a caller-facing message.
func Validationf(format string, args ...any) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// InputError is a rejected request whose Message is safe to show the caller.
type InputError struct {
	Message string `json:"message"`
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return ErrValidation
}

// UserMessage returns the caller-facing message of an input error, or
// fallback for anything else.
func UserMessage(err error, fallback string) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Message
	}
	return fallback
}

func MapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code { // SQLSTATE
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict)
}
