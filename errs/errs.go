package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Sentinel values for the failure classes every request can end in.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("operation not allowed")
	ErrInternal     = errors.New("internal server error")
)

// ApiErr carries an HTTP status alongside a wrapped sentinel so callers
// can match with errors.Is and controllers can answer with one lookup.
type ApiErr struct {
	StatusCode int
	err        error
	Field      string // offending field for validation errors, if known
	Cause      error
}

func (e *ApiErr) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.err.Error())
	}
	return e.err.Error()
}

func (e *ApiErr) Unwrap() error { return e.err }

// Message is what goes into the response body.
func (e *ApiErr) Message() string { return e.Error() }

func NewValidation(field, detail string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s: %w", detail, ErrValidation),
		Field:      field,
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewConflict(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrConflict),
	}
}

func NewUnauthorized(detail string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        fmt.Errorf("%s: %w", detail, ErrUnauthorized),
	}
}

func NewForbidden(detail string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        fmt.Errorf("%s: %w", detail, ErrForbidden),
	}
}

// FromDB classifies a storage error for the given entity. Duplicate-key
// violations become Conflict: the unique index is the only guard against
// concurrent double-inserts, and losing that race is not a server fault.
func FromDB(entity string, cause error) *ApiErr {
	switch {
	case cause == nil:
		return nil
	case errors.Is(cause, gorm.ErrRecordNotFound):
		return NewNotFound(entity)
	case errors.Is(cause, gorm.ErrDuplicatedKey),
		strings.Contains(cause.Error(), "duplicate key"),
		strings.Contains(cause.Error(), "UNIQUE constraint"):
		e := NewConflict(entity)
		e.Cause = cause
		return e
	default:
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        ErrInternal,
			Cause:      cause,
		}
	}
}

// Status maps any error to an HTTP status, defaulting to 500.
func Status(err error) int {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}
