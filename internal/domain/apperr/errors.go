// Package apperr defines the user-facing error taxonomy shared by the API
// client, the view services and the HTTP handlers.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindNetwork      Kind = "network"
	KindServer       Kind = "server"
)

// Sentinels usable with errors.Is against any *Error of the same kind.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrNetwork      = &Error{Kind: KindNetwork}
	ErrServer       = &Error{Kind: KindServer}
)

// Fallback messages shown when the backend gives no usable detail.
const (
	MsgInvalidInput = "Datos inválidos. Verifique la información ingresada."
	MsgUnauthorized = "No autorizado. Inicie sesión nuevamente."
	MsgServer       = "Error del servidor. Intente nuevamente más tarde."
	MsgNetwork      = "Error de conexión. Verifique su conexión a internet."
)

// Error is a single human-readable failure with a kind. Field is set for
// client-side validation failures.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors of the same kind so callers can use the package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation builds a validation error bound to a form field.
func Validation(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" when err is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
