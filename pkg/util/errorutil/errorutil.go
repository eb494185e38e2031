package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a DomainError.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuthentication
	KindForbidden
)

// String returns a readable kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuthentication:
		return "authentication"
	case KindForbidden:
		return "forbidden"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// HTTPStatus maps the kind to the response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error codes shared by the API.
const (
	CodeMissingFields  = "MISSING_FIELDS"
	CodeInvalidSalary  = "INVALID_SALARY"
	CodeInvalidRole    = "INVALID_ROLE"
	CodeUserExists     = "USER_EXISTS"
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeInvalidPayload = "INVALID_PAYLOAD"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Kind       Kind
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError whose status follows its kind.
func NewDomainError(kind Kind, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message, HTTPStatus: kind.HTTPStatus()}
}

func NewValidationError(code, message string) error {
	return NewDomainError(KindValidation, code, message)
}

func NewConflict(code, message string) error {
	return NewDomainError(KindConflict, code, message)
}

func NewNotFound(code, message string) error {
	return NewDomainError(KindNotFound, code, message)
}

func NewUnauthorized(message string) error {
	return NewDomainError(KindAuthentication, CodeUnauthorized, message)
}

func NewForbidden(message string) error {
	return NewDomainError(KindForbidden, CodeForbidden, message)
}

// NewInternalError hides err behind a generic message while keeping it for logs.
func NewInternalError(err error) error {
	de := NewDomainError(KindInternal, CodeInternal, "internal server error")
	de.Err = err
	return de
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	de, _ := NewInternalError(err).(*DomainError)
	return de
}

// IsKind reports whether err carries a DomainError of the given kind.
func IsKind(err error, kind Kind) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Kind == kind
}
