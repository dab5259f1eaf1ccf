package util

import (
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// User-facing messages. The HTTP surface speaks Spanish to match the
// complaint forms it serves.
const (
	MessageMissingFields = "Faltan campos requeridos"
	MessageInternalError = "Error interno del servidor"
	MessageNotFound      = "Reclamo no encontrado"
	MessageRateLimited   = "Demasiadas solicitudes, intente más tarde"
)

// DomainError standardizes application errors.
type DomainError struct {
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

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError reports a user-correctable request problem.
func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

// NewPersistenceError wraps a store write or read failure. The cause is
// kept for logs; callers only ever see the generic message.
func NewPersistenceError(err error) error {
	return &DomainError{
		Code:       "PERSISTENCE_FAILED",
		Message:    MessageInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewNotificationError wraps an email delivery failure.
func NewNotificationError(err error) error {
	return &DomainError{
		Code:       "NOTIFICATION_FAILED",
		Message:    MessageInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewNotFound() error {
	return NewDomainError("NOT_FOUND", MessageNotFound, http.StatusNotFound)
}

func NewRateLimited() error {
	return NewDomainError("RATE_LIMITED", MessageRateLimited, http.StatusTooManyRequests)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    MessageInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
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
	if errors.Is(err, mongo.ErrNoDocuments) {
		if de, ok := NewNotFound().(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    MessageInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
