package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used to classify AppError values.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeNotFound           = "NOT_FOUND"
	CodeStorage            = "STORAGE_ERROR"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: "Invalid credentials."}
}

func NewDuplicateEmailError() *AppError {
	return &AppError{Code: CodeDuplicateEmail, Message: "Email already registered."}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found."}
}

// NewStorageError wraps a persistence failure. message is what the client sees.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Code: CodeStorage, Message: message, Err: err}
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeValidation:
			return fiber.StatusBadRequest
		case CodeUnauthenticated, CodeInvalidCredentials:
			return fiber.StatusUnauthorized
		case CodeDuplicateEmail:
			return fiber.StatusConflict
		case CodeNotFound:
			return fiber.StatusNotFound
		default:
			return fiber.StatusInternalServerError
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// RespondWithError writes err as a {"message": ...} body with its mapped status.
// Causes wrapped inside an AppError are never sent to the client.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)

	message := "Internal server error."
	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		message = appErr.Message
	case errors.As(err, &fiberErr):
		message = fiberErr.Message
	}

	return c.Status(status).JSON(ErrorResponse{Message: message})
}
