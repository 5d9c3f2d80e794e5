package domain

import "fmt"

type ErrCode string

const (
	CodeValidation   ErrCode = "validation_error"
	CodeNotFound     ErrCode = "not_found"
	CodeInvalidState ErrCode = "invalid_state"
	CodePersistence  ErrCode = "persistence_error"
	CodeUnauthorized ErrCode = "unauthorized"
)

type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *AppError) Error() string {
	if len(e.Meta) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Meta)
}

func (e *AppError) Unwrap() error { return e.Cause }

func ErrValidation(msg string) error { return &AppError{Code: CodeValidation, Message: msg} }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrNotFound(msg string) error     { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrInvalidState(msg string) error { return &AppError{Code: CodeInvalidState, Message: msg} }
func ErrUnauthorized(msg string) error { return &AppError{Code: CodeUnauthorized, Message: msg} }

// ErrPersistence wraps a failed store write. The cause stays in logs only;
// the message is what the API surfaces.
func ErrPersistence(msg string, cause error) error {
	return &AppError{Code: CodePersistence, Message: msg, Cause: cause}
}
