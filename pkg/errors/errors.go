package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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

// Error codes, one per failure class in the session pipeline.
const (
	ErrValidation ErrorCode = iota + 1000
	ErrUnsupportedFormat
	ErrTranscription
	ErrSummarization
	ErrUniqueViolation
	ErrNotFound
	ErrInternal
)

// Error constructors
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
	}
}

func UnsupportedFormat(ext string) *AppError {
	return &AppError{
		Code:    ErrUnsupportedFormat,
		Message: fmt.Sprintf("unsupported file type %q: only .txt, .pdf, .docx supported", ext),
	}
}

func Transcription(err error) *AppError {
	return &AppError{
		Code:    ErrTranscription,
		Message: "transcription failed",
		Err:     err,
	}
}

func Summarization(err error) *AppError {
	return &AppError{
		Code:    ErrSummarization,
		Message: "summarization failed",
		Err:     err,
	}
}

func UniqueViolation(patient string, visit int, err error) *AppError {
	return &AppError{
		Code:    ErrUniqueViolation,
		Message: fmt.Sprintf("visit %d already recorded for patient %q", visit, patient),
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

// Code extracts the ErrorCode from any error in the chain, ErrInternal
// when the error is not an AppError.
func Code(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return Code(err) == code
}
