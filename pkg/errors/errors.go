/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package errors defines structured errors for pipeline failures that happen
// around validation: reading inputs, decoding them, loading configuration and
// serving requests. Semantic problems found inside a well-formed problem are
// reported as validator.Violation values instead.
package errors

import (
	"fmt"
)

// ErrorCode is a stable identifier for a class of pipeline failure.
type ErrorCode string

const (
	// ErrCodeReadProblem means the problem document could not be opened or read.
	ErrCodeReadProblem ErrorCode = "E0000"
	// ErrCodeDecodeProblem means the problem document is not a valid problem.
	ErrCodeDecodeProblem ErrorCode = "E0001"
	// ErrCodeReadMatrix means a routing matrix could not be read or decoded.
	ErrCodeReadMatrix ErrorCode = "E0002"
	// ErrCodeNoSolution means the solver could not find any solution.
	ErrCodeNoSolution ErrorCode = "E0003"
	// ErrCodeReadConfig means the algorithm configuration could not be read.
	ErrCodeReadConfig ErrorCode = "E0004"

	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeMethodNotAllowed  ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeRequestTooLarge   ErrorCode = "REQUEST_TOO_LARGE"
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeTimeout           ErrorCode = "TIMEOUT"
	ErrCodeUnavailable       ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// StructuredError carries a code, a human readable message, an optional
// cause and optional context fields.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a StructuredError without a cause.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Wrap creates a StructuredError around cause.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext creates a StructuredError around cause with context fields.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}
