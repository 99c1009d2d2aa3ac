// Package matbench structured error types for better error handling
package matbench

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Cache file I/O errors
	ErrTypeCacheIO ErrorType = iota
	// Corrupt or mismatched cache file errors
	ErrTypeCorruptCache
	// Invalid argument errors
	ErrTypeInvalidArg
	// Numerical errors
	ErrTypeNumerical
)

// BenchError represents a structured error with context
type BenchError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *BenchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("matbench %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("matbench %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *BenchError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeCacheIO:
		return "CacheIO"
	case ErrTypeCorruptCache:
		return "CorruptCache"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeNumerical:
		return "Numerical"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewCacheIOError creates a cache file I/O error
func NewCacheIOError(op string, message string, err error) error {
	return &BenchError{
		Type:    ErrTypeCacheIO,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewCorruptCacheError creates a corrupt cache file error
func NewCorruptCacheError(op string, message string) error {
	return &BenchError{
		Type:    ErrTypeCorruptCache,
		Op:      op,
		Message: message,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &BenchError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewNumericalError creates a numerical error
func NewNumericalError(op string, message string) error {
	return &BenchError{
		Type:    ErrTypeNumerical,
		Op:      op,
		Message: message,
	}
}

// IsCacheIOError checks if an error is a cache I/O error
func IsCacheIOError(err error) bool {
	if e, ok := err.(*BenchError); ok {
		return e.Type == ErrTypeCacheIO
	}
	return false
}

// IsCorruptCacheError checks if an error is a corrupt cache error
func IsCorruptCacheError(err error) bool {
	if e, ok := err.(*BenchError); ok {
		return e.Type == ErrTypeCorruptCache
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*BenchError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}
