package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Precondition errors: reported before any mutation
	ErrSourceMissing   ErrorCode = "SOURCE_MISSING"
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileExists   ErrorCode = "PROFILE_EXISTS"
	ErrDestExists      ErrorCode = "DEST_EXISTS"
	ErrArchiveCorrupt  ErrorCode = "ARCHIVE_CORRUPT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// I/O errors during walk/compress/extract/copy
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrWalkFailed  ErrorCode = "WALK_FAILED"
	ErrBackup      ErrorCode = "BACKUP_FAILED"

	// Lock contention during merge: carries the locked file's path so the
	// caller can tell the user which file to release.
	ErrFileLocked ErrorCode = "FILE_LOCKED"
)

// ProfileError represents a structured error with code and details
type ProfileError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ProfileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ProfileError) Unwrap() error {
	return e.Wrapped
}

// Is matches two ProfileErrors by code
func (e *ProfileError) Is(target error) bool {
	var targetErr *ProfileError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ProfileError with the given code and message
func New(code ErrorCode, message string) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ProfileError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ProfileError
func Wrap(err error, code ErrorCode, message string) *ProfileError {
	if err == nil {
		return nil
	}
	return &ProfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ProfileError {
	if err == nil {
		return nil
	}
	return &ProfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ProfileError) WithDetail(key string, value interface{}) *ProfileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *ProfileError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ProfileError
func GetErrorCode(err error) ErrorCode {
	var perr *ProfileError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ProfileError
func GetErrorDetails(err error) map[string]interface{} {
	var perr *ProfileError
	if errors.As(err, &perr) {
		return perr.Details
	}
	return nil
}
