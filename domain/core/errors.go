package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrReportNotFound = fmt.Errorf("%w: report", ErrNotFound)
	ErrCheckNotFound  = fmt.Errorf("%w: check", ErrNotFound)

	// Validation errors
	ErrInvalidConfig    = errors.New("invalid test configuration")
	ErrUnknownGenerator = errors.New("unknown generator kind")

	// Scheduling errors
	ErrRunInProgress = errors.New("analysis run already in progress")
)

// Error constructors with context
func NewInvalidConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, reason)
}

func NewUnknownGeneratorError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

func NewCheckNotFoundError(key string) error {
	return fmt.Errorf("%w: %q", ErrCheckNotFound, key)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) || errors.Is(err, ErrUnknownGenerator)
}

func IsRunInProgressError(err error) bool {
	return errors.Is(err, ErrRunInProgress)
}
