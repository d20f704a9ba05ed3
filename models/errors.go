package models

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrClipNotFound    = errors.New("clip not found")
	ErrNoActiveProject = errors.New("no active project")
)

// ValidationError reports caller input that violates a precondition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// GenerationError is the single failure signal for AI round trips. Message
// holds the best human-readable summary available from the response.
type GenerationError struct {
	Endpoint string
	Message  string
}

func (e *GenerationError) Error() string {
	if e.Endpoint == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}
