package errors

import (
	"fmt"
	"strings"
)

// ConfigError reports an unrecognized value for an enumerated style axis
// (kind, variant, color, size, shape). It is raised at the call boundary
// before any resolution takes place.
type ConfigError struct {
	Axis    string
	Value   string
	Allowed []string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(axis, value string, allowed []string) error {
	return &ConfigError{Axis: axis, Value: value, Allowed: append([]string(nil), allowed...)}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("config error: unrecognized %s %q", e.Axis, e.Value)
	}
	return fmt.Sprintf("config error: unrecognized %s %q (allowed: %s)", e.Axis, e.Value, strings.Join(e.Allowed, ", "))
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ModeSwitchError is returned when a component created in one checked-state
// mode (controlled or uncontrolled) receives props for the other mode.
type ModeSwitchError struct {
	Component string
	From      string
	To        string
}

// NewModeSwitchError constructs a ModeSwitchError.
func NewModeSwitchError(component, from, to string) error {
	return &ModeSwitchError{Component: component, From: from, To: to}
}

func (e *ModeSwitchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("mode switch rejected [%s]: %s -> %s", e.Component, e.From, e.To)
	}
	return fmt.Sprintf("mode switch rejected: %s -> %s", e.From, e.To)
}
