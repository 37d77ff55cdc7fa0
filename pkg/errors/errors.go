package errors

import (
	"fmt"
)

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

// ValidationError captures menu definition validation issues.
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

// ConfigError describes a menu option the engine could not honour and
// degraded instead. It is logged, never returned from the engine.
type ConfigError struct {
	MenuID  string
	Option  string
	Message string
}

// NewConfigError constructs a ConfigError for the given menu option.
func NewConfigError(menuID, option, message string) error {
	return &ConfigError{MenuID: menuID, Option: option, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.MenuID != "" {
		return fmt.Sprintf("config error [%s] %s: %s", e.MenuID, e.Option, e.Message)
	}
	return fmt.Sprintf("config error %s: %s", e.Option, e.Message)
}

// LayoutError reports a positioning pass that was skipped.
type LayoutError struct {
	Trigger string
	Reason  string
}

// NewLayoutError constructs a LayoutError for the given recompute trigger.
func NewLayoutError(trigger, reason string) error {
	return &LayoutError{Trigger: trigger, Reason: reason}
}

func (e *LayoutError) Error() string {
	if e == nil {
		return ""
	}
	if e.Trigger != "" {
		return fmt.Sprintf("layout skipped on %s: %s", e.Trigger, e.Reason)
	}
	return fmt.Sprintf("layout skipped: %s", e.Reason)
}
