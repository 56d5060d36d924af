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

// DecodeError reports resource bytes that were found but are not a decodable
// image. Unlike absent data it is never tolerated by the renderer.
type DecodeError struct {
	Source string
	Err    error
}

// NewDecodeError constructs a DecodeError for the named source.
func NewDecodeError(source string, err error) error {
	return &DecodeError{Source: source, Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("decode error: %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("decode error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError indicates a preview for a part could not be produced.
type RenderError struct {
	Part    string
	Message string
	Err     error
}

// NewRenderError constructs a RenderError for the given part.
func NewRenderError(part string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RenderError{Part: part, Message: message, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Part != "" {
		return fmt.Sprintf("render error [%s]: %s", e.Part, e.Message)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
