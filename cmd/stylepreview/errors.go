package main

import (
	"fmt"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// suggestionFor maps loader and render failures to a hint for the user.
func suggestionFor(err error) string {
	switch {
	case style.IsCode(err, style.ErrCodeNotFound):
		return "Check that the style document and part name exist. Run 'stylepreview parts' to list parts."
	case style.IsCode(err, style.ErrCodeDuplicate):
		return "Rename or remove the duplicated entry in the style document."
	case style.IsCode(err, style.ErrCodeType):
		return "Fix the property value so it matches the property's kind."
	case style.IsCode(err, style.ErrCodeValidation):
		return "Fix the reported field in the style document and try again."
	case style.IsCode(err, style.ErrCodeDecode):
		return "Replace the image resource used by the part; its file is corrupt or not a supported image format."
	case style.IsCode(err, style.ErrCodeCancelled):
		return "Re-run the command to render the remaining parts."
	default:
		return "Run again with --verbose for more detail."
	}
}
