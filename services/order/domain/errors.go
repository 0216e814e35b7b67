package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrMalformedMessage indicates an event payload that cannot be
	// deserialized. The consumer abandons such messages for the channel's
	// poison handling.
	ErrMalformedMessage = errors.New("malformed message")
)

// ValidationError reports every violated field of a creation request at once,
// keyed by field name. It is user-correctable and always surfaced synchronously.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError with an empty field map.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a violation for the given field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

// HasErrors reports whether any field violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error lists all violated fields in deterministic order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
