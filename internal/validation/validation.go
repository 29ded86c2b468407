package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError describes one violated field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects every violation in a request so the 400 response
// can enumerate all of them instead of failing on the first.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *Errors) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns the collector as an error, or nil when nothing was violated.
func (e *Errors) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// RequiredString checks a mandatory string field against its length
// bound. Bounds count characters, not bytes.
func (e *Errors) RequiredString(field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
		return
	}
	if utf8.RuneCountInString(value) > max {
		e.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// MaxString checks an optional string field against its length bound.
func (e *Errors) MaxString(field string, value *string, max int) {
	if value != nil && utf8.RuneCountInString(*value) > max {
		e.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// NonNegative checks an optional integer field.
func (e *Errors) NonNegative(field string, value *int) {
	if value != nil && *value < 0 {
		e.Add(field, "must be a non-negative integer")
	}
}
