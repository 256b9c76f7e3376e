package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Failure is one failing validator outcome. A failure without a configured message
// is "bare": Rendered is false and Message is empty.
type Failure struct {
	Message  string
	Rendered bool
}

// String returns the rendered message, or "false" for a bare failure.
func (f Failure) String() string {
	if !f.Rendered {
		return "false"
	}
	return f.Message
}

// FieldResult is the outcome of one rule in one pass.
type FieldResult struct {
	Fields   []string
	CustomID string
	// Result holds failing outcomes only; empty means the rule passed.
	Result []Failure
	Params Params
}

// Valid reports whether the rule passed.
func (r FieldResult) Valid() bool {
	return len(r.Result) == 0
}

// Key returns the identity under which the result is reported: the custom id when
// declared, otherwise the comma-joined field paths.
func (r FieldResult) Key() string {
	if r.CustomID != "" {
		return r.CustomID
	}
	return strings.Join(r.Fields, ",")
}

// Covers reports whether the result is reported under field.
func (r FieldResult) Covers(field string) bool {
	if r.CustomID != "" {
		return r.CustomID == field
	}
	return slices.Contains(r.Fields, field)
}

// Messages returns the rendered messages of the result, skipping bare failures.
func (r FieldResult) Messages() []string {
	var messages []string
	for _, f := range r.Result {
		if f.Rendered {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

// ObjectResult is the outcome of a whole pass.
type ObjectResult struct {
	Valid bool
	// Target is the validated object; the engine never modifies it.
	Target Target
	// Result is ordered by completion. Dependents always follow their dependencies.
	Result []FieldResult
}

// IsFieldValid returns the validity of the first result reported under field.
// found is false when no executed rule covers field.
func (r *ObjectResult) IsFieldValid(field string) (valid, found bool) {
	if r == nil {
		return false, false
	}
	for _, res := range r.Result {
		if res.Covers(field) {
			return res.Valid(), true
		}
	}
	return false, false
}

// Messages returns the rendered messages of the first failing result reported under field.
func (r *ObjectResult) Messages(field string) []string {
	if r == nil {
		return nil
	}
	for _, res := range r.Result {
		if res.Covers(field) && !res.Valid() {
			return res.Messages()
		}
	}
	return nil
}

// Message returns the first rendered message for field, or "".
func (r *ObjectResult) Message(field string) string {
	if messages := r.Messages(field); len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// Err converts failures into an Errors value, or returns nil when the pass was valid.
func (r *ObjectResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}

	var errs Errors
	for _, res := range r.Result {
		for _, f := range res.Result {
			errs.Add(FieldError{Field: res.Key(), Message: f.Message})
		}
	}
	return errs
}

// FieldError is a single failure keyed by the reported field identity.
type FieldError struct {
	Field   string
	Message string
}

// Errors is a collection of field errors that satisfies the error interface.
type Errors []FieldError

// Error joins every field error into one message.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, err := range e {
		msg := err.Message
		if msg == "" {
			msg = "is invalid"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *Errors) Add(err FieldError) {
	*e = append(*e, err)
}

// Has reports whether any error is recorded for field.
func (e Errors) Has(field string) bool {
	return slices.ContainsFunc(e, func(fe FieldError) bool { return fe.Field == field })
}

// Get returns the non-empty messages recorded for field.
func (e Errors) Get(field string) []string {
	var messages []string
	for _, err := range e {
		if err.Field == field && err.Message != "" {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// ExtractErrors extracts Errors from an error chain.
func ExtractErrors(err error) Errors {
	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
