package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds all diagnostic information from one pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Kind is the entity kind this relates to (if any).
	Kind string
	// ID is the entity identifier or declared name this relates to (if any).
	ID string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, kind, id string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Kind:     kind,
		ID:       id,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, kind, id string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Kind:     kind,
		ID:       id,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, kind, id string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Kind:     kind,
		ID:       id,
	})
}

// Suggest attaches suggestions to the most recently added error.
func (d *Diagnostics) Suggest(suggestions ...string) {
	if len(d.Errors) == 0 || len(suggestions) == 0 {
		return
	}

	last := &d.Errors[len(d.Errors)-1]
	last.Suggestions = append(last.Suggestions, suggestions...)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Messages returns the rendered messages of the given diagnostics,
// each prefixed with source when source is not empty.
func Messages(source string, ds []Diagnostic) []string {
	out := make([]string, 0, len(ds))

	for _, d := range ds {
		out = append(out, Prefix(source, d.String()))
	}

	return out
}

// Prefix prepends a document or source identifier to msg.
func Prefix(source, msg string) string {
	if source == "" {
		return msg
	}

	return source + ": " + msg
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Kind != "" {
		prefix = append(prefix, "["+d.Kind+"]")
	}

	if d.ID != "" {
		prefix = append(prefix, d.ID)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
