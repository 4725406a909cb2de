package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"edm4hep2lcio/internal/common"
)

// Diagnostic codes.
const (
	CodeUnrecognizedType    = "unrecognized_type"
	CodeCollectionNotFound  = "collection_not_found"
	CodeUnresolvedReference = "unresolved_reference"
	CodeUnlinkedReference   = "unlinked_reference"
)

// Diagnostics holds all diagnostic information from one conversion request.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// EntityType is the requested entity type name (if any).
	EntityType string
	// Collection is the source collection name (if any).
	Collection string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic and returns it for further decoration.
func (d *Diagnostics) AddError(code, message, entityType, collection string) *Diagnostic {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:   DiagnosticError,
		Code:       code,
		Message:    message,
		EntityType: entityType,
		Collection: collection,
	})

	return &d.Errors[len(d.Errors)-1]
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, entityType, collection string) *Diagnostic {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   DiagnosticWarning,
		Code:       code,
		Message:    message,
		EntityType: entityType,
		Collection: collection,
	})

	return &d.Warnings[len(d.Warnings)-1]
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, entityType, collection string) *Diagnostic {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   DiagnosticInfo,
		Code:       code,
		Message:    message,
		EntityType: entityType,
		Collection: collection,
	})

	return &d.Infos[len(d.Infos)-1]
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Errors)
}

// FirstError returns the first error diagnostic, if any.
func (d *Diagnostics) FirstError() (Diagnostic, bool) {
	return common.First(d.Errors)
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

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.EntityType != "" {
		prefix = append(prefix, "["+d.EntityType+"]")
	}

	if d.Collection != "" {
		prefix = append(prefix, d.Collection)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if !common.IsEmpty(d.Suggestions) {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
