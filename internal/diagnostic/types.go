package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"customfields/internal/common"
)

// Codes reported by the engine.
const (
	CodeRequired          = "required"
	CodeInvalidEmail      = "invalid_email"
	CodeInvalidPhone      = "invalid_phone"
	CodeInvalidNumber     = "invalid_number"
	CodeInvalidDate       = "invalid_date"
	CodeInvalidOption     = "invalid_option"
	CodeInvalidFileType   = "invalid_file_type"
	CodeFileTooLarge      = "file_too_large"
	CodeTooManyFiles      = "too_many_files"
	CodeTooShort          = "too_short"
	CodeTooLong           = "too_long"
	CodeUnexpectedValue   = "unexpected_value"
	CodeMissingRequired   = "missing_required"
	CodeOrphanedFields    = "orphaned_fields"
	CodeMalformedIdentity = "malformed_identity"
	CodeFieldRemoved      = "field_removed"
	CodeIncompatibleType  = "incompatible_type"
	CodeUnknownPosition   = "unknown_position"
)

// Diagnostics holds all diagnostic information from one operation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `yaml:"severity" json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code" json:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message" json:"message"`
	// FieldID identifies which saved field this relates to (if any).
	FieldID string `yaml:"field_id,omitempty" json:"field_id,omitempty"`
	// Label is the field label at the time of the diagnostic (if any).
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText renders the severity name in YAML and JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// New builds a diagnostic.
func New(severity Severity, code, message, fieldID, label string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		FieldID:  fieldID,
		Label:    label,
	}
}

// Errorf builds an error diagnostic with a formatted message.
func Errorf(code, fieldID, label, format string, args ...any) Diagnostic {
	return New(SeverityError, code, fmt.Sprintf(format, args...), fieldID, label)
}

// Warningf builds a warning diagnostic with a formatted message.
func Warningf(code, fieldID, label, format string, args ...any) Diagnostic {
	return New(SeverityWarning, code, fmt.Sprintf(format, args...), fieldID, label)
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
		return
	}

	d.Warnings = append(d.Warnings, diag)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, fieldID, label string) {
	d.Add(New(SeverityError, code, message, fieldID, label))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, fieldID, label string) {
	d.Add(New(SeverityWarning, code, message, fieldID, label))
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
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

	return errors.New(Join(d.Errors))
}

// Join renders diagnostics separated by "; ".
func Join(diags []Diagnostic) string {
	parts := make([]string, 0, len(diags))
	for _, e := range diags {
		parts = append(parts, e.String())
	}

	return strings.Join(parts, "; ")
}

// Messages returns the bare messages of diags.
func Messages(diags []Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, e := range diags {
		out = append(out, e.Message)
	}

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Label != "" {
		prefix = append(prefix, common.Quote(d.Label))
	}

	if d.FieldID != "" {
		prefix = append(prefix, "("+d.FieldID+")")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
