package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"naught-generator/internal/common"
)

// Diagnostics holds all diagnostic information from manifest validation
// and surface selection.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Package is the manifest target package this relates to (if any).
	Package string
	// Type is the type name or type pattern this relates to (if any).
	Type string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(dst *[]Diagnostic, sev Severity, code, message, pkg, typeName string) {
	*dst = append(*dst, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Package:  pkg,
		Type:     typeName,
	})
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, pkg, typeName string) {
	d.add(&d.Errors, SeverityError, code, message, pkg, typeName)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, pkg, typeName string) {
	d.add(&d.Warnings, SeverityWarning, code, message, pkg, typeName)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, pkg, typeName string) {
	d.add(&d.Infos, SeverityInfo, code, message, pkg, typeName)
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

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Log writes every diagnostic to logger, errors first.
func (d *Diagnostics) Log(logger zerolog.Logger) {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			var event *zerolog.Event
			switch diag.Severity {
			case SeverityError:
				event = logger.Error()
			case SeverityWarning:
				event = logger.Warn()
			default:
				event = logger.Info()
			}

			event.
				Str("code", diag.Code).
				Str("package", diag.Package).
				Str("type", diag.Type).
				Msg(diag.Message)
		}
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Package != "" {
		prefix = append(prefix, "["+d.Package+"]")
	}

	if d.Type != "" {
		prefix = append(prefix, d.Type)
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
