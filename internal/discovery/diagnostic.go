// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"log/slog"

	"github.com/mjklukowski/rofi-apps/internal/issue"
)

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"
)

const (
	// CodeSearchDirUnreadable reports a search directory that could not be walked.
	CodeSearchDirUnreadable DiagnosticCode = "search_dir_unreadable"
	// CodeEntryParseSkipped reports a file the parser rejected.
	CodeEntryParseSkipped DiagnosticCode = "entry_parse_skipped"
	// CodeIconUnresolved reports an icon of unknown kind, dropped from the entry.
	CodeIconUnresolved DiagnosticCode = "icon_unresolved"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// DiagnosticCode is a machine-readable diagnostic identifier.
	DiagnosticCode string

	// Diagnostic represents a structured discovery diagnostic that is returned
	// to callers (rather than written to stderr) for consistent rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier.
		Code DiagnosticCode
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)

// Issue returns the catalog entry that explains c, or 0 when there is none.
func (c DiagnosticCode) Issue() issue.Id {
	if c == CodeEntryParseSkipped {
		return issue.EntryParseErrorId
	}
	return 0
}

// NewDiagnosticWithCause creates a diagnostic for path caused by err.
func NewDiagnosticWithCause(severity Severity, code DiagnosticCode, message, path string, err error) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message, Path: path, Cause: err}
}

// Log writes d to the default slog logger at a level matching its severity.
func (d Diagnostic) Log() {
	attrs := []any{"code", string(d.Code)}
	if d.Path != "" {
		attrs = append(attrs, "path", d.Path)
	}
	if d.Cause != nil {
		attrs = append(attrs, "error", d.Cause)
	}
	if id := d.Code.Issue(); id != 0 {
		attrs = append(attrs, "issue", id)
	}
	if d.Severity == SeverityError {
		slog.Error(d.Message, attrs...)
		return
	}
	slog.Warn(d.Message, attrs...)
}
