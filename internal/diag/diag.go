// Package diag implements structured diagnostics per spec.md §4.1/§6.5/§7:
// severity-tagged values bundling a key, arguments, source position, and an
// optional lint category, deduped per (source, position, severity) and
// counted against -Xmaxerrs/-Xmaxwarns.
//
// The package shape (ErrorCode, DiagnosticError.Code/.Error()) is grounded
// on call sites surviving across the example pack even though the
// teacher's own internal/diagnostics package body was filtered from the
// retrieval: internal/parser/parser_errors_test.go and
// internal/analyzer/analyzer_errors_test.go key expectations off a short
// ErrorCode, and cmd/lsp/module_analysis.go threads
// []*diagnostics.DiagnosticError through module loading.
package diag

import (
	"fmt"
	"strings"

	"github.com/funvibe/javac-core/internal/lint"
	"github.com/funvibe/javac-core/internal/source"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Note Severity = iota
	Warning
	// MandatoryWarning bypasses -nowarn/lint suppression (spec §4.1).
	MandatoryWarning
	Error
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "Note"
	case Warning:
		return "warning"
	case MandatoryWarning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ErrorCode is a short, stable identifier for a diagnostic kind (e.g.
// "P001" for a parse error, "T014" for a type-checking error), distinct
// from the long dotted Key used by the §6.5 raw formatter contract.
type ErrorCode string

// A DiagnosticError is a Diagnostic that also satisfies the error
// interface, so it can be threaded through ordinary Go error-returning
// APIs (e.g. module loading) as well as collected into a Log.
type DiagnosticError struct {
	Diagnostic
}

func (e *DiagnosticError) Error() string {
	return Format(e.Diagnostic)
}

// Diagnostic is a single structured error/warning/note value.
type Diagnostic struct {
	Severity Severity
	Code     ErrorCode
	Key      string // dotted diagnostic key, e.g. "compiler.err.conditional.target.cant.be.void"
	Args     []any
	Source   source.Source
	Pos      source.Position
	Line     int // resolved via the owning LineMap at report time; 0 if unsourced
	Col      int
	Lint     lint.Category // "" if this diagnostic has no lint category
}

// NewError constructs an error-severity Diagnostic.
func NewError(code ErrorCode, key string, src source.Source, pos source.Position, args ...any) *DiagnosticError {
	return &DiagnosticError{Diagnostic{Severity: Error, Code: code, Key: key, Source: src, Pos: pos, Args: args}}
}

// NewWarning constructs a warning-severity Diagnostic tagged with a lint
// category. A zero Category means "not lint-gated" (always reportable,
// e.g. a deprecation-independent warning).
func NewWarning(code ErrorCode, key string, src source.Source, pos source.Position, cat lint.Category, args ...any) *DiagnosticError {
	return &DiagnosticError{Diagnostic{Severity: Warning, Code: code, Key: key, Source: src, Pos: pos, Lint: cat, Args: args}}
}

// NewMandatoryWarning is like NewWarning but is never suppressible.
func NewMandatoryWarning(code ErrorCode, key string, src source.Source, pos source.Position, args ...any) *DiagnosticError {
	return &DiagnosticError{Diagnostic{Severity: MandatoryWarning, Code: code, Key: key, Source: src, Pos: pos, Args: args}}
}

// Format renders d per the §6.5 raw formatter contract:
//
//	<source>:<line>:<col>: <key>: <arg>, …
//
// "-" is used for unsourced diagnostics (NoSource, or any Source with an
// empty path), "-:-:-" for class-file-sourced ones, recognised by a
// Source path ending in ".class" (class-file diagnostics are produced by
// the bytecode-emission collaborator, out of this core's scope to
// produce, but the formatter must still render one handed to it from the
// driver boundary).
func Format(d Diagnostic) string {
	var loc string
	switch {
	case d.Source.IsNone() || d.Source.Path() == "":
		loc = "-"
	case strings.HasSuffix(d.Source.Path(), ".class"):
		loc = "-:-:-"
	default:
		loc = fmt.Sprintf("%s:%d:%d", d.Source.Path(), d.Line, d.Col)
	}

	var b strings.Builder
	b.WriteString(loc)
	b.WriteString(": ")
	b.WriteString(d.Key)
	if len(d.Args) > 0 {
		b.WriteString(": ")
		args := make([]string, len(d.Args))
		for i, a := range d.Args {
			args[i] = fmt.Sprintf("%v", a)
		}
		b.WriteString(strings.Join(args, ", "))
	}
	return b.String()
}
