package diag

import "github.com/funvibe/javac-core/internal/lint"

// dedupeKey identifies a diagnostic for the purposes of spec §4.1's
// dedup-per-source-position rule.
type dedupeKey struct {
	sourceID int
	pos      int32
	severity Severity
}

// Log accumulates diagnostics for one compilation, applying dedupe,
// -Xmaxerrs/-Xmaxwarns limits, -Werror escalation, and lint-based
// suppression (mandatory warnings bypass suppression).
type Log struct {
	MaxErrors   int // 0 = unlimited
	MaxWarnings int // 0 = unlimited
	WError      bool
	NoWarn      bool // -nowarn: suppress non-mandatory warnings entirely

	CurrentLint lint.Lint // innermost Lint on the reporting stack (spec §4.1)

	diagnostics []*Diagnostic
	seen        map[dedupeKey]bool
	errorCount  int
	warnCount   int
}

func NewLog() *Log {
	return &Log{seen: make(map[dedupeKey]bool)}
}

// Report files d, applying dedupe and limits. Returns false if d was
// dropped (duplicate, suppressed, or over a max-count limit).
func (l *Log) Report(d Diagnostic) bool {
	if d.Severity == Warning && d.Lint != "" && !l.CurrentLint.IsEnabled(d.Lint) {
		// Suppressed unless mandatory; ordinary Warning honors the
		// innermost Lint per spec §4.1.
		return false
	}
	if d.Severity == Warning && l.NoWarn {
		return false
	}
	if l.WError && d.Severity == Warning {
		d.Severity = Error
	}

	key := dedupeKey{sourceID: d.Source.ID(), pos: int32(d.Pos), severity: d.Severity}
	if l.seen[key] {
		return false
	}

	switch d.Severity {
	case Error:
		if l.MaxErrors > 0 && l.errorCount >= l.MaxErrors {
			return false
		}
		l.errorCount++
	case Warning, MandatoryWarning:
		if l.MaxWarnings > 0 && l.warnCount >= l.MaxWarnings {
			return false
		}
		l.warnCount++
	}

	l.seen[key] = true
	cp := d
	l.diagnostics = append(l.diagnostics, &cp)
	return true
}

// All returns every retained diagnostic, in report order.
func (l *Log) All() []*Diagnostic {
	return l.diagnostics
}

func (l *Log) ErrorCount() int   { return l.errorCount }
func (l *Log) WarningCount() int { return l.warnCount }
func (l *Log) HasErrors() bool   { return l.errorCount > 0 }
