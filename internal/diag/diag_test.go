package diag_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/diag"
	"github.com/funvibe/javac-core/internal/lint"
	"github.com/funvibe/javac-core/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnsourced(t *testing.T) {
	d := diag.Diagnostic{Key: "compiler.err.internal", Severity: diag.Error}
	assert.Equal(t, "-: compiler.err.internal", diag.Format(d))
}

func TestFormatWithSourceAndArgs(t *testing.T) {
	reg := source.NewRegistry()
	src := reg.Register("Foo.java")
	d := diag.Diagnostic{
		Key:    "compiler.err.cant.resolve.location",
		Source: src,
		Line:   10,
		Col:    5,
		Args:   []any{"symbol", "bar"},
	}
	require.Equal(t, "Foo.java:10:5: compiler.err.cant.resolve.location: symbol, bar", diag.Format(d))
}

func TestLogDedupeBySourcePosSeverity(t *testing.T) {
	log := diag.NewLog()
	reg := source.NewRegistry()
	src := reg.Register("Foo.java")

	first := log.Report(diag.Diagnostic{Severity: diag.Error, Key: "k", Source: src, Pos: 5})
	second := log.Report(diag.Diagnostic{Severity: diag.Error, Key: "k2", Source: src, Pos: 5})

	assert.True(t, first)
	assert.False(t, second, "same (source,pos,severity) must be deduped")
	assert.Equal(t, 1, log.ErrorCount())
}

func TestLogMaxErrors(t *testing.T) {
	log := diag.NewLog()
	log.MaxErrors = 1
	reg := source.NewRegistry()
	src := reg.Register("Foo.java")

	log.Report(diag.Diagnostic{Severity: diag.Error, Key: "a", Source: src, Pos: 1})
	accepted := log.Report(diag.Diagnostic{Severity: diag.Error, Key: "b", Source: src, Pos: 2})

	assert.False(t, accepted)
	assert.Equal(t, 1, log.ErrorCount())
}

func TestLogSuppressedWarningDropped(t *testing.T) {
	log := diag.NewLog()
	log.CurrentLint = lint.Empty() // nothing enabled
	reg := source.NewRegistry()
	src := reg.Register("Foo.java")

	accepted := log.Report(diag.Diagnostic{Severity: diag.Warning, Key: "k", Lint: lint.Rawtypes, Source: src, Pos: 1})
	assert.False(t, accepted)
}

func TestLogMandatoryWarningBypassesSuppression(t *testing.T) {
	log := diag.NewLog()
	log.CurrentLint = lint.Empty()
	reg := source.NewRegistry()
	src := reg.Register("Foo.java")

	accepted := log.Report(diag.Diagnostic{Severity: diag.MandatoryWarning, Key: "k", Source: src, Pos: 1})
	assert.True(t, accepted, "mandatory warnings bypass -nowarn/lint suppression")
}

func TestLogWErrorEscalatesWarnings(t *testing.T) {
	log := diag.NewLog()
	log.WError = true
	log.CurrentLint = lint.AllEnabled()
	reg := source.NewRegistry()
	src := reg.Register("Foo.java")

	log.Report(diag.Diagnostic{Severity: diag.Warning, Key: "k", Lint: lint.Cast, Source: src, Pos: 1})
	require.Len(t, log.All(), 1)
	assert.Equal(t, diag.Error, log.All()[0].Severity)
	assert.Equal(t, 1, log.ErrorCount())
}

func TestDiagnosticErrorSatisfiesError(t *testing.T) {
	var err error = diag.NewError("T001", "compiler.err.cant.resolve", source.NoSource, source.NoPos)
	assert.Equal(t, "-: compiler.err.cant.resolve", err.Error())
}
