// Package ctx assembles a per-compilation Context: every shared service a
// compilation run needs (interned names, diagnostics, options, the
// source registry) bundled behind one value, instantiated fresh per call
// rather than held in process globals, per spec.md's "no process
// globals" design note — two concurrent Compile calls in the same
// process must not observe each other's state.
package ctx

import (
	"github.com/google/uuid"

	"github.com/funvibe/javac-core/internal/diag"
	"github.com/funvibe/javac-core/internal/name"
	"github.com/funvibe/javac-core/internal/opts"
	"github.com/funvibe/javac-core/internal/source"
	"github.com/funvibe/javac-core/internal/types"
)

// Context bags up the services one compilation run shares across its
// packages: lexer/parser through to the backend all take a *Context
// instead of reaching into package-level state.
type Context struct {
	// ID uniquely identifies this compilation run, for correlating log
	// lines and diagnostics across a long-lived driver process (e.g. the
	// RPC driver handling many sequential Compile calls).
	ID uuid.UUID

	Names    *name.Table
	Sources  *source.Registry
	Diag     *diag.Log
	Options  opts.Options
	Universe *types.Universe

	// Trace enables verbose internal tracing (-XDtrace-style), read back
	// out of Options.XD at construction time for convenience.
	Trace bool
}

// New builds a fresh Context for one compilation run. Each call produces
// independent Names/Sources/Diag/Universe instances; nothing here is
// shared or reused across calls.
func New(o opts.Options) *Context {
	_, trace := o.XD["trace"]
	return &Context{
		ID:       uuid.New(),
		Names:    name.NewTable(),
		Sources:  source.NewRegistry(),
		Diag:     newConfiguredLog(o),
		Options:  o,
		Universe: types.NewUniverse(),
		Trace:    trace,
	}
}

func newConfiguredLog(o opts.Options) *diag.Log {
	log := diag.NewLog()
	o.ApplyTo(log)
	return log
}
