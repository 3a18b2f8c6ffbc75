package ctx_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/ctx"
	"github.com/funvibe/javac-core/internal/opts"
)

func TestNewProducesIndependentContexts(t *testing.T) {
	o, _, err := opts.Parse([]string{"-Xmaxerrs", "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := ctx.New(o)
	b := ctx.New(o)

	if a.ID == b.ID {
		t.Fatalf("expected distinct compilation IDs across Context instances")
	}
	if a.Names == b.Names || a.Sources == b.Sources || a.Diag == b.Diag {
		t.Fatalf("expected independent service instances, not shared process-global state")
	}
	if a.Diag.MaxErrors != 5 {
		t.Fatalf("expected Options to be applied to the new Diag log, got %d", a.Diag.MaxErrors)
	}
}

func TestNewReadsTraceFromXD(t *testing.T) {
	o, _, err := opts.Parse([]string{"-XDtrace"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := ctx.New(o)
	if !c.Trace {
		t.Fatalf("expected -XDtrace to set Context.Trace")
	}
}
