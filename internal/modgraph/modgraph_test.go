package modgraph_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/modgraph"
	"github.com/funvibe/javac-core/internal/moddir"
	"github.com/funvibe/javac-core/internal/name"
)

func TestBuildResolvesTransitiveRequires(t *testing.T) {
	tbl := name.NewTable()
	a, b, c := tbl.Intern("mod.a"), tbl.Intern("mod.b"), tbl.Intern("mod.c")

	modA := &modgraph.ModuleInfo{Name: a, Directives: []moddir.Directive{
		moddir.Requires{Module: b, Flags: moddir.RequiresTransitive},
	}}
	modB := &modgraph.ModuleInfo{Name: b, Directives: []moddir.Directive{
		moddir.Requires{Module: c},
	}}
	modC := &modgraph.ModuleInfo{Name: c}

	g, err := modgraph.Build([]*modgraph.ModuleInfo{modA, modB, modC})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Reads("mod.a", "mod.b") {
		t.Fatalf("expected mod.a to read mod.b directly")
	}
	if g.Reads("mod.a", "mod.c") {
		t.Fatalf("mod.b's requires of mod.c is not transitive, so mod.a should not read mod.c")
	}
	if !g.Reads("mod.b", "mod.c") {
		t.Fatalf("expected mod.b to read mod.c directly")
	}
}

func TestBuildDetectsCycle(t *testing.T) {
	tbl := name.NewTable()
	a, b := tbl.Intern("mod.a"), tbl.Intern("mod.b")

	modA := &modgraph.ModuleInfo{Name: a, Directives: []moddir.Directive{moddir.Requires{Module: b}}}
	modB := &modgraph.ModuleInfo{Name: b, Directives: []moddir.Directive{moddir.Requires{Module: a}}}

	_, err := modgraph.Build([]*modgraph.ModuleInfo{modA, modB})
	if err == nil {
		t.Fatalf("expected a cyclic requires error")
	}
	var cycleErr *modgraph.CyclicRequiresError
	if !asCyclic(err, &cycleErr) {
		t.Fatalf("expected a *CyclicRequiresError, got %T: %v", err, err)
	}
}

func asCyclic(err error, target **modgraph.CyclicRequiresError) bool {
	if ce, ok := err.(*modgraph.CyclicRequiresError); ok {
		*target = ce
		return true
	}
	return false
}

func TestExportedUnqualifiedAndQualified(t *testing.T) {
	tbl := name.NewTable()
	pkg := tbl.Intern("com.example.internal")
	reader := tbl.Intern("mod.reader")
	other := tbl.Intern("mod.other")

	owner := &modgraph.ModuleInfo{Directives: []moddir.Directive{
		moddir.Exports{Package: pkg, TargetModules: []name.Name{reader}},
	}}
	if !newGraphExported(owner, "com.example.internal", "mod.reader") {
		t.Fatalf("expected qualified export to be visible to its named target")
	}
	if newGraphExported(owner, "com.example.internal", "mod.other") {
		t.Fatalf("expected qualified export to stay invisible to a module it does not name")
	}
	_ = other
}

func newGraphExported(owner *modgraph.ModuleInfo, pkg, reader string) bool {
	g, _ := modgraph.Build([]*modgraph.ModuleInfo{owner})
	return g.Exported(owner, pkg, reader)
}
