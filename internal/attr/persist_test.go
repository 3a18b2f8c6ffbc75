package attr_test

import (
	"path/filepath"
	"testing"

	"github.com/funvibe/javac-core/internal/attr"
	"github.com/funvibe/javac-core/internal/source"
	"github.com/funvibe/javac-core/internal/types"
)

func TestPersistentArgumentCacheRoundTrips(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "attr-cache.sqlite")
	p, err := attr.OpenPersistentCache(dbPath)
	if err != nil {
		t.Fatalf("OpenPersistentCache: %v", err)
	}
	defer p.Close()

	reg := source.NewRegistry()
	foo := reg.Register("Foo.java")
	pos := attr.UniquePos{Src: foo, Off: 42}
	ri := attr.ResultInfo{Target: &types.PrimitiveType{}}

	if _, found := p.Lookup(pos, ri); found {
		t.Fatalf("expected no entry before Record")
	}
	if err := p.Record(pos, ri, true); err != nil {
		t.Fatalf("Record: %v", err)
	}
	verdict, found := p.Lookup(pos, ri)
	if !found || !verdict {
		t.Fatalf("expected a recorded true verdict, got found=%v verdict=%v", found, verdict)
	}

	if err := p.Record(pos, ri, false); err != nil {
		t.Fatalf("Record overwrite: %v", err)
	}
	verdict, found = p.Lookup(pos, ri)
	if !found || verdict {
		t.Fatalf("expected the overwritten false verdict, got found=%v verdict=%v", found, verdict)
	}
}
