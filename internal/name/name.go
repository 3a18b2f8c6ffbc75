// Package name implements the process-wide interned identifier table.
//
// A Name's equality is identity: two Names compare equal with == iff they
// were interned from equal strings in the same Table. Names never compare
// equal across two different Tables, even if the underlying text matches.
package name

import "hash/maphash"

var seed = maphash.MakeSeed()

// Name is an interned identifier. The zero Name is not valid; always obtain
// a Name via Table.Intern or one of the Predefined names.
type Name struct {
	str   string
	table *Table
}

// String returns the underlying text. Safe on the zero Name (returns "").
func (n Name) String() string {
	return n.str
}

// IsEmpty reports whether n is the zero Name.
func (n Name) IsEmpty() bool {
	return n.table == nil
}

// Hash returns a process-run-stable (not cross-run-stable) hash of the
// Name's text, for internal/scope's open-addressed table. Hashing the
// text rather than a pointer keeps Scope's probe sequence independent of
// Table identity/allocation order.
func (n Name) Hash() uint64 {
	return maphash.String(seed, n.str)
}

// Table is a process-local interning table. Every Name is owned by exactly
// one Table; a Context (internal/ctx) constructs one Table per logical
// compilation task, per spec §9 ("no process globals").
type Table struct {
	entries  map[string]*nameEntry
	Names    Predefined
}

type nameEntry struct {
	name Name
}

// NewTable constructs an empty Table and pre-interns the distinguished
// names every completer/resolver needs to compare against by identity.
func NewTable() *Table {
	t := &Table{entries: make(map[string]*nameEntry, 64)}
	t.Names = Predefined{
		Empty:       t.Intern(""),
		Error:       t.Intern("<error>"),
		Init:        t.Intern("<init>"),
		Clinit:      t.Intern("<clinit>"),
		This:        t.Intern("this"),
		Super:       t.Intern("super"),
		Value:       t.Intern("value"),
		Length:      t.Intern("length"),
		Class:       t.Intern("class"),
		Any:         t.Intern("*"),
		PackageInfo: t.Intern("package-info"),
		ModuleInfo:  t.Intern("module-info"),
		Object:      t.Intern("Object"),
	}
	return t
}

// Predefined holds the handful of names every consumer of a Table needs to
// refer to by identity rather than by re-interning a literal each time.
type Predefined struct {
	Empty       Name
	Error       Name
	Init        Name
	Clinit      Name
	This        Name
	Super       Name
	Value       Name
	Length      Name
	Class       Name
	Any         Name
	PackageInfo Name
	ModuleInfo  Name
	Object      Name
}

// Intern returns the unique Name for s within t, creating it on first use.
// O(1) amortized.
func (t *Table) Intern(s string) Name {
	if e, ok := t.entries[s]; ok {
		return e.name
	}
	n := Name{str: s, table: t}
	t.entries[s] = &nameEntry{name: n}
	return n
}

// Len returns the number of distinct interned strings (test/debug use).
func (t *Table) Len() int {
	return len(t.entries)
}
