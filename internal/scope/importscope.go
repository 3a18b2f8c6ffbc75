package scope

import (
	"github.com/funvibe/javac-core/internal/name"
	"github.com/funvibe/javac-core/internal/symtab"
	"github.com/funvibe/javac-core/internal/types"
)

// entriesSource is the narrower view FilterImportScope needs into a
// class's member scope. symtab.MemberScope only guarantees Lookup/Enter,
// but every concrete MemberScope this package hands out (*Scope itself)
// is also enumerable, so the walk recovers that capability with a type
// assertion rather than widening symtab's interface for one caller.
type entriesSource interface {
	Entries() []*symtab.Symbol
}

// Reporter is handed a symbol whose completion failed while
// FilterImportScope was walking a supertype chain, per spec §4.4:
// "Completion failures on traversal are caught and handed to a reporter
// callback."
type Reporter func(sym *symtab.Symbol, err error)

// FilterImportScope wraps a class symbol ("origin") and enumerates
// members of origin, origin's supertype, and each of origin's interfaces,
// recursively and exactly once per class, filtering every visited member
// through the import's admissibility predicate. It backs a star or
// static-member import whose origin is a class with inherited members,
// per spec §4.4's "FilterImportScope supertype walk."
type FilterImportScope struct {
	Origin   *symtab.Symbol
	Filter   func(*symtab.Symbol) bool
	Reporter Reporter
}

// NewFilterImportScope builds a FilterImportScope rooted at origin.
// reporter may be nil, in which case completion failures during the walk
// are silently skipped (the symbol simply contributes no members).
func NewFilterImportScope(origin *symtab.Symbol, filter func(*symtab.Symbol) bool, reporter Reporter) *FilterImportScope {
	return &FilterImportScope{Origin: origin, Filter: filter, Reporter: reporter}
}

func (f *FilterImportScope) Lookup(n name.Name) (*symtab.Symbol, bool) {
	var found *symtab.Symbol
	f.walk(f.Origin, make(map[*symtab.Symbol]bool), func(sym *symtab.Symbol) bool {
		if sym.Name != n || !f.Filter(sym) {
			return true
		}
		found = sym
		return false
	})
	return found, found != nil
}

// Entries yields the concatenation of origin's own members, then its
// supertype's, then each interface's, in that order, with every class in
// the chain visited exactly once regardless of how many paths reach it
// (spec §8 concrete scenario: `C extends B implements I` yields
// `C.members, B.members, I.members` once each even when `B implements I`
// too).
func (f *FilterImportScope) Entries() []*symtab.Symbol {
	var out []*symtab.Symbol
	f.walk(f.Origin, make(map[*symtab.Symbol]bool), func(sym *symtab.Symbol) bool {
		if f.Filter(sym) {
			out = append(out, sym)
		}
		return true
	})
	return out
}

// walk visits cls's own members, then recurses into its supertype and
// each interface, skipping any class already in processed — the
// "processed : Set<Symbol>" cycle guard spec §4.4 requires so a diamond
// or cyclic-looking hierarchy is never walked twice. visit returns false
// to stop the walk early (used by Lookup to short-circuit once found);
// walk propagates that false upward so the caller also stops.
func (f *FilterImportScope) walk(cls *symtab.Symbol, processed map[*symtab.Symbol]bool, visit func(*symtab.Symbol) bool) bool {
	if cls == nil || processed[cls] {
		return true
	}
	processed[cls] = true

	if err := cls.Complete(); err != nil {
		if f.Reporter != nil {
			f.Reporter(cls, err)
		}
		return true
	}

	if members, ok := cls.Members.(entriesSource); ok {
		for _, sym := range members.Entries() {
			if !visit(sym) {
				return false
			}
		}
	}

	ct, ok := cls.Type.(*types.ClassType)
	if !ok || !ct.IsCompleted() {
		return true
	}
	if sup := ct.Supertype(); sup != nil {
		if supSym, ok := classSymbolOf(sup); ok {
			if !f.walk(supSym, processed, visit) {
				return false
			}
		}
	}
	for _, iface := range ct.Interfaces() {
		if ifaceSym, ok := classSymbolOf(iface); ok {
			if !f.walk(ifaceSym, processed, visit) {
				return false
			}
		}
	}
	return true
}

func classSymbolOf(t types.Type) (*symtab.Symbol, bool) {
	ct, ok := t.(*types.ClassType)
	if !ok {
		return nil, false
	}
	sym, ok := ct.Symbol.(*symtab.Symbol)
	return sym, ok
}

// NamedImportScope threads an ordered list of single-entry and
// filter-import sub-scopes, one per explicit `import a.b.C;` or
// `import static a.b.C.member;` declaration, per spec §3.6. Declarations
// later in the file shadow an earlier one for the same simple name, so
// Lookup/Entries favor the last-added part.
type NamedImportScope struct {
	parts []Lookupable
}

func NewNamedImportScope() *NamedImportScope { return &NamedImportScope{} }

// Add appends one more named-import sub-scope, later than (and so
// shadowing) every part already present.
func (s *NamedImportScope) Add(part Lookupable) { s.parts = append(s.parts, part) }

func (s *NamedImportScope) Lookup(n name.Name) (*symtab.Symbol, bool) {
	for i := len(s.parts) - 1; i >= 0; i-- {
		if sym, ok := s.parts[i].Lookup(n); ok {
			return sym, true
		}
	}
	return nil, false
}

// Entries returns one symbol per distinct name, preferring the
// latest-added part that binds it (matching Lookup's shadowing), in the
// order each name was first introduced.
func (s *NamedImportScope) Entries() []*symtab.Symbol {
	var order []name.Name
	byName := make(map[name.Name]*symtab.Symbol)
	for _, part := range s.parts {
		for _, sym := range part.Entries() {
			if _, seen := byName[sym.Name]; !seen {
				order = append(order, sym.Name)
			}
			byName[sym.Name] = sym
		}
	}
	out := make([]*symtab.Symbol, 0, len(order))
	for _, n := range order {
		out = append(out, byName[n])
	}
	return out
}

// starImport is one `import a.b.*;` or `import static a.b.C.*;`
// declaration held by a StarImportScope.
type starImport struct {
	origin *symtab.Symbol
	static bool
	scope  *FilterImportScope
}

// StarImportScope holds on-demand ("star") imports. Per spec §3.6 it
// "refuses to re-add an identical (origin, filter, static?) triple": in
// practice an origin's filter is determined entirely by whether the
// import is static (javac draws both from a fixed pair of predicates,
// never an arbitrary one), so (origin, static) alone identifies a
// duplicate triple here.
type StarImportScope struct {
	imports []*starImport
}

func NewStarImportScope() *StarImportScope { return &StarImportScope{} }

// Add registers a star import rooted at origin. static distinguishes
// `import static` (member import) from a plain on-demand type import.
// filter is the admissibility predicate FilterImportScope applies while
// walking origin's supertype chain; reporter receives completion
// failures encountered during that walk. A duplicate (origin, static)
// pair is ignored.
func (s *StarImportScope) Add(origin *symtab.Symbol, static bool, filter func(*symtab.Symbol) bool, reporter Reporter) {
	for _, existing := range s.imports {
		if existing.origin == origin && existing.static == static {
			return
		}
	}
	s.imports = append(s.imports, &starImport{
		origin: origin,
		static: static,
		scope:  NewFilterImportScope(origin, filter, reporter),
	})
}

func (s *StarImportScope) Lookup(n name.Name) (*symtab.Symbol, bool) {
	for _, imp := range s.imports {
		if sym, ok := imp.scope.Lookup(n); ok {
			return sym, true
		}
	}
	return nil, false
}

func (s *StarImportScope) Entries() []*symtab.Symbol {
	var out []*symtab.Symbol
	for _, imp := range s.imports {
		out = append(out, imp.scope.Entries()...)
	}
	return out
}
