package scope

import (
	"github.com/funvibe/javac-core/internal/name"
	"github.com/funvibe/javac-core/internal/symtab"
)

// Lookupable is the minimal read interface every scope shape below
// implements, letting internal/resolve accept any of Scope/FilterScope/
// CompoundScope/SingleEntryScope/NamedImportScope/StarImportScope/
// FilterImportScope uniformly.
type Lookupable interface {
	Lookup(n name.Name) (*symtab.Symbol, bool)
	Entries() []*symtab.Symbol
}

// FilterScope wraps an underlying scope, exposing only symbols for which
// Predicate returns true. Used for e.g. "only static members" or "only
// accessible from this compilation unit" views during resolution, per
// spec §4.4's FilterScope.
type FilterScope struct {
	Underlying Lookupable
	Predicate  func(*symtab.Symbol) bool
}

func NewFilterScope(underlying Lookupable, predicate func(*symtab.Symbol) bool) *FilterScope {
	return &FilterScope{Underlying: underlying, Predicate: predicate}
}

func (f *FilterScope) Lookup(n name.Name) (*symtab.Symbol, bool) {
	sym, ok := f.Underlying.Lookup(n)
	if !ok || !f.Predicate(sym) {
		return nil, false
	}
	return sym, true
}

func (f *FilterScope) Entries() []*symtab.Symbol {
	all := f.Underlying.Entries()
	out := make([]*symtab.Symbol, 0, len(all))
	for _, s := range all {
		if f.Predicate(s) {
			out = append(out, s)
		}
	}
	return out
}

// CompoundScope concatenates several scopes for lookup purposes without
// merging their storage, used for e.g. combining a class's inherited
// members from multiple interfaces (spec §4.4's CompoundScope, backing
// multiple-inheritance-of-interfaces member lookup).
type CompoundScope struct {
	Parts []Lookupable
}

func NewCompoundScope(parts ...Lookupable) *CompoundScope {
	return &CompoundScope{Parts: parts}
}

func (c *CompoundScope) Lookup(n name.Name) (*symtab.Symbol, bool) {
	for _, p := range c.Parts {
		if sym, ok := p.Lookup(n); ok {
			return sym, true
		}
	}
	return nil, false
}

func (c *CompoundScope) Entries() []*symtab.Symbol {
	var out []*symtab.Symbol
	for _, p := range c.Parts {
		out = append(out, p.Entries()...)
	}
	return out
}

// SingleEntryScope holds exactly one (name, symbol) pair — the shape used
// for a single-type-import-on-demand / star-import binding, or a
// catch-clause parameter, where allocating a full hash table would be
// wasteful (spec §4.4).
type SingleEntryScope struct {
	Key name.Name
	Sym *symtab.Symbol
}

func NewSingleEntryScope(n name.Name, sym *symtab.Symbol) *SingleEntryScope {
	return &SingleEntryScope{Key: n, Sym: sym}
}

func (s *SingleEntryScope) Lookup(n name.Name) (*symtab.Symbol, bool) {
	if s.Sym != nil && s.Key == n {
		return s.Sym, true
	}
	return nil, false
}

func (s *SingleEntryScope) Entries() []*symtab.Symbol {
	if s.Sym == nil {
		return nil
	}
	return []*symtab.Symbol{s.Sym}
}
