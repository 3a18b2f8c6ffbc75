// Package lint implements the warning-category lattice described in
// spec.md §3.8/§4.6: a Lint value tracks which categories are currently
// enabled and which have been suppressed by a @SuppressWarnings
// annotation walked up the enclosing declaration chain.
package lint

// Category is one of the closed set of diagnostic classes javac groups
// warnings into.
type Category string

const (
	Cast              Category = "cast"
	Classfile         Category = "classfile"
	Deprecation       Category = "deprecation"
	Dep_Ann           Category = "dep-ann"
	Divzero           Category = "divzero"
	EmptyStatement    Category = "empty"
	Exports           Category = "exports"
	Fallthrough       Category = "fallthrough"
	Finally           Category = "finally"
	Module            Category = "module"
	Opens             Category = "opens"
	Options           Category = "options"
	Overloads         Category = "overloads"
	Overrides         Category = "overrides"
	Path              Category = "path"
	Preview           Category = "preview"
	Processing        Category = "processing"
	Rawtypes          Category = "rawtypes"
	Removal           Category = "removal"
	RequiresAutomatic Category = "requires-automatic"
	RequiresTransitive Category = "requires-transitive"
	Serial            Category = "serial"
	Static            Category = "static"
	StrictFP          Category = "strictfp"
	Synchronization   Category = "synchronized"
	Text_Blocks       Category = "text-blocks"
	Try               Category = "try"
	Unchecked         Category = "unchecked"
	Varargs           Category = "varargs"
)

// All enumerates every known category, used by -Xlint:all.
var All = []Category{
	Cast, Classfile, Deprecation, Dep_Ann, Divzero, EmptyStatement, Exports,
	Fallthrough, Finally, Module, Opens, Options, Overloads, Overrides,
	Path, Preview, Processing, Rawtypes, Removal, RequiresAutomatic,
	RequiresTransitive, Serial, Static, StrictFP, Synchronization,
	Text_Blocks, Try, Unchecked, Varargs,
}

// Lint is an immutable pair of disjoint sets: categories currently enabled
// for warning, and categories explicitly suppressed (by @SuppressWarnings
// or @Deprecated) in the current declaration context. Operations return a
// new Lint; the zero Lint is the empty lattice element (nothing enabled).
type Lint struct {
	enabled    map[Category]bool
	suppressed map[Category]bool
}

// Empty returns a Lint with nothing enabled and nothing suppressed.
func Empty() Lint {
	return Lint{}
}

// FromCategories builds a Lint with exactly the given categories enabled.
func FromCategories(cats ...Category) Lint {
	l := Lint{enabled: make(map[Category]bool, len(cats))}
	for _, c := range cats {
		l.enabled[c] = true
	}
	return l
}

// AllEnabled returns a Lint with every known category enabled (-Xlint:all).
func AllEnabled() Lint {
	return FromCategories(All...)
}

// IsEnabled reports whether cat is enabled and not suppressed.
func (l Lint) IsEnabled(cat Category) bool {
	if l.suppressed[cat] {
		return false
	}
	return l.enabled[cat]
}

// IsSuppressed reports whether cat has been explicitly suppressed.
func (l Lint) IsSuppressed(cat Category) bool {
	return l.suppressed[cat]
}

// Plus returns a Lint with cat added to the enabled set (+cat option).
func (l Lint) Plus(cat Category) Lint {
	return l.withEnabled(cat, true)
}

// Minus returns a Lint with cat removed from the enabled set (-cat option).
func (l Lint) Minus(cat Category) Lint {
	return l.withEnabled(cat, false)
}

func (l Lint) withEnabled(cat Category, on bool) Lint {
	next := l.clone()
	if next.enabled == nil {
		next.enabled = make(map[Category]bool)
	}
	if on {
		next.enabled[cat] = true
	} else {
		delete(next.enabled, cat)
	}
	return next
}

func (l Lint) clone() Lint {
	next := Lint{}
	if len(l.enabled) > 0 {
		next.enabled = make(map[Category]bool, len(l.enabled))
		for k, v := range l.enabled {
			next.enabled[k] = v
		}
	}
	if len(l.suppressed) > 0 {
		next.suppressed = make(map[Category]bool, len(l.suppressed))
		for k, v := range l.suppressed {
			next.suppressed[k] = v
		}
	}
	return next
}

// Suppress returns a Lint with cat moved from enabled into suppressed. If
// cat was not enabled, it is still recorded as suppressed (suppressing an
// already-absent category is a no-op on `enabled` but the bookkeeping
// stays monotonic, per spec §8 Testable Property 8).
func (l Lint) Suppress(cat Category) Lint {
	next := l.clone()
	if next.suppressed == nil {
		next.suppressed = make(map[Category]bool)
	}
	next.suppressed[cat] = true
	if next.enabled != nil {
		delete(next.enabled, cat)
	}
	return next
}

// Equal reports whether l and o have identical enabled/suppressed sets.
// Used by callers that want to detect "no change was made" without relying
// on Augment's identity-reuse optimization.
func (l Lint) Equal(o Lint) bool {
	return setEqual(l.enabled, o.enabled) && setEqual(l.suppressed, o.suppressed)
}

func setEqual(a, b map[Category]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// nameToCategory maps the string literals accepted by @SuppressWarnings
// (and the -Xlint:<cat> option spelling) onto Category. Unknown strings are
// ignored, per spec §4.6 ("each constant-string argument naming a known
// category").
var nameToCategory = func() map[string]Category {
	m := make(map[string]Category, len(All))
	for _, c := range All {
		m[string(c)] = c
	}
	return m
}()

// CategoryByName looks up a Category by its @SuppressWarnings / -Xlint
// spelling.
func CategoryByName(s string) (Category, bool) {
	c, ok := nameToCategory[s]
	return c, ok
}

// Annotated is the minimal view of a declaration's annotations Augment
// needs. internal/symtab's Symbol implements this so internal/lint does not
// need to import internal/tree or internal/symtab (avoiding a cycle); any
// declaration representation can satisfy it.
type Annotated interface {
	// SuppressWarningsValues returns the string literals listed in this
	// declaration's @SuppressWarnings(...) argument, recursing into any
	// nested declarations the caller considers part of "this symbol's
	// declaration annotations" (spec says "recursively").
	SuppressWarningsValues() []string
	// IsDeprecated reports whether the declaration carries @Deprecated.
	IsDeprecated() bool
}

// Augment derives a new Lint from base by walking decl's annotations, per
// spec §4.6. Each recognized @SuppressWarnings string argument is added to
// `suppressed` and removed from `enabled`; @Deprecated additionally
// suppresses Deprecation. If nothing changes, the receiver's identity is
// reused (same backing maps) so callers can cheaply detect "no change".
func Augment(base Lint, decl Annotated) Lint {
	if decl == nil {
		return base
	}
	result := base
	changed := false

	for _, v := range decl.SuppressWarningsValues() {
		if cat, ok := CategoryByName(v); ok {
			if !result.IsSuppressed(cat) {
				result = result.Suppress(cat)
				changed = true
			}
		}
	}
	if decl.IsDeprecated() && !result.IsSuppressed(Deprecation) {
		result = result.Suppress(Deprecation)
		changed = true
	}

	if !changed {
		return base
	}
	return result
}
