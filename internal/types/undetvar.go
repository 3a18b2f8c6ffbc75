package types

import "fmt"

// UndetVar is an inference variable created during type inference (JLS
// §18, spec §4.9): an as-yet-undetermined stand-in for a generic method's
// type parameter, accumulating LOWER/EQ/UPPER bounds as argument
// expressions are attributed against it.
type UndetVar struct {
	QType *TypeVar // the type-variable this UndetVar stands in for
	State UndetVarState

	lower []Type
	eq    []Type
	upper []Type

	meta Metadata
}

func NewUndetVar(qtype *TypeVar) *UndetVar {
	return &UndetVar{QType: qtype, State: StateNormal}
}

func (u *UndetVar) Tag() Tag       { return TagUndetVar }
func (u *UndetVar) Meta() Metadata { return u.meta }
func (u *UndetVar) String() string {
	return fmt.Sprintf("UndetVar(%s)", u.QType.VarName)
}
func (u *UndetVar) withMeta(m Metadata) Type {
	cp := *u
	cp.meta = m
	return &cp
}

func (u *UndetVar) Bounds(kind BoundKind) []Type {
	switch kind {
	case Lower:
		return u.lower
	case Eq:
		return u.eq
	default:
		return u.upper
	}
}

// AddBound appends t to the bound list of the given kind, per spec §4.9,
// deduplicating by IsSameType so that adding a structurally identical
// bound twice is a no-op (spec §8 Property 7: bound lists never contain
// duplicate-by-IsSameType entries).
func (u *UndetVar) AddBound(kind BoundKind, t Type) {
	list := u.boundSlot(kind)
	for _, existing := range *list {
		if IsSameType(existing, t) {
			return
		}
	}
	*list = append(*list, t)
}

func (u *UndetVar) boundSlot(kind BoundKind) *[]Type {
	switch kind {
	case Lower:
		return &u.lower
	case Eq:
		return &u.eq
	default:
		return &u.upper
	}
}

// SubstBounds rewrites every bound in every list via Subst(from, to),
// used when an outer inference round resolves some other UndetVar and
// that resolution must propagate into this one's still-open bounds.
func (u *UndetVar) SubstBounds(from, to []Type) {
	u.lower = substList(u.lower, from, to)
	u.eq = substList(u.eq, from, to)
	u.upper = substList(u.upper, from, to)
}

func substList(list []Type, from, to []Type) []Type {
	out := make([]Type, len(list))
	for i, t := range list {
		out[i] = Subst(t, from, to)
	}
	return out
}

// TransitionTo advances u.State following the spec §4.9 lattice:
// NORMAL -> THROWS and THROWS -> CAPTURED are allowed; NORMAL -> CAPTURED
// is refused (a no-op); and CAPTURED is absorbing: once set, further
// transitions are no-ops.
func (u *UndetVar) TransitionTo(next UndetVarState) {
	if u.State == StateCaptured {
		return
	}
	if next == StateCaptured {
		if u.State == StateThrows {
			u.State = StateCaptured
		}
		return
	}
	if u.State == StateNormal {
		u.State = next
	}
}

// IsCaptured reports whether a final disambiguation of this UndetVar must
// resolve to a fresh captured type variable rather than a concrete type,
// per spec §4.9.
func (u *UndetVar) IsCaptured() bool { return u.State == StateCaptured }
