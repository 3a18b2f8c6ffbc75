package types

// Capture implements capture conversion (JLS §5.1.10, spec §4.2): each
// wildcard type argument of a generic class type is replaced by a fresh
// CapturedType whose bounds are derived from the wildcard and the
// corresponding formal type parameter's declared bound. Non-wildcard
// arguments, and classes with no wildcard arguments at all, are returned
// unchanged (spec §8 Property 2: Capture is a no-op on a type with no
// wildcards, and capturing twice in a row is stable — Capture(Capture(t))
// has the same shape as Capture(t), though fresh CapturedType identities
// are minted on every call since each capture site is distinct per JLS).
//
// formalBounds supplies each type parameter's declared upper bound in
// declaration order, needed to compute a captured variable's upper bound
// when the wildcard itself is unbound or super-bounded.
func Capture(t Type, formalBounds []Type) Type {
	ct, ok := t.(*ClassType)
	if !ok {
		return t
	}
	hasWildcard := false
	for _, a := range ct.TypeArgs {
		if _, ok := a.(*WildcardType); ok {
			hasWildcard = true
			break
		}
	}
	if !hasWildcard {
		return t
	}

	newArgs := make([]Type, len(ct.TypeArgs))
	for i, a := range ct.TypeArgs {
		w, ok := a.(*WildcardType)
		if !ok {
			newArgs[i] = a
			continue
		}
		var formalBound Type
		if i < len(formalBounds) {
			formalBound = formalBounds[i]
		}
		newArgs[i] = captureOne(w, formalBound)
	}

	cp := *ct
	cp.TypeArgs = newArgs
	return &cp
}

func captureOne(w *WildcardType, formalBound Type) *CapturedType {
	var upper, lower Type
	switch w.Kind {
	case Extends:
		upper = w.Inner
		lower = &BottomType{}
	case Super:
		upper = formalBound
		lower = w.Inner
	case Unbound:
		upper = formalBound
		lower = &BottomType{}
	}
	if upper == nil {
		upper = formalBound
	}
	return NewCapturedType("CAP#", upper, lower, w)
}
