package types

// Apply is the structural-rewrite dispatcher from spec §4.2: it rebuilds a
// Type by applying fn to every Type reachable from t (including t itself),
// bottom-up, reusing subterms whose rewrite is identical to the original
// (pointer-equal) so that an identity rewrite costs no allocations beyond
// the entry points actually changed. Mirrors the teacher's
// internal/typesystem.ApplyWithCycleCheck dispatcher shape, generalized
// from a flat AST to this package's tagged Type variants.
//
// fn is called on every node post-order; its result replaces that node
// before the parent is rebuilt. Cycles (a TypeVar whose bound structurally
// contains itself, e.g. `T extends Comparable<T>`) are broken by a
// visited-set keyed on pointer identity: a type already being rewritten is
// returned as-is rather than re-entered.
func Apply(t Type, fn func(Type) Type) Type {
	return applyRec(t, fn, make(map[Type]bool))
}

func applyRec(t Type, fn func(Type) Type, inProgress map[Type]bool) Type {
	if t == nil {
		return nil
	}
	if inProgress[t] {
		return t
	}
	inProgress[t] = true
	defer delete(inProgress, t)

	var rewritten Type
	switch v := t.(type) {
	case *ClassType:
		enclosing := v.Enclosing
		if enclosing != nil {
			enclosing = applyRec(enclosing, fn, inProgress)
		}
		args := applySlice(v.TypeArgs, fn, inProgress)
		if enclosing == v.Enclosing && sameSlice(args, v.TypeArgs) {
			rewritten = v
		} else {
			cp := *v
			cp.Enclosing = enclosing
			cp.TypeArgs = args
			rewritten = &cp
		}
	case *ArrayType:
		elem := applyRec(v.ElemType, fn, inProgress)
		if elem == v.ElemType {
			rewritten = v
		} else {
			cp := *v
			cp.ElemType = elem
			rewritten = &cp
		}
	case *MethodType:
		params := applySlice(v.ParamTypes, fn, inProgress)
		ret := applyRec(v.ReturnType, fn, inProgress)
		thrown := applySlice(v.ThrownTypes, fn, inProgress)
		if sameSlice(params, v.ParamTypes) && ret == v.ReturnType && sameSlice(thrown, v.ThrownTypes) {
			rewritten = v
		} else {
			cp := *v
			cp.ParamTypes = params
			cp.ReturnType = ret
			cp.ThrownTypes = thrown
			rewritten = &cp
		}
	case *WildcardType:
		inner := v.Inner
		if inner != nil {
			inner = applyRec(inner, fn, inProgress)
		}
		if inner == v.Inner {
			rewritten = v
		} else {
			cp := *v
			cp.Inner = inner
			rewritten = &cp
		}
	case *ForAllType:
		method := applyRec(v.Method, fn, inProgress).(*MethodType)
		if method == v.Method {
			rewritten = v
		} else {
			cp := *v
			cp.Method = method
			rewritten = &cp
		}
	case *IntersectionClassType:
		comps := applySlice(v.Components, fn, inProgress)
		if sameSlice(comps, v.Components) {
			rewritten = v
		} else {
			cp := *v
			cp.Components = comps
			rewritten = &cp
		}
	case *UnionClassType:
		alts := applySlice(v.Alternatives, fn, inProgress)
		if sameSlice(alts, v.Alternatives) {
			rewritten = v
		} else {
			cp := *v
			cp.Alternatives = alts
			rewritten = &cp
		}
	case *TypeVar:
		upper := v.UpperBound
		if upper != nil {
			upper = applyRec(upper, fn, inProgress)
		}
		if upper == v.UpperBound {
			rewritten = v
		} else {
			cp := *v
			cp.UpperBound = upper
			rewritten = &cp
		}
	case *CapturedType:
		upper := applyRec(v.UpperBound, fn, inProgress)
		lower := applyRec(v.LowerBound, fn, inProgress)
		if upper == v.UpperBound && lower == v.LowerBound {
			rewritten = v
		} else {
			cp := *v
			cp.UpperBound = upper
			cp.LowerBound = lower
			rewritten = &cp
		}
	case *ErrorType:
		orig := v.OriginalType
		if orig != nil {
			orig = applyRec(orig, fn, inProgress)
		}
		if orig == v.OriginalType {
			rewritten = v
		} else {
			cp := *v
			cp.OriginalType = orig
			rewritten = &cp
		}
	default:
		// PrimitiveType, VoidType, BottomType, NoneType, UnknownType,
		// PackageType, ModuleType, UndetVar: leaves for this rewrite.
		rewritten = t
	}

	return fn(rewritten)
}

func applySlice(ts []Type, fn func(Type) Type, inProgress map[Type]bool) []Type {
	if len(ts) == 0 {
		return ts
	}
	out := make([]Type, len(ts))
	changed := false
	for i, t := range ts {
		out[i] = applyRec(t, fn, inProgress)
		if out[i] != t {
			changed = true
		}
	}
	if !changed {
		return ts
	}
	return out
}

func sameSlice(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Subst replaces each occurrence of from[i] (compared by pointer identity,
// as type variables are unique per declaration) with to[i], using Apply so
// that metadata and unrelated subterms are preserved by identity per spec
// §8 Property 10.
func Subst(t Type, from []Type, to []Type) Type {
	return Apply(t, func(candidate Type) Type {
		for i, f := range from {
			if candidate == f {
				return to[i]
			}
		}
		return candidate
	})
}
