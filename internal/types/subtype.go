package types

// IsSameType reports structural/nominal identity per spec §4.2: primitives
// compare by PrimitiveTag, classes by symbol identity plus recursively
//-equal type arguments and enclosing type, arrays by element type,
// type variables by pointer identity (each declaration mints one TypeVar
// value), and the bottom/void/none/unknown singletons by tag alone.
func IsSameType(a, b Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch av := a.(type) {
	case *PrimitiveType:
		return av.tag == b.(*PrimitiveType).tag
	case *VoidType, *BottomType, *NoneType, *UnknownType:
		return true
	case *ClassType:
		bv := b.(*ClassType)
		if av.Symbol != bv.Symbol {
			return false
		}
		if (av.Enclosing == nil) != (bv.Enclosing == nil) {
			return false
		}
		if av.Enclosing != nil && !IsSameType(av.Enclosing, bv.Enclosing) {
			return false
		}
		return sameTypeSlice(av.TypeArgs, bv.TypeArgs)
	case *ArrayType:
		return IsSameType(av.ElemType, b.(*ArrayType).ElemType)
	case *TypeVar:
		return a == b
	case *CapturedType:
		return a == b
	case *WildcardType:
		bv := b.(*WildcardType)
		if av.Kind != bv.Kind {
			return false
		}
		if av.Inner == nil || bv.Inner == nil {
			return av.Inner == bv.Inner
		}
		return IsSameType(av.Inner, bv.Inner)
	case *MethodType:
		bv := b.(*MethodType)
		return sameTypeSlice(av.ParamTypes, bv.ParamTypes) && IsSameType(av.ReturnType, bv.ReturnType)
	case *PackageType:
		return av.Name == b.(*PackageType).Name
	case *ModuleType:
		return av.Name == b.(*ModuleType).Name
	default:
		return false
	}
}

func sameTypeSlice(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !IsSameType(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsSubtype implements the core `<:` relation from spec §4.2: reference
// widening, array covariance, primitive widening (delegated to Widens),
// bottom-type universality, and class subtyping by walking the
// already-completed supertype/interfaces chain. Generic class subtyping
// requires invariant (same) type arguments except where one side is a
// raw type (legacy unchecked behavior per SPEC_FULL.md §6.2).
func IsSubtype(sub, sup Type) bool {
	if IsSameType(sub, sup) {
		return true
	}
	if sup == nil || sub == nil {
		return false
	}

	if _, ok := sub.(*BottomType); ok {
		switch sup.(type) {
		case *PrimitiveType, *VoidType:
			return false
		default:
			return true
		}
	}

	switch supv := sup.(type) {
	case *IntersectionClassType:
		for _, c := range supv.Components {
			if !IsSubtype(sub, c) {
				return false
			}
		}
		return true
	}

	switch subv := sub.(type) {
	case *PrimitiveType:
		supPrim, ok := sup.(*PrimitiveType)
		if !ok {
			return false
		}
		return Widens(subv.tag, supPrim.tag)

	case *ArrayType:
		supArr, ok := sup.(*ArrayType)
		if !ok {
			return false
		}
		if isPrimitiveType(subv.ElemType) || isPrimitiveType(supArr.ElemType) {
			return IsSameType(subv.ElemType, supArr.ElemType)
		}
		return IsSubtype(subv.ElemType, supArr.ElemType)

	case *ClassType:
		return classIsSubtype(subv, sup, make(map[*ClassType]bool))

	case *TypeVar:
		if subv.UpperBound == nil {
			return false
		}
		return IsSubtype(subv.UpperBound, sup)

	case *CapturedType:
		if subv.UpperBound == nil {
			return false
		}
		return IsSubtype(subv.UpperBound, sup)

	case *IntersectionClassType:
		for _, c := range subv.Components {
			if IsSubtype(c, sup) {
				return true
			}
		}
		return false

	case *UnionClassType:
		for _, a := range subv.Alternatives {
			if !IsSubtype(a, sup) {
				return false
			}
		}
		return true

	case *ErrorType:
		// Error types are subtypes of everything, per spec §7: once an
		// error is reported, suppress cascading type-mismatch diagnostics.
		return true
	}

	return false
}

func isPrimitiveType(t Type) bool {
	_, ok := t.(*PrimitiveType)
	return ok
}

// classIsSubtype walks a ClassType's completed supertype/interfaces chain
// looking for sup. visited guards against the (illegal, but defensively
// handled) case of a cyclic hierarchy reaching this code before an error
// is reported elsewhere.
func classIsSubtype(sub *ClassType, sup Type, visited map[*ClassType]bool) bool {
	if visited[sub] {
		return false
	}
	visited[sub] = true

	if supClass, ok := sup.(*ClassType); ok && sub.Symbol != nil && sub.Symbol == supClass.Symbol {
		if sub.IsRaw(len(supClass.TypeArgs)) || supClass.IsRaw(len(sub.TypeArgs)) {
			return true
		}
		return sameTypeSlice(sub.TypeArgs, supClass.TypeArgs)
	}

	if !sub.completed {
		return false
	}
	if sub.supertype != nil {
		if st, ok := sub.supertype.(*ClassType); ok {
			if classIsSubtype(st, sup, visited) {
				return true
			}
		} else if IsSubtype(sub.supertype, sup) {
			return true
		}
	}
	for _, i := range sub.interfaces {
		if ic, ok := i.(*ClassType); ok {
			if classIsSubtype(ic, sup, visited) {
				return true
			}
		} else if IsSubtype(i, sup) {
			return true
		}
	}
	return false
}

// widensTable encodes the JLS §5.1.2 primitive widening graph, per
// spec §4.2.
var widensTable = map[PrimitiveTag][]PrimitiveTag{
	Byte:   {Short, Int, Long, Float, Double},
	Short:  {Int, Long, Float, Double},
	Char:   {Int, Long, Float, Double},
	Int:    {Long, Float, Double},
	Long:   {Float, Double},
	Float:  {Double},
	Double: {},
}

// Widens reports whether from widens to to (or from == to).
func Widens(from, to PrimitiveTag) bool {
	if from == to {
		return true
	}
	for _, t := range widensTable[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ContainsType implements wildcard containment (`<=`) from spec §4.2,
// exposed for callers that need it; classIsSubtype above does not call
// it and stays invariant on type arguments.
func ContainsType(a, b Type) bool {
	aw, aIsWild := a.(*WildcardType)
	bw, bIsWild := b.(*WildcardType)

	switch {
	case aIsWild && bIsWild:
		return containsWildcard(aw, bw)
	case aIsWild && !bIsWild:
		return containsWildcard(aw, &WildcardType{Kind: Extends, Inner: b})
	case !aIsWild:
		return IsSameType(a, b)
	}
	return false
}

func containsWildcard(a, b *WildcardType) bool {
	switch a.Kind {
	case Unbound:
		return true
	case Extends:
		if b.Kind == Unbound {
			// `?` is reported as not contained in any `? extends T`,
			// including `? extends Object`.
			return false
		}
		if b.Kind == Extends {
			return IsSubtype(b.Inner, a.Inner)
		}
		return false
	case Super:
		if b.Kind == Super {
			return IsSubtype(a.Inner, b.Inner)
		}
		return false
	}
	return false
}
