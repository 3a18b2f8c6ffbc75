package types

// Erasure computes the type-erasure of t per spec §4.2 / JLS §4.6: generic
// class types lose their type arguments, type variables erase to their
// (erased) upper bound, array erasure is the erasure of the element type
// wrapped back in an array, and every other variant is already erased.
//
// Erasure is idempotent (spec §8 Property 1: Erasure(Erasure(t)) ==
// Erasure(t)), which TestErasureIdempotent in types_test.go checks
// directly rather than by inspection.
func Erasure(t Type) Type {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case *ClassType:
		if v.Enclosing == nil && len(v.TypeArgs) == 0 {
			return v
		}
		erasedEnclosing := v.Enclosing
		if erasedEnclosing != nil {
			erasedEnclosing = Erasure(erasedEnclosing)
		}
		return &ClassType{
			Enclosing:  erasedEnclosing,
			Symbol:     v.Symbol,
			supertype:  v.supertype,
			interfaces: v.interfaces,
			completed:  v.completed,
		}
	case *ArrayType:
		erasedElem := Erasure(v.ElemType)
		if erasedElem == v.ElemType {
			return v
		}
		return &ArrayType{ElemType: erasedElem, IsVarargs: v.IsVarargs}
	case *TypeVar:
		if v.UpperBound == nil {
			return v
		}
		return Erasure(v.UpperBound)
	case *CapturedType:
		if v.UpperBound == nil {
			return v
		}
		return Erasure(v.UpperBound)
	case *IntersectionClassType:
		if len(v.Components) == 0 {
			return v
		}
		// JLS: the erasure of an intersection is the erasure of its first
		// (leftmost) bound.
		return Erasure(v.Components[0])
	case *ForAllType:
		return Erasure(v.Method)
	case *MethodType:
		params := make([]Type, len(v.ParamTypes))
		changed := false
		for i, p := range v.ParamTypes {
			params[i] = Erasure(p)
			if params[i] != p {
				changed = true
			}
		}
		ret := Erasure(v.ReturnType)
		if ret != v.ReturnType {
			changed = true
		}
		if !changed {
			return v
		}
		return &MethodType{ParamTypes: params, ReturnType: ret, ThrownTypes: v.ThrownTypes}
	default:
		return t
	}
}

// ErasedSignatureEqual reports whether two method types have the same
// erased parameter signature, the check Resolve's overload search uses to
// detect override-equivalence (spec §5.2).
func ErasedSignatureEqual(a, b *MethodType) bool {
	ea, eb := Erasure(a).(*MethodType), Erasure(b).(*MethodType)
	if len(ea.ParamTypes) != len(eb.ParamTypes) {
		return false
	}
	for i := range ea.ParamTypes {
		if !IsSameType(ea.ParamTypes[i], eb.ParamTypes[i]) {
			return false
		}
	}
	return true
}
