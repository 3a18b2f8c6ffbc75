package types

// Universe holds the per-Context singleton instances of the primitive and
// pseudo types (spec's "no process globals" design note, SPEC_FULL.md §3:
// every piece of compiler state — including these well-known types — hangs
// off a Context value rather than a package-level var, so two concurrent
// compilations never share mutable type identity). internal/ctx.Context
// embeds a *Universe and threads it through attribution/resolve.
type Universe struct {
	ByteType    *PrimitiveType
	CharType    *PrimitiveType
	ShortType   *PrimitiveType
	IntType     *PrimitiveType
	LongType    *PrimitiveType
	FloatType   *PrimitiveType
	DoubleType  *PrimitiveType
	BooleanType *PrimitiveType

	VoidTypeVal    *VoidType
	BottomTypeVal  *BottomType
	NoneTypeVal    *NoneType
	UnknownTypeVal *UnknownType

	// ObjectType and friends stand for the bootstrap classes
	// (java.lang.Object, String, etc.); NewUniverse leaves them nil and
	// nothing in this repository sets them. Kept as plain fields rather
	// than a map since the well-known
	// set is small and fixed (spec §4.3's bootstrap class list).
	ObjectType     Type
	StringType     Type
	ClassType_     Type // java.lang.Class, named with a trailing underscore to avoid shadowing the ClassType struct
	ThrowableType  Type
}

// NewUniverse allocates the primitive singletons. Bootstrap reference
// types (ObjectType, StringType, ...) are left nil.
func NewUniverse() *Universe {
	return &Universe{
		ByteType:       NewPrimitive(Byte),
		CharType:       NewPrimitive(Char),
		ShortType:      NewPrimitive(Short),
		IntType:        NewPrimitive(Int),
		LongType:       NewPrimitive(Long),
		FloatType:      NewPrimitive(Float),
		DoubleType:     NewPrimitive(Double),
		BooleanType:    NewPrimitive(Boolean),
		VoidTypeVal:    &VoidType{},
		BottomTypeVal:  &BottomType{},
		NoneTypeVal:    &NoneType{},
		UnknownTypeVal: &UnknownType{},
	}
}

// PrimitiveOf returns the canonical singleton for a PrimitiveTag, so that
// IsSameType's pointer fast-path (`a == b`) hits for any two references to
// "int" obtained from the same Universe.
func (u *Universe) PrimitiveOf(tag PrimitiveTag) *PrimitiveType {
	switch tag {
	case Byte:
		return u.ByteType
	case Char:
		return u.CharType
	case Short:
		return u.ShortType
	case Int:
		return u.IntType
	case Long:
		return u.LongType
	case Float:
		return u.FloatType
	case Double:
		return u.DoubleType
	case Boolean:
		return u.BooleanType
	default:
		return nil
	}
}
