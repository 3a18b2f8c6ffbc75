package types

// Tag identifies which tagged variant a Type value is, per spec.md §3.3's
// "tagged variant" data model and the Design Notes' "dispatch by tag, not
// by v-table" guidance. Every Type implementation returns a distinct Tag;
// algorithms (subst.go, subtype.go, erasure.go, capture.go) still dispatch
// via Go type-switches (mirroring the teacher's
// internal/typesystem/types.go ApplyWithCycleCheck dispatcher) but Tag lets
// callers do a cheap pre-check without a type assertion.
type Tag int

const (
	TagPrimitive Tag = iota
	TagVoid
	TagBottom
	TagNone
	TagUnknown
	TagClass
	TagArray
	TagMethod
	TagPackage
	TagModule
	TagTypeVar
	TagCaptured
	TagWildcard
	TagForAll
	TagUndetVar
	TagIntersection
	TagUnion
	TagError
)

func (t Tag) String() string {
	switch t {
	case TagPrimitive:
		return "Primitive"
	case TagVoid:
		return "Void"
	case TagBottom:
		return "Bottom"
	case TagNone:
		return "None"
	case TagUnknown:
		return "Unknown"
	case TagClass:
		return "Class"
	case TagArray:
		return "Array"
	case TagMethod:
		return "Method"
	case TagPackage:
		return "Package"
	case TagModule:
		return "Module"
	case TagTypeVar:
		return "TypeVar"
	case TagCaptured:
		return "Captured"
	case TagWildcard:
		return "Wildcard"
	case TagForAll:
		return "ForAll"
	case TagUndetVar:
		return "UndetVar"
	case TagIntersection:
		return "Intersection"
	case TagUnion:
		return "Union"
	case TagError:
		return "Error"
	default:
		return "?"
	}
}

// PrimitiveTag enumerates the eight JLS primitive types.
type PrimitiveTag int

const (
	Byte PrimitiveTag = iota
	Char
	Short
	Int
	Long
	Float
	Double
	Boolean
)

func (p PrimitiveTag) String() string {
	return [...]string{"byte", "char", "short", "int", "long", "float", "double", "boolean"}[p]
}

// WildcardKind classifies a wildcard's bound direction.
type WildcardKind int

const (
	Extends WildcardKind = iota
	Super
	Unbound
)

// BoundKind classifies an UndetVar bound list, per spec §3.3/§4.2.
type BoundKind int

const (
	Lower BoundKind = iota
	Eq
	Upper
)

func (b BoundKind) String() string {
	switch b {
	case Lower:
		return "LOWER"
	case Eq:
		return "EQ"
	case Upper:
		return "UPPER"
	default:
		return "?"
	}
}

// UndetVarState is the inference-variable kind lattice from spec §4.9:
// NORMAL -> THROWS is allowed; NORMAL -> CAPTURED is forbidden; CAPTURED is
// absorbing (cannot become NORMAL or THROWS again).
type UndetVarState int

const (
	StateNormal UndetVarState = iota
	StateThrows
	StateCaptured
)
