// Package types implements the tagged-variant Type model from spec.md
// §3.3/§4.2: primitive/void/bottom/none/unknown/error types, class/array/
// method/package/module types, type variables (including captured and
// undetermined variables), wildcards, forall (generic method) types, and
// intersection/union types, plus subtyping, erasure, capture, and
// metadata-preserving substitution.
//
// Shape grounded on the teacher's internal/typesystem/types.go: a single
// Type interface implemented by a closed set of structs, with algorithms
// implemented as type-switch-dispatched free functions (the "structural
// rewrite visitor" of spec §4.2) rather than a v-table per operation.
package types

import (
	"fmt"
	"strings"
)

// Metadata is an immutable, append-only annotation slot every Type value
// carries (spec §3.3: "one entry per kind so annotations may be attached
// without mutating the underlying identity"). Kept as a small slice rather
// than a map since in practice very few metadata kinds are attached to any
// one type.
type Metadata struct {
	entries []metaEntry
}

type metaEntry struct {
	kind  string
	value any
}

// With returns a new Metadata with (kind, value) appended, preserving
// existing entries. Duplicate kinds are allowed; Get returns the most
// recently added value for a kind.
func (m Metadata) With(kind string, value any) Metadata {
	next := Metadata{entries: make([]metaEntry, len(m.entries), len(m.entries)+1)}
	copy(next.entries, m.entries)
	next.entries = append(next.entries, metaEntry{kind, value})
	return next
}

func (m Metadata) Get(kind string) (any, bool) {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].kind == kind {
			return m.entries[i].value, true
		}
	}
	return nil, false
}

func (m Metadata) IsEmpty() bool { return len(m.entries) == 0 }

// Type is the common interface every tagged variant implements.
type Type interface {
	Tag() Tag
	String() string
	Meta() Metadata
	// withMeta returns a copy of the receiver with its metadata slot
	// replaced; used by StripMetadata/WithMetadata (package-level helpers)
	// to implement identity-preserving rewrite (spec §8 Property 10).
	withMeta(Metadata) Type
}

// ClassSymbol is the minimal view into a symbol the type system needs.
// internal/symtab.Symbol implements this; keeping the dependency this
// direction (types defines the interface, symtab satisfies it) avoids a
// symtab<->types import cycle while still letting ClassType "reference a
// symbol by back-reference" per spec §4.3 Ownership.
type ClassSymbol interface {
	SymbolName() string
	// Complete triggers the call-once-then-sticky completion protocol
	// (spec §4.3). After Complete returns (even with an error, which is
	// sticky), the ClassType's Supertype()/Interfaces() are valid to read.
	Complete() error
}

// ---- Primitive ----

type PrimitiveType struct {
	tag      PrimitiveTag
	constVal any // nil, or a Go bool/int64/float64/etc. constant value
	meta     Metadata
}

func NewPrimitive(tag PrimitiveTag) *PrimitiveType { return &PrimitiveType{tag: tag} }

func (t *PrimitiveType) PrimTag() PrimitiveTag { return t.tag }
func (t *PrimitiveType) ConstValue() any       { return t.constVal }

// WithConstValue returns a copy carrying a constant value (e.g. for a
// constant-folded literal's type), per spec §3.3.
func (t *PrimitiveType) WithConstValue(v any) *PrimitiveType {
	cp := *t
	cp.constVal = v
	return &cp
}

func (t *PrimitiveType) Tag() Tag        { return TagPrimitive }
func (t *PrimitiveType) Meta() Metadata  { return t.meta }
func (t *PrimitiveType) String() string  { return t.tag.String() }
func (t *PrimitiveType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- Void / Bottom / None / Unknown ----

type VoidType struct{ meta Metadata }

func (t *VoidType) Tag() Tag       { return TagVoid }
func (t *VoidType) Meta() Metadata { return t.meta }
func (t *VoidType) String() string { return "void" }
func (t *VoidType) withMeta(m Metadata) Type {
	return &VoidType{meta: m}
}

// BottomType is the type of the `null` literal: a subtype of every
// reference type.
type BottomType struct{ meta Metadata }

func (t *BottomType) Tag() Tag       { return TagBottom }
func (t *BottomType) Meta() Metadata { return t.meta }
func (t *BottomType) String() string { return "<nulltype>" }
func (t *BottomType) withMeta(m Metadata) Type {
	return &BottomType{meta: m}
}

// NoneType ("None") stands for "no type here" (e.g. an unresolved
// declaration's provisional type before completion runs).
type NoneType struct{ meta Metadata }

func (t *NoneType) Tag() Tag       { return TagNone }
func (t *NoneType) Meta() Metadata { return t.meta }
func (t *NoneType) String() string { return "<none>" }
func (t *NoneType) withMeta(m Metadata) Type {
	return &NoneType{meta: m}
}

// UnknownType marks a deferred/not-yet-attributed position.
type UnknownType struct{ meta Metadata }

func (t *UnknownType) Tag() Tag       { return TagUnknown }
func (t *UnknownType) Meta() Metadata { return t.meta }
func (t *UnknownType) String() string { return "<unknown>" }
func (t *UnknownType) withMeta(m Metadata) Type {
	return &UnknownType{meta: m}
}

// ---- ErrorType ----

// ErrorType carries the best-guess OriginalType so downstream consumers
// (e.g. IDE hover) can still show *something*, per spec §3.3/§7.
type ErrorType struct {
	OriginalType Type
	meta         Metadata
}

func NewErrorType(original Type) *ErrorType { return &ErrorType{OriginalType: original} }

func (t *ErrorType) Tag() Tag       { return TagError }
func (t *ErrorType) Meta() Metadata { return t.meta }
func (t *ErrorType) String() string {
	if t.OriginalType != nil {
		return "<error:" + t.OriginalType.String() + ">"
	}
	return "<error>"
}
func (t *ErrorType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- Class ----

// ClassType models a (possibly generic, possibly inner) class or interface
// type. Supertype/Interfaces are filled lazily by Symbol.Complete(); until
// `completed` is true, consumers must treat them as unresolved per spec
// §3.3 Invariants.
type ClassType struct {
	Enclosing Type // non-nil for inner-class types, else nil
	TypeArgs  []Type
	Symbol    ClassSymbol

	supertype  Type
	interfaces []Type
	completed  bool

	meta Metadata
}

func NewClassType(sym ClassSymbol, typeArgs ...Type) *ClassType {
	return &ClassType{Symbol: sym, TypeArgs: typeArgs}
}

func (t *ClassType) Tag() Tag       { return TagClass }
func (t *ClassType) Meta() Metadata { return t.meta }

func (t *ClassType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// SetSupertype/SetInterfaces are called exactly once by the owning
// symbol's completer (internal/symtab), per spec §4.3.
func (t *ClassType) SetSupertype(s Type)      { t.supertype = s }
func (t *ClassType) SetInterfaces(is []Type)  { t.interfaces = is }
func (t *ClassType) MarkCompleted()           { t.completed = true }
func (t *ClassType) IsCompleted() bool        { return t.completed }

// Supertype returns the direct superclass, or nil for java.lang.Object /
// an interface. Panics if called before completion, per the §3.3
// invariant ("before completion consumers must treat it as unresolved").
func (t *ClassType) Supertype() Type {
	if !t.completed {
		panic("types: ClassType.Supertype() read before completion")
	}
	return t.supertype
}

func (t *ClassType) Interfaces() []Type {
	if !t.completed {
		panic("types: ClassType.Interfaces() read before completion")
	}
	return t.interfaces
}

func (t *ClassType) String() string {
	var b strings.Builder
	if t.Enclosing != nil {
		b.WriteString(t.Enclosing.String())
		b.WriteString(".")
	}
	if t.Symbol != nil {
		b.WriteString(t.Symbol.SymbolName())
	} else {
		b.WriteString("<anonymous>")
	}
	if len(t.TypeArgs) > 0 {
		parts := make([]string, len(t.TypeArgs))
		for i, a := range t.TypeArgs {
			parts[i] = a.String()
		}
		b.WriteString("<")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(">")
	}
	return b.String()
}

// IsRaw reports whether a generic class symbol is used with no type
// arguments; classIsSubtype uses it for its raw-type relaxation.
func (t *ClassType) IsRaw(declaredArity int) bool {
	return declaredArity > 0 && len(t.TypeArgs) == 0
}

// ---- Array ----

type ArrayType struct {
	ElemType   Type
	IsVarargs  bool
	meta       Metadata
}

func NewArrayType(elem Type) *ArrayType { return &ArrayType{ElemType: elem} }

func (t *ArrayType) Tag() Tag       { return TagArray }
func (t *ArrayType) Meta() Metadata { return t.meta }
func (t *ArrayType) String() string { return t.ElemType.String() + "[]" }
func (t *ArrayType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- Method ----

type MethodType struct {
	ParamTypes  []Type
	ReturnType  Type
	ThrownTypes []Type
	meta        Metadata
}

func NewMethodType(params []Type, ret Type, thrown []Type) *MethodType {
	return &MethodType{ParamTypes: params, ReturnType: ret, ThrownTypes: thrown}
}

func (t *MethodType) Tag() Tag       { return TagMethod }
func (t *MethodType) Meta() Metadata { return t.meta }
func (t *MethodType) String() string {
	parts := make([]string, len(t.ParamTypes))
	for i, p := range t.ParamTypes {
		parts[i] = p.String()
	}
	ret := "void"
	if t.ReturnType != nil {
		ret = t.ReturnType.String()
	}
	return fmt.Sprintf("(%s)%s", strings.Join(parts, ","), ret)
}
func (t *MethodType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- Package / Module ----

type PackageType struct {
	Name string
	meta Metadata
}

func (t *PackageType) Tag() Tag       { return TagPackage }
func (t *PackageType) Meta() Metadata { return t.meta }
func (t *PackageType) String() string { return t.Name }
func (t *PackageType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

type ModuleType struct {
	Name string
	meta Metadata
}

func (t *ModuleType) Tag() Tag       { return TagModule }
func (t *ModuleType) Meta() Metadata { return t.meta }
func (t *ModuleType) String() string { return "module " + t.Name }
func (t *ModuleType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- TypeVar / Captured ----

type TypeVar struct {
	VarName    string
	UpperBound Type
	LowerBound Type // nil/bottom for most type variables, explicit for captures
	meta       Metadata
}

func NewTypeVar(name string, upper Type) *TypeVar {
	return &TypeVar{VarName: name, UpperBound: upper}
}

func (t *TypeVar) Tag() Tag       { return TagTypeVar }
func (t *TypeVar) Meta() Metadata { return t.meta }
func (t *TypeVar) String() string { return t.VarName }
func (t *TypeVar) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// CapturedType extends TypeVar with a back-reference to the wildcard it
// was captured from, per spec §3.3.
type CapturedType struct {
	TypeVar
	Wildcard *WildcardType
}

// NewCapturedType builds a fresh captured type variable. Per spec §3.3
// Invariants, lower must be non-nil (use a BottomType for "no lower
// bound").
func NewCapturedType(name string, upper, lower Type, from *WildcardType) *CapturedType {
	if lower == nil {
		panic("types: captured type's lower bound must be non-nil")
	}
	return &CapturedType{TypeVar: TypeVar{VarName: name, UpperBound: upper, LowerBound: lower}, Wildcard: from}
}

func (t *CapturedType) Tag() Tag { return TagCaptured }
func (t *CapturedType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- Wildcard ----

type WildcardType struct {
	Inner Type
	Kind  WildcardKind
	Bound Type // optional back-ref to the captured type it produced
	meta  Metadata
}

func NewWildcard(kind WildcardKind, inner Type) *WildcardType {
	return &WildcardType{Kind: kind, Inner: inner}
}

func (t *WildcardType) Tag() Tag       { return TagWildcard }
func (t *WildcardType) Meta() Metadata { return t.meta }
func (t *WildcardType) String() string {
	switch t.Kind {
	case Extends:
		return "? extends " + t.Inner.String()
	case Super:
		return "? super " + t.Inner.String()
	default:
		return "?"
	}
}
func (t *WildcardType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- ForAll ----

// ForAllType is a universally quantified method type (a generic method's
// signature before its type variables are instantiated). Per spec §3.3 it
// always delegates to a MethodType.
type ForAllType struct {
	TypeVars []*TypeVar
	Method   *MethodType
	meta     Metadata
}

func NewForAll(vars []*TypeVar, method *MethodType) *ForAllType {
	return &ForAllType{TypeVars: vars, Method: method}
}

func (t *ForAllType) Tag() Tag       { return TagForAll }
func (t *ForAllType) Meta() Metadata { return t.meta }
func (t *ForAllType) String() string {
	parts := make([]string, len(t.TypeVars))
	for i, v := range t.TypeVars {
		parts[i] = v.String()
	}
	return fmt.Sprintf("<%s>%s", strings.Join(parts, ","), t.Method.String())
}
func (t *ForAllType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- Intersection / Union ----

// IntersectionClassType is the bound-closure type of e.g. `T extends A & B`
// or a capture-conversion upper bound with more than one supertype.
type IntersectionClassType struct {
	Components []Type
	meta       Metadata
}

func NewIntersection(components ...Type) *IntersectionClassType {
	return &IntersectionClassType{Components: components}
}

func (t *IntersectionClassType) Tag() Tag       { return TagIntersection }
func (t *IntersectionClassType) Meta() Metadata { return t.meta }
func (t *IntersectionClassType) String() string {
	parts := make([]string, len(t.Components))
	for i, c := range t.Components {
		parts[i] = c.String()
	}
	return strings.Join(parts, " & ")
}
func (t *IntersectionClassType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// UnionClassType is the least-upper-bound type synthesized for a
// multi-catch parameter.
type UnionClassType struct {
	Alternatives []Type
	meta         Metadata
}

func NewUnion(alternatives ...Type) *UnionClassType {
	return &UnionClassType{Alternatives: alternatives}
}

func (t *UnionClassType) Tag() Tag       { return TagUnion }
func (t *UnionClassType) Meta() Metadata { return t.meta }
func (t *UnionClassType) String() string {
	parts := make([]string, len(t.Alternatives))
	for i, a := range t.Alternatives {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}
func (t *UnionClassType) withMeta(m Metadata) Type {
	cp := *t
	cp.meta = m
	return &cp
}

// ---- Metadata helpers (package-level, spec §8 Property 10) ----

// StripMetadata returns t with an empty Metadata slot. If t already carries
// no metadata, t is returned unchanged (identity reuse).
func StripMetadata(t Type) Type {
	if t.Meta().IsEmpty() {
		return t
	}
	return t.withMeta(Metadata{})
}

// WithMetadata returns a copy of t carrying an additional (kind, value)
// metadata entry, never mutating t.
func WithMetadata(t Type, kind string, value any) Type {
	return t.withMeta(t.Meta().With(kind, value))
}
