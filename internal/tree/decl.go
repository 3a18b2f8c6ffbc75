package tree

import (
	"github.com/funvibe/javac-core/internal/moddir"
	"github.com/funvibe/javac-core/internal/symtab"
	"github.com/funvibe/javac-core/internal/types"
)

// TypeDeclKind distinguishes the four JLS top-level/nested type-declaration
// shapes, which share one struct here (ClassDecl) since they differ only in
// a handful of flags, not in overall shape.
type TypeDeclKind int

const (
	KindClass TypeDeclKind = iota
	KindInterface
	KindEnum
	KindRecord
	KindAnnotationType
)

// ClassDecl is a class/interface/enum/record/annotation-type declaration.
type ClassDecl struct {
	declBase
	DeclKind    TypeDeclKind
	Name        string
	TypeParams  []*TypeParamDecl
	Extends     *TypeTree // nil for an interface with no extends clause
	Implements  []*TypeTree
	Members     []Declaration
	Annotations AnnotationSet

	Symbol *symtab.Symbol // back-reference to the declared class's symbol, set by the caller
}

func (c *ClassDecl) Accept(v Visitor) { v.VisitClassDecl(c) }

// TypeParamDecl is a single `<T extends Bound>` formal type parameter.
type TypeParamDecl struct {
	declBase
	Name   string
	Bounds []*TypeTree
}

func (t *TypeParamDecl) Accept(v Visitor) { v.VisitTypeParamDecl(t) }

// MethodDecl covers methods, constructors, and compact record constructors.
type MethodDecl struct {
	declBase
	Name        string // "<init>" for constructors, per spec §4.3's Name table
	TypeParams  []*TypeParamDecl
	ReturnType  *TypeTree // nil for constructors
	Params      []*ParamDecl
	Throws      []*TypeTree
	Body        *Block // nil for abstract/interface/native methods
	IsVarargs   bool
	Annotations AnnotationSet

	Symbol *symtab.Symbol
}

func (m *MethodDecl) Accept(v Visitor) { v.VisitMethodDecl(m) }

// ParamDecl is a single formal parameter.
type ParamDecl struct {
	declBase
	Name       string
	Type       *TypeTree
	IsVarargs  bool
	IsFinal    bool
	Annotations AnnotationSet

	Symbol *symtab.Symbol
}

func (p *ParamDecl) Accept(v Visitor) { v.VisitParamDecl(p) }

// FieldDecl is `Type name = init;` at class scope (possibly with several
// comma-separated declarators sharing one Type, split into one FieldDecl
// per declarator by the parser).
type FieldDecl struct {
	declBase
	Name        string
	Type        *TypeTree
	Init        Expression // nil if uninitialized
	Annotations AnnotationSet

	Symbol *symtab.Symbol
}

func (f *FieldDecl) Accept(v Visitor) { v.VisitFieldDecl(f) }

// ModuleDecl models a module-info.java's `module name { directives }`.
type ModuleDecl struct {
	declBase
	Name       string
	IsOpen     bool
	Directives []moddir.Directive
}

func (m *ModuleDecl) Accept(v Visitor) { v.VisitModuleDecl(m) }

// TypeTree is a reference to a type as written in source (possibly
// generic, possibly an array, possibly a wildcard), distinct from the
// resolved types.Type it attributes to. Kept separate from Expression
// since a type reference is never itself evaluated.
type TypeTree struct {
	declBase
	QualifiedName string // "" for array/wildcard/primitive-only trees
	TypeArgs      []*TypeTree
	ArrayDims     int
	Wildcard      *WildcardTree // non-nil if this tree is a `?` bound

	Resolved types.Type // filled in by internal/attr
}

func (t *TypeTree) Accept(v Visitor) { v.VisitTypeTree(t) }

// WildcardTree is `? extends T` / `? super T` / `?` as written in source.
type WildcardTree struct {
	Kind  types.WildcardKind
	Bound *TypeTree // nil for an unbound wildcard
}
