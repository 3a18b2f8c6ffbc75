package tree

import (
	"github.com/funvibe/javac-core/internal/symtab"
)

// Literal is any constant literal (int/long/float/double/boolean/char/
// String/null). Value holds the Go-native constant representation; the
// JLS-specified type is recorded once attribution sets Type() via
// exprBase.
type Literal struct {
	exprBase
	Value any // int64, float64, string, bool, rune, or nil for `null`
}

func (l *Literal) Accept(v Visitor) { v.VisitLiteral(l) }

// Ident is a bare identifier reference, resolved to a Symbol by
// internal/resolve.
type Ident struct {
	exprBase
	Name string

	Symbol *symtab.Symbol // filled in once resolved
}

func (i *Ident) Accept(v Visitor) { v.VisitIdent(i) }

// FieldAccess is `expr.name` (member selection on an expression, as
// opposed to resolving a bare name or a type-qualified static member).
type FieldAccess struct {
	exprBase
	Target Expression
	Name   string

	Symbol *symtab.Symbol
}

func (f *FieldAccess) Accept(v Visitor) { v.VisitFieldAccess(f) }

type ArrayAccess struct {
	exprBase
	Array Expression
	Index Expression
}

func (a *ArrayAccess) Accept(v Visitor) { v.VisitArrayAccess(a) }

// BinaryOp covers all binary operators (arithmetic, relational, logical,
// bitwise, shift, string concat).
type BinaryOp struct {
	exprBase
	Op          string
	Left, Right Expression
}

func (b *BinaryOp) Accept(v Visitor) { v.VisitBinaryOp(b) }

type UnaryOp struct {
	exprBase
	Op       string
	Operand  Expression
	IsPrefix bool
}

func (u *UnaryOp) Accept(v Visitor) { v.VisitUnaryOp(u) }

type AssignExpr struct {
	exprBase
	Op     string // "=" or a compound-assignment operator e.g. "+="
	Target Expression
	Value  Expression
}

func (a *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(a) }

type InstanceOfExpr struct {
	exprBase
	Operand    Expression
	TestType   *TypeTree
	BindingVar string // "" if this instanceof has no pattern-binding
}

func (i *InstanceOfExpr) Accept(v Visitor) { v.VisitInstanceOfExpr(i) }

type CastExpr struct {
	exprBase
	TargetType *TypeTree
	Operand    Expression
}

func (c *CastExpr) Accept(v Visitor) { v.VisitCastExpr(c) }

type ArrayInitializer struct {
	exprBase
	Elements []Expression
}

func (a *ArrayInitializer) Accept(v Visitor) { v.VisitArrayInitializer(a) }

// NewArrayExpr is `new T[dim1][dim2]...` or `new T[]{...}`.
type NewArrayExpr struct {
	exprBase
	ElemType *TypeTree
	Dims     []Expression // explicit dimension-size expressions, may be shorter than ExtraDims
	ExtraDims int
	Init     *ArrayInitializer // non-nil for `new T[]{...}` form
}

func (n *NewArrayExpr) Accept(v Visitor) { v.VisitNewArrayExpr(n) }

// Paren wraps a parenthesized expression; spec §4.7 classifies it into its
// own ArgumentType kind ("ParensType") rather than folding it into the
// inner expression, since parenthesization affects poly-expression
// standalone-ness.
type Paren struct {
	exprBase
	Inner Expression
}

func (p *Paren) Accept(v Visitor) { v.VisitParen(p) }

// ConditionalExpr is the ternary `cond ? t : f`. Per spec §4.1/§4.9 it is a
// poly expression when both branches are poly (or one is poly and the
// other's type is assignable to it under a target), standalone otherwise;
// internal/attr's ArgumentAttr computes and caches this (PolyKind field).
type ConditionalExpr struct {
	exprBase
	Cond, Then, Else Expression
	Poly             PolyKind
}

func (c *ConditionalExpr) Accept(v Visitor) { v.VisitConditionalExpr(c) }

// SwitchExpr is a switch used in expression position; see stmt.go's
// SwitchStmt doc comment for why these are split.
type SwitchExpr struct {
	exprBase
	Selector Expression
	Cases    []*SwitchCase
	Poly     PolyKind
}

func (s *SwitchExpr) Accept(v Visitor) { v.VisitSwitchExpr(s) }

// MethodInvocation is `target.name(args)` or a bare `name(args)`/
// `Type.name(args)` once Target is nil/a TypeTree wrapper respectively.
// Per spec §4.7 it is classified as ResolvedMethodType when TypeArgs is
// empty (ordinary overload resolution applies) and as a plain deferred
// type when TypeArgs is non-empty (explicit type-witnessed calls skip the
// cached-overload-probe fast path).
type MethodInvocation struct {
	exprBase
	Target   Expression // nil for an unqualified call
	Name     string
	TypeArgs []*TypeTree
	Args     []Expression

	ResolvedMethod *symtab.Symbol
}

func (m *MethodInvocation) Accept(v Visitor) { v.VisitMethodInvocation(m) }

// NewClassExpr is `new Type<TypeArgs>(args) { body }`. Diamond is true for
// `new Type<>(args)`, triggering the ResolvedConstructorType classification
// of spec §4.7 (the actual type arguments are inferred from the
// target/arguments rather than read off TypeArgs, which is empty).
type NewClassExpr struct {
	exprBase
	Enclosing Expression // non-nil for `outer.new Inner(...)`
	ClassType *TypeTree
	Diamond   bool
	Args      []Expression
	// AnonymousBody is non-nil for an anonymous-class creation expression
	// `new Iface() { ...members... }`.
	AnonymousBody []Declaration

	ResolvedCtor *symtab.Symbol
}

func (n *NewClassExpr) Accept(v Visitor) { v.VisitNewClassExpr(n) }

// LambdaExpr is `(params) -> body`. Per spec §4.1 a lambda is always a
// poly expression; ExplicitParamTypes is true only when every parameter
// carries a declared type, which spec §4.7 requires before the
// ExplicitLambdaType classification applies (an implicit-typed lambda
// instead gets the plain-deferred-type fallback).
type LambdaExpr struct {
	exprBase
	Params             []*ParamDecl
	ExplicitParamTypes bool
	Body               Statement  // *Block for a block-body lambda
	ExprBody           Expression // non-nil for an expression-body lambda
}

func (l *LambdaExpr) Accept(v Visitor) { v.VisitLambdaExpr(l) }

// MethodRefKind distinguishes the four JLS method-reference forms.
type MethodRefKind int

const (
	MethodRefUnbound MethodRefKind = iota // Type::instanceMethod
	MethodRefBound                        // expr::instanceMethod
	MethodRefStatic                       // Type::staticMethod
	MethodRefCtor                         // Type::new
)

// MethodRefExpr is `Qualifier::name` (or `Qualifier::new`). Per spec §4.7
// the qualifier is attributed in its own local-cache context so a failed
// qualifier resolution cannot poison the outer speculative cache; Overload
// is computed from the resolved member once that attribution completes.
type MethodRefExpr struct {
	exprBase
	Qualifier Expression // nil when QualifierType is set instead (Type::method form with no receiver instance)
	QualifierType *TypeTree
	Name      string // "new" for a constructor reference
	RefKind   MethodRefKind

	ResolvedMember *symtab.Symbol
	Overload       OverloadKind
}

func (m *MethodRefExpr) Accept(v Visitor) { v.VisitMethodRefExpr(m) }

// ThisExpr / SuperExpr are the `this [qualifier.this]` / `super` special
// forms.
type ThisExpr struct {
	exprBase
	Qualifier *TypeTree // non-nil for `Outer.this`
}

func (t *ThisExpr) Accept(v Visitor) { v.VisitThisExpr(t) }

type SuperExpr struct {
	exprBase
}

func (s *SuperExpr) Accept(v Visitor) { v.VisitSuperExpr(s) }
