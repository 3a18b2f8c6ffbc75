package tree

import "github.com/funvibe/javac-core/internal/scope"

// Block is `{ statements... }`. Carries its own Scope once attribution has
// entered it (local variable declarations bind into Locals), per spec
// §4.4's scope-per-block discipline.
type Block struct {
	stmtBase
	Statements []Statement
	Locals     *scope.Scope // nil until attribution first enters this block
}

func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }

// LocalVarDecl is a local-variable declaration statement, including `var`
// (its Type tree is nil and the resolved type is inferred from Init).
type LocalVarDecl struct {
	stmtBase
	Name    string
	Type    *TypeTree // nil for `var`
	Init    Expression
	IsFinal bool
}

func (l *LocalVarDecl) Accept(v Visitor) { v.VisitLocalVarDecl(l) }

type ExpressionStmt struct {
	stmtBase
	Expr Expression
}

func (e *ExpressionStmt) Accept(v Visitor) { v.VisitExpressionStmt(e) }

type IfStmt struct {
	stmtBase
	Cond Expression
	Then Statement
	Else Statement // nil if no else clause
}

func (i *IfStmt) Accept(v Visitor) { v.VisitIfStmt(i) }

type WhileStmt struct {
	stmtBase
	Cond Expression
	Body Statement
}

func (w *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(w) }

type DoWhileStmt struct {
	stmtBase
	Body Statement
	Cond Expression
}

func (d *DoWhileStmt) Accept(v Visitor) { v.VisitDoWhileStmt(d) }

type ForStmt struct {
	stmtBase
	Init      []Statement
	Cond      Expression // nil means always-true
	Update    []Expression
	Body      Statement
}

func (f *ForStmt) Accept(v Visitor) { v.VisitForStmt(f) }

// ForEachStmt is `for (Type x : iterable) body`.
type ForEachStmt struct {
	stmtBase
	VarName  string
	VarType  *TypeTree
	Iterable Expression
	Body     Statement
}

func (f *ForEachStmt) Accept(v Visitor) { v.VisitForEachStmt(f) }

type ReturnStmt struct {
	stmtBase
	Value Expression // nil for `return;`
}

func (r *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(r) }

type ThrowStmt struct {
	stmtBase
	Value Expression
}

func (t *ThrowStmt) Accept(v Visitor) { v.VisitThrowStmt(t) }

type BreakStmt struct {
	stmtBase
	Label string // "" if unlabeled
}

func (b *BreakStmt) Accept(v Visitor) { v.VisitBreakStmt(b) }

type ContinueStmt struct {
	stmtBase
	Label string
}

func (c *ContinueStmt) Accept(v Visitor) { v.VisitContinueStmt(c) }

type LabeledStmt struct {
	stmtBase
	Label string
	Body  Statement
}

func (l *LabeledStmt) Accept(v Visitor) { v.VisitLabeledStmt(l) }

// TryStmt covers try/try-with-resources/catch/finally, including multi-catch
// (a CatchClause's ExceptionTypes has more than one entry, attributed to a
// types.UnionClassType per spec §3.3).
type TryStmt struct {
	stmtBase
	Resources []Statement // LocalVarDecl entries, evaluated then auto-closed
	Body      *Block
	Catches   []*CatchClause
	Finally   *Block // nil if absent
}

func (t *TryStmt) Accept(v Visitor) { v.VisitTryStmt(t) }

type CatchClause struct {
	stmtBase
	ParamName       string
	ExceptionTypes  []*TypeTree // more than one entry for multi-catch
	Body            *Block

	Symbol *scope.Scope // the catch-block's own mini-scope
}

func (c *CatchClause) Accept(v Visitor) { v.VisitCatchClause(c) }

// SwitchStmt is the classic statement-switch. A switch used in expression
// position (`int x = switch (e) { ... };`) is a distinct node, SwitchExpr
// in expr.go, since it additionally must be exhaustive and is itself a
// poly expression (spec §4.1's poly-expression lattice) rather than a
// Statement.
type SwitchStmt struct {
	stmtBase
	Selector Expression
	Cases    []*SwitchCase
}

func (s *SwitchStmt) Accept(v Visitor) { v.VisitSwitchStmt(s) }

type SwitchCase struct {
	stmtBase
	Labels     []Expression // empty for `default`
	IsArrow    bool         // `case X ->` vs classic `case X:`
	Statements []Statement
	Value      Expression // set when IsArrow && IsExpression's `case X -> expr;`
}

func (s *SwitchCase) Accept(v Visitor) { v.VisitSwitchCase(s) }

type SyncStmt struct {
	stmtBase
	Lock Expression
	Body *Block
}

func (s *SyncStmt) Accept(v Visitor) { v.VisitSyncStmt(s) }

// EmptyStmt is a bare `;`.
type EmptyStmt struct {
	stmtBase
}

func (e *EmptyStmt) Accept(v Visitor) { v.VisitEmptyStmt(e) }
