package tree

// Visitor is the closed double-dispatch interface every tree walker
// implements (type-checking attribution, pretty-printing, the doc-tree
// translator, ...), grounded on the teacher's ast.Visitor shape: one
// VisitX method per concrete node struct.
type Visitor interface {
	VisitCompilationUnit(*CompilationUnit)
	VisitPackageDecl(*PackageDecl)
	VisitImportDecl(*ImportDecl)
	VisitAnnotation(*Annotation)
	VisitModuleDecl(*ModuleDecl)
	VisitTypeTree(*TypeTree)

	VisitClassDecl(*ClassDecl)
	VisitTypeParamDecl(*TypeParamDecl)
	VisitMethodDecl(*MethodDecl)
	VisitParamDecl(*ParamDecl)
	VisitFieldDecl(*FieldDecl)

	VisitBlock(*Block)
	VisitLocalVarDecl(*LocalVarDecl)
	VisitExpressionStmt(*ExpressionStmt)
	VisitIfStmt(*IfStmt)
	VisitWhileStmt(*WhileStmt)
	VisitDoWhileStmt(*DoWhileStmt)
	VisitForStmt(*ForStmt)
	VisitForEachStmt(*ForEachStmt)
	VisitReturnStmt(*ReturnStmt)
	VisitThrowStmt(*ThrowStmt)
	VisitBreakStmt(*BreakStmt)
	VisitContinueStmt(*ContinueStmt)
	VisitLabeledStmt(*LabeledStmt)
	VisitTryStmt(*TryStmt)
	VisitCatchClause(*CatchClause)
	VisitSwitchStmt(*SwitchStmt)
	VisitSwitchCase(*SwitchCase)
	VisitSyncStmt(*SyncStmt)
	VisitEmptyStmt(*EmptyStmt)

	VisitLiteral(*Literal)
	VisitIdent(*Ident)
	VisitFieldAccess(*FieldAccess)
	VisitArrayAccess(*ArrayAccess)
	VisitBinaryOp(*BinaryOp)
	VisitUnaryOp(*UnaryOp)
	VisitAssignExpr(*AssignExpr)
	VisitInstanceOfExpr(*InstanceOfExpr)
	VisitCastExpr(*CastExpr)
	VisitArrayInitializer(*ArrayInitializer)
	VisitNewArrayExpr(*NewArrayExpr)
	VisitParen(*Paren)
	VisitConditionalExpr(*ConditionalExpr)
	VisitSwitchExpr(*SwitchExpr)
	VisitMethodInvocation(*MethodInvocation)
	VisitNewClassExpr(*NewClassExpr)
	VisitLambdaExpr(*LambdaExpr)
	VisitMethodRefExpr(*MethodRefExpr)
	VisitThisExpr(*ThisExpr)
	VisitSuperExpr(*SuperExpr)
}

// BaseVisitor implements every Visitor method as a no-op, so a walker that
// only cares about a handful of node kinds can embed BaseVisitor and
// override just those, mirroring the teacher's
// "visitX-default-delegates"-style catch-all arm (generalized here to
// Go's embed-and-override idiom since Go has no inheritance).
type BaseVisitor struct{}

func (BaseVisitor) VisitCompilationUnit(*CompilationUnit) {}
func (BaseVisitor) VisitPackageDecl(*PackageDecl)         {}
func (BaseVisitor) VisitImportDecl(*ImportDecl)           {}
func (BaseVisitor) VisitAnnotation(*Annotation)           {}
func (BaseVisitor) VisitModuleDecl(*ModuleDecl)           {}
func (BaseVisitor) VisitTypeTree(*TypeTree)               {}

func (BaseVisitor) VisitClassDecl(*ClassDecl)         {}
func (BaseVisitor) VisitTypeParamDecl(*TypeParamDecl) {}
func (BaseVisitor) VisitMethodDecl(*MethodDecl)       {}
func (BaseVisitor) VisitParamDecl(*ParamDecl)         {}
func (BaseVisitor) VisitFieldDecl(*FieldDecl)         {}

func (BaseVisitor) VisitBlock(*Block)                 {}
func (BaseVisitor) VisitLocalVarDecl(*LocalVarDecl)   {}
func (BaseVisitor) VisitExpressionStmt(*ExpressionStmt) {}
func (BaseVisitor) VisitIfStmt(*IfStmt)               {}
func (BaseVisitor) VisitWhileStmt(*WhileStmt)         {}
func (BaseVisitor) VisitDoWhileStmt(*DoWhileStmt)     {}
func (BaseVisitor) VisitForStmt(*ForStmt)             {}
func (BaseVisitor) VisitForEachStmt(*ForEachStmt)     {}
func (BaseVisitor) VisitReturnStmt(*ReturnStmt)       {}
func (BaseVisitor) VisitThrowStmt(*ThrowStmt)         {}
func (BaseVisitor) VisitBreakStmt(*BreakStmt)         {}
func (BaseVisitor) VisitContinueStmt(*ContinueStmt)   {}
func (BaseVisitor) VisitLabeledStmt(*LabeledStmt)     {}
func (BaseVisitor) VisitTryStmt(*TryStmt)             {}
func (BaseVisitor) VisitCatchClause(*CatchClause)     {}
func (BaseVisitor) VisitSwitchStmt(*SwitchStmt)       {}
func (BaseVisitor) VisitSwitchCase(*SwitchCase)       {}
func (BaseVisitor) VisitSyncStmt(*SyncStmt)           {}
func (BaseVisitor) VisitEmptyStmt(*EmptyStmt)         {}

func (BaseVisitor) VisitLiteral(*Literal)                     {}
func (BaseVisitor) VisitIdent(*Ident)                         {}
func (BaseVisitor) VisitFieldAccess(*FieldAccess)             {}
func (BaseVisitor) VisitArrayAccess(*ArrayAccess)             {}
func (BaseVisitor) VisitBinaryOp(*BinaryOp)                   {}
func (BaseVisitor) VisitUnaryOp(*UnaryOp)                     {}
func (BaseVisitor) VisitAssignExpr(*AssignExpr)               {}
func (BaseVisitor) VisitInstanceOfExpr(*InstanceOfExpr)       {}
func (BaseVisitor) VisitCastExpr(*CastExpr)                   {}
func (BaseVisitor) VisitArrayInitializer(*ArrayInitializer)   {}
func (BaseVisitor) VisitNewArrayExpr(*NewArrayExpr)           {}
func (BaseVisitor) VisitParen(*Paren)                         {}
func (BaseVisitor) VisitConditionalExpr(*ConditionalExpr)     {}
func (BaseVisitor) VisitSwitchExpr(*SwitchExpr)               {}
func (BaseVisitor) VisitMethodInvocation(*MethodInvocation)   {}
func (BaseVisitor) VisitNewClassExpr(*NewClassExpr)           {}
func (BaseVisitor) VisitLambdaExpr(*LambdaExpr)               {}
func (BaseVisitor) VisitMethodRefExpr(*MethodRefExpr)         {}
func (BaseVisitor) VisitThisExpr(*ThisExpr)                   {}
func (BaseVisitor) VisitSuperExpr(*SuperExpr)                 {}
