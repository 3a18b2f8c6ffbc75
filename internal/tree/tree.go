// Package tree implements the Java AST model from spec.md §3.2/§4.5: a
// closed tagged variant over statements, expressions, declarations, and
// module directives, every node carrying a source position and a
// lazily-attributed resolved Type, with Visitor dispatch by tag and a
// TreeCopier for the speculative-attribution subtrees internal/attr needs.
//
// Shape grounded on the teacher's internal/ast package: a Node/Statement/
// Expression interface trio, one struct per concrete node kind, each
// implementing Accept(v Visitor) for double-dispatch (internal/ast's
// ast_core.go/ast_expressions.go/ast_types.go).
package tree

import (
	"github.com/funvibe/javac-core/internal/source"
	"github.com/funvibe/javac-core/internal/types"
)

// Node is the common interface every AST node implements.
type Node interface {
	Pos() source.Position
	Accept(v Visitor)
}

// Statement is a Node that can appear in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that can appear in an expression position, and
// carries a resolved Type once attribution has run.
type Expression interface {
	Node
	expressionNode()
	Type() types.Type
	SetType(types.Type)
}

// exprBase factors the position/type bookkeeping shared by every concrete
// Expression, mirroring the teacher's per-node Token+GetToken() pattern
// generalized to a position-only field (lexing is an external collaborator
// here, so nodes don't carry a lexical Token).
type exprBase struct {
	pos      source.Position
	resolved types.Type
}

func (e *exprBase) Pos() source.Position { return e.pos }
func (e *exprBase) Type() types.Type     { return e.resolved }
func (e *exprBase) SetType(t types.Type) { e.resolved = t }
func (*exprBase) expressionNode()        {}

type stmtBase struct {
	pos source.Position
}

func (s *stmtBase) Pos() source.Position { return s.pos }
func (*stmtBase) statementNode()         {}

// CompilationUnit is the root node of every AST the parser produces, per
// spec §3.2.
type CompilationUnit struct {
	pos          source.Position
	Source       source.Source
	PackageName  *PackageDecl
	Imports      []*ImportDecl
	ModuleDecl   *ModuleDecl // non-nil only for module-info.java units
	Declarations []Declaration
}

func NewCompilationUnit(src source.Source) *CompilationUnit {
	return &CompilationUnit{Source: src}
}

func (c *CompilationUnit) Pos() source.Position { return c.pos }
func (c *CompilationUnit) Accept(v Visitor)      { v.VisitCompilationUnit(c) }

// Declaration is a Node that declares a package member (class, interface,
// enum, annotation type) or a class member (method, field, etc).
type Declaration interface {
	Node
	declarationNode()
}

type declBase struct {
	pos source.Position
}

func (d *declBase) Pos() source.Position { return d.pos }
func (*declBase) declarationNode()       {}

// PackageDecl is the `package foo.bar;` clause.
type PackageDecl struct {
	declBase
	QualifiedName string
	Annotations   []*Annotation
}

func (p *PackageDecl) Accept(v Visitor) { v.VisitPackageDecl(p) }

// ImportDecl is a single `import` clause.
type ImportDecl struct {
	declBase
	QualifiedName string
	IsStatic      bool
	IsOnDemand    bool // trailing `.*`
}

func (i *ImportDecl) Accept(v Visitor) { v.VisitImportDecl(i) }

// Annotation is `@Name(args)`.
type Annotation struct {
	declBase
	TypeName string
	// Args maps element-value-pair names to their literal/constant
	// expression; a single-element annotation uses the key "value".
	Args map[string]Expression
}

func (a *Annotation) Accept(v Visitor) { v.VisitAnnotation(a) }

// SuppressWarningsValues implements lint.Annotated for a class/method
// declaration's collected annotation set.
type AnnotationSet []*Annotation

func (as AnnotationSet) SuppressWarningsValues() []string {
	for _, a := range as {
		if a.TypeName != "SuppressWarnings" {
			continue
		}
		lit, ok := a.Args["value"].(*ArrayInitializer)
		if !ok {
			if s, ok := a.Args["value"].(*Literal); ok {
				if str, ok := s.Value.(string); ok {
					return []string{str}
				}
			}
			continue
		}
		var out []string
		for _, e := range lit.Elements {
			if l, ok := e.(*Literal); ok {
				if str, ok := l.Value.(string); ok {
					out = append(out, str)
				}
			}
		}
		return out
	}
	return nil
}

func (as AnnotationSet) IsDeprecated() bool {
	for _, a := range as {
		if a.TypeName == "Deprecated" {
			return true
		}
	}
	return false
}
