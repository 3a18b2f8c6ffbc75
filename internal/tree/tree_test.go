package tree_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/name"
	"github.com/funvibe/javac-core/internal/symtab"
	"github.com/funvibe/javac-core/internal/tree"
	"github.com/funvibe/javac-core/internal/types"
)

func TestCopyResetsResolvedTypeButKeepsSymbol(t *testing.T) {
	tbl := name.NewTable()
	sym := symtab.NewSymbol(tbl.Intern("x"), symtab.KindLocal, nil, types.NewPrimitive(types.Int))

	id := &tree.Ident{Name: "x", Symbol: sym}
	id.SetType(types.NewPrimitive(types.Int))

	cp := tree.Copy(id).(*tree.Ident)
	if cp.Type() != nil {
		t.Fatalf("expected Copy to reset the resolved type, got %v", cp.Type())
	}
	if cp.Symbol != sym {
		t.Fatalf("expected Copy to preserve the symbol back-reference")
	}
	if cp == id {
		t.Fatalf("expected Copy to allocate a distinct node")
	}
	if id.Type() == nil {
		t.Fatalf("did not expect Copy to mutate the original node's resolved type")
	}
}

func TestCopyRecursesIntoChildren(t *testing.T) {
	left := &tree.Ident{Name: "a"}
	left.SetType(types.NewPrimitive(types.Int))
	right := &tree.Ident{Name: "b"}
	right.SetType(types.NewPrimitive(types.Int))
	bin := &tree.BinaryOp{Op: "+", Left: left, Right: right}
	bin.SetType(types.NewPrimitive(types.Int))

	cp := tree.Copy(bin).(*tree.BinaryOp)
	if cp.Type() != nil {
		t.Fatalf("expected the copied BinaryOp's type to be reset")
	}
	if cp.Left.(*tree.Ident).Type() != nil {
		t.Fatalf("expected the copied left child's type to be reset too")
	}
	if cp.Left == left {
		t.Fatalf("expected the left child to be copied, not shared")
	}
}

// collectingVisitor counts how many Ident nodes it visits, used to check
// that a BaseVisitor embedder only needs to override what it cares about.
type collectingVisitor struct {
	tree.BaseVisitor
	idents int
}

func (c *collectingVisitor) VisitIdent(*tree.Ident) { c.idents++ }

func TestBaseVisitorEmbeddingOverridesOneMethod(t *testing.T) {
	v := &collectingVisitor{}
	id := &tree.Ident{Name: "x"}
	id.Accept(v)
	if v.idents != 1 {
		t.Fatalf("expected the overridden VisitIdent to run")
	}

	// Every other method is inherited as a no-op and must not panic.
	(&tree.Literal{Value: 1}).Accept(v)
}

func TestPolyKindZeroValueIsUnknown(t *testing.T) {
	var c tree.ConditionalExpr
	if c.Poly != tree.PolyUnknown {
		t.Fatalf("expected a fresh ConditionalExpr's PolyKind to default to PolyUnknown")
	}
}
