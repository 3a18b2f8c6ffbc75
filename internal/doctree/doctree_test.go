package doctree_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/doctree"
	"github.com/funvibe/javac-core/internal/tree"
)

func TestTableRoundTripsRawText(t *testing.T) {
	tbl := doctree.NewTable()
	decl := &tree.MethodDecl{Name: "foo"}

	if tbl.RawText(decl) != "" {
		t.Fatalf("expected no recorded comment to read back as empty")
	}
	raw := "/** Does a thing.\n * @param x the input\n * @return the result\n */"
	tbl.Record(decl, raw)
	if got := tbl.RawText(decl); got != raw {
		t.Fatalf("expected recorded raw text to read back unchanged, got %q", got)
	}

	doc := tbl.Get(decl)
	if doc == nil {
		t.Fatalf("expected a DocComment once raw text was recorded")
	}
}

func TestParseSplitsDescriptionAndBlockTags(t *testing.T) {
	doc := doctree.Parse("/**\n * Computes a thing.\n *\n * @param x the input value\n * @return the computed result\n */", 0)

	params := doc.BlockTags("param")
	if len(params) != 1 {
		t.Fatalf("expected exactly one @param tag, got %d", len(params))
	}
	if len(params[0].Args) == 0 || params[0].Args[0] != "x" {
		t.Fatalf("expected @param's first arg to be the parameter name, got %v", params[0].Args)
	}

	returns := doc.BlockTags("return")
	if len(returns) != 1 {
		t.Fatalf("expected exactly one @return tag, got %d", len(returns))
	}

	summary := doc.FirstSentence()
	if summary == "" {
		t.Fatalf("expected a non-empty first-sentence summary")
	}
}

func TestParseInlineTag(t *testing.T) {
	doc := doctree.Parse("/** See {@link Foo#bar} for details. */", 0)
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected at least one parsed node")
	}
	found := false
	for _, n := range doc.Nodes {
		if n.Kind != doctree.KindParagraph {
			continue
		}
		for _, c := range n.Children {
			if c.Kind == doctree.KindInlineTag && c.TagName == "link" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected to find a parsed {@link} inline tag")
	}
}
