// Package doctree implements the Javadoc comment tree model from
// spec.md §6.4: a closed set of doc-node kinds (a lightweight Markdown/
// Javadoc-tag AST), translated from raw doc-comment text using the owning
// compilation unit's position machinery.
package doctree

import "github.com/funvibe/javac-core/internal/source"

// NodeKind is the closed doc-node-kind set.
type NodeKind int

const (
	KindText NodeKind = iota
	KindParagraph
	KindInlineTag  // {@code ...}, {@link ...}, {@literal ...}
	KindBlockTag   // @param, @return, @throws, @see, @deprecated, @since
	KindCodeFence  // <pre>{@code ...}</pre>-style block
	KindEntityRef  // &amp; etc.
)

// Node is one element of a parsed doc comment.
type Node struct {
	Kind NodeKind
	Pos  source.Position

	Text    string   // KindText / KindEntityRef literal text
	TagName string   // KindInlineTag / KindBlockTag name, e.g. "param", "link"
	Args    []string // e.g. @param's parameter name, @throws's exception name
	Children []*Node // KindParagraph / KindCodeFence nested content
}

// DocComment is the full parsed comment attached to one declaration.
type DocComment struct {
	Pos   source.Position
	Nodes []*Node
}

// FirstSentence returns the leading text up to (and including) the first
// sentence-terminating '.', per the Javadoc "first sentence is the
// summary" convention, scanning only KindText/KindParagraph nodes.
func (d *DocComment) FirstSentence() string {
	for _, n := range d.Nodes {
		if n.Kind != KindText && n.Kind != KindParagraph {
			continue
		}
		text := n.Text
		if n.Kind == KindParagraph {
			for _, c := range n.Children {
				text += c.Text
			}
		}
		if idx := indexSentenceEnd(text); idx >= 0 {
			return text[:idx+1]
		}
		return text
	}
	return ""
}

func indexSentenceEnd(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' && (i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\n') {
			return i
		}
	}
	return -1
}

// BlockTags filters Nodes down to KindBlockTag entries matching name (e.g.
// all "@param" tags), in source order.
func (d *DocComment) BlockTags(name string) []*Node {
	var out []*Node
	for _, n := range d.Nodes {
		if n.Kind == KindBlockTag && n.TagName == name {
			out = append(out, n)
		}
	}
	return out
}
