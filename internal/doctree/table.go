package doctree

import "github.com/funvibe/javac-core/internal/tree"

// Table maps a declaration node to its raw (unparsed) doc-comment text,
// populated by the parser from the comment immediately preceding a
// declaration. Resolving spec §9's Open Question: doc-comment extraction
// must read from a real side table keyed by declaration identity, never
// return a hardcoded empty string for a declaration that does have a
// preceding comment.
type Table struct {
	raw map[tree.Declaration]string
}

func NewTable() *Table {
	return &Table{raw: make(map[tree.Declaration]string)}
}

// Record associates decl with its raw doc-comment text (including the
// leading "/**" and trailing "*/" delimiters and interior "*" margins,
// left for Parse to strip).
func (t *Table) Record(decl tree.Declaration, raw string) {
	t.raw[decl] = raw
}

// RawText returns the raw doc-comment text for decl, or "" if none was
// recorded (a genuinely undocumented declaration, distinct from a lookup
// miss caused by a missing side-table entry).
func (t *Table) RawText(decl tree.Declaration) string {
	return t.raw[decl]
}

// Get parses and returns the DocComment for decl, or nil if decl has no
// recorded comment.
func (t *Table) Get(decl tree.Declaration) *DocComment {
	raw, ok := t.raw[decl]
	if !ok || raw == "" {
		return nil
	}
	return Parse(raw, decl.Pos())
}
