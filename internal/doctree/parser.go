package doctree

import (
	"strings"

	"github.com/funvibe/javac-core/internal/source"
)

// Parse strips comment delimiters/margins from raw and splits it into
// block-tag sections (lines starting with "@name") and a leading
// description, recognizing "{@tag ...}" inline tags within text.
func Parse(raw string, pos source.Position) *DocComment {
	body := stripDelimiters(raw)
	lines := strings.Split(body, "\n")

	doc := &DocComment{Pos: pos}
	var description strings.Builder
	var currentTag *Node

	flushDescription := func() {
		text := strings.TrimSpace(description.String())
		if text == "" {
			return
		}
		doc.Nodes = append(doc.Nodes, &Node{
			Kind:     KindParagraph,
			Children: parseInline(text),
		})
		description.Reset()
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") {
			flushDescription()
			if currentTag != nil {
				doc.Nodes = append(doc.Nodes, currentTag)
			}
			name, rest := splitTagLine(trimmed)
			currentTag = &Node{Kind: KindBlockTag, TagName: name, Args: splitArgs(name, rest), Text: rest}
			continue
		}
		if currentTag != nil {
			currentTag.Text += " " + trimmed
			continue
		}
		description.WriteString(line)
		description.WriteString("\n")
	}
	flushDescription()
	if currentTag != nil {
		doc.Nodes = append(doc.Nodes, currentTag)
	}
	return doc
}

func stripDelimiters(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "/**")
	s = strings.TrimSuffix(s, "*/")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "*")
		lines[i] = strings.TrimPrefix(l, " ")
	}
	return strings.Join(lines, "\n")
}

func splitTagLine(line string) (name, rest string) {
	line = strings.TrimPrefix(line, "@")
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx+1:])
}

// splitArgs extracts the leading identifier argument for tags that name
// one (param's parameter name, throws's exception name); other tags keep
// their whole remainder as free text in Node.Text.
func splitArgs(name, rest string) []string {
	switch name {
	case "param", "throws", "exception":
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			if rest == "" {
				return nil
			}
			return []string{rest}
		}
		return []string{rest[:idx]}
	default:
		return nil
	}
}

// parseInline splits text on "{@tag ...}" inline spans, per spec §6.4.
func parseInline(text string) []*Node {
	var out []*Node
	for len(text) > 0 {
		start := strings.Index(text, "{@")
		if start < 0 {
			out = append(out, &Node{Kind: KindText, Text: text})
			break
		}
		if start > 0 {
			out = append(out, &Node{Kind: KindText, Text: text[:start]})
		}
		end := strings.Index(text[start:], "}")
		if end < 0 {
			out = append(out, &Node{Kind: KindText, Text: text[start:]})
			break
		}
		inline := text[start+2 : start+end]
		name, rest := splitTagLine("@" + inline)
		out = append(out, &Node{Kind: KindInlineTag, TagName: name, Text: rest})
		text = text[start+end+1:]
	}
	return out
}
