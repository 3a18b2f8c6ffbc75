package attr_test

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/funvibe/javac-core/internal/attr"
	"github.com/funvibe/javac-core/internal/tree"
)

// classifyFixture is a txtar archive: one "source" section naming a
// dispatch case, one "want" section naming the expected ArgKind, for
// five of the ArgKinds ClassifyArgument recognizes. Using a multi-section
// golden fixture keeps the case table readable as plain text rather than
// a Go literal, the same role txtar plays for golang.org/x/tools' own
// command-line-driven package tests.
const classifyFixture = `
-- literal/source --
literal
-- literal/want --
plain-deferred

-- paren/source --
paren
-- paren/want --
parens

-- conditional/source --
conditional
-- conditional/want --
conditional

-- lambda/source --
lambda
-- lambda/want --
explicit-lambda

-- methodref/source --
methodref
-- methodref/want --
methodref
`

func buildExprForCase(name string) tree.Expression {
	switch name {
	case "literal":
		return &tree.Literal{}
	case "paren":
		return &tree.Paren{Inner: &tree.Literal{}}
	case "conditional":
		return &tree.ConditionalExpr{}
	case "lambda":
		return &tree.LambdaExpr{ExplicitParamTypes: true, ExprBody: &tree.Literal{}}
	case "methodref":
		return &tree.MethodRefExpr{}
	default:
		return nil
	}
}

func argKindName(k attr.ArgKind) string {
	switch k {
	case attr.KindPlainDeferred:
		return "plain-deferred"
	case attr.KindParens:
		return "parens"
	case attr.KindConditional:
		return "conditional"
	case attr.KindExplicitLambda:
		return "explicit-lambda"
	case attr.KindMethodRef:
		return "methodref"
	case attr.KindResolvedMethod:
		return "resolved-method"
	case attr.KindResolvedConstructor:
		return "resolved-constructor"
	default:
		return "unknown"
	}
}

func TestClassifyArgumentGoldenFixture(t *testing.T) {
	archive := txtar.Parse([]byte(classifyFixture))

	cases := map[string]struct{ source, want string }{}
	for _, f := range archive.Files {
		caseName, section, ok := strings.Cut(f.Name, "/")
		if !ok {
			t.Fatalf("malformed fixture section name %q", f.Name)
		}
		c := cases[caseName]
		text := strings.TrimSpace(string(f.Data))
		switch section {
		case "source":
			c.source = text
		case "want":
			c.want = text
		default:
			t.Fatalf("unknown fixture section %q", section)
		}
		cases[caseName] = c
	}

	for name, c := range cases {
		expr := buildExprForCase(c.source)
		if expr == nil {
			t.Fatalf("case %q: no expression builder for source %q", name, c.source)
		}
		got := argKindName(attr.ClassifyArgument(expr))
		if got != c.want {
			t.Errorf("case %q: ClassifyArgument(%s) = %s, want %s", name, c.source, got, c.want)
		}
	}
}
