package lint_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/lint"
)

type fakeDecl struct {
	suppress   []string
	deprecated bool
}

func (f fakeDecl) SuppressWarningsValues() []string { return f.suppress }
func (f fakeDecl) IsDeprecated() bool               { return f.deprecated }

func TestAugmentFromAnnotation(t *testing.T) {
	base := lint.FromCategories(lint.Rawtypes, lint.Unchecked)
	decl := fakeDecl{suppress: []string{"rawtypes"}}

	got := lint.Augment(base, decl)

	if got.IsEnabled(lint.Rawtypes) {
		t.Fatalf("rawtypes should no longer be enabled after suppression")
	}
	if !got.IsSuppressed(lint.Rawtypes) {
		t.Fatalf("rawtypes should be suppressed")
	}
	if !got.IsEnabled(lint.Unchecked) {
		t.Fatalf("unchecked should remain enabled")
	}
}

func TestAugmentMonotonicity(t *testing.T) {
	base := lint.AllEnabled()
	decl := fakeDecl{suppress: []string{"cast", "serial"}}
	got := lint.Augment(base, decl)

	for _, c := range []lint.Category{lint.Cast, lint.Serial} {
		if !got.IsSuppressed(c) {
			t.Fatalf("%s should be suppressed", c)
		}
		if got.IsEnabled(c) {
			t.Fatalf("%s should not be enabled anymore", c)
		}
	}
	// suppressed only grows, enabled only shrinks (Testable Property 8).
	if !got.IsEnabled(lint.Unchecked) {
		t.Fatalf("unrelated category should remain enabled")
	}
}

func TestAugmentNoChangeReusesIdentity(t *testing.T) {
	base := lint.FromCategories(lint.Cast)
	decl := fakeDecl{suppress: []string{"not-a-real-category"}}
	got := lint.Augment(base, decl)
	if !got.Equal(base) {
		t.Fatalf("unrecognized category name should not alter the lint value")
	}
}

func TestDeprecatedSuppressesDeprecationCategory(t *testing.T) {
	base := lint.FromCategories(lint.Deprecation)
	decl := fakeDecl{deprecated: true}
	got := lint.Augment(base, decl)
	if !got.IsSuppressed(lint.Deprecation) {
		t.Fatalf("@Deprecated declaration should suppress deprecation warnings about itself")
	}
}
