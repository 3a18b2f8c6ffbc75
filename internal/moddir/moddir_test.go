package moddir_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/moddir"
)

func flagSet(flags []moddir.RequiresFlag) map[moddir.RequiresFlag]bool {
	m := make(map[moddir.RequiresFlag]bool, len(flags))
	for _, f := range flags {
		m[f] = true
	}
	return m
}

func TestRequiresFlagRoundTrip(t *testing.T) {
	cases := [][]moddir.RequiresFlag{
		{},
		{moddir.RequiresTransitive},
		{moddir.RequiresStaticPhase, moddir.RequiresMandated},
		{moddir.RequiresTransitive, moddir.RequiresStaticPhase, moddir.RequiresSynthetic, moddir.RequiresMandated, moddir.RequiresExtra},
	}
	for _, c := range cases {
		encoded := moddir.EncodeRequires(c)
		decoded := moddir.DecodeRequires(encoded)
		want := flagSet(c)
		got := flagSet(decoded)
		if len(want) != len(got) {
			t.Fatalf("round trip %v -> %#x -> %v: size mismatch", c, encoded, decoded)
		}
		for f := range want {
			if !got[f] {
				t.Fatalf("round trip %v -> %#x -> %v: missing %v", c, encoded, decoded, f)
			}
		}
	}
}

func TestExactFlagValues(t *testing.T) {
	if moddir.RequiresTransitive != 0x0020 {
		t.Fatalf("RequiresTransitive = %#x, want 0x0020", moddir.RequiresTransitive)
	}
	if moddir.RequiresStaticPhase != 0x0040 {
		t.Fatalf("RequiresStaticPhase = %#x, want 0x0040", moddir.RequiresStaticPhase)
	}
	if moddir.RequiresSynthetic != 0x1000 {
		t.Fatalf("RequiresSynthetic = %#x, want 0x1000", moddir.RequiresSynthetic)
	}
	if moddir.RequiresMandated != 0x8000 {
		t.Fatalf("RequiresMandated = %#x, want 0x8000", moddir.RequiresMandated)
	}
	if moddir.RequiresExtra != 0x10000 {
		t.Fatalf("RequiresExtra = %#x, want 0x10000", moddir.RequiresExtra)
	}
	if moddir.ExportsSynthetic != 0x1000 || moddir.OpensSynthetic != 0x1000 {
		t.Fatalf("Exports/Opens synthetic flags must both be 0x1000")
	}
	if moddir.ExportsMandated != 0x8000 || moddir.OpensMandated != 0x8000 {
		t.Fatalf("Exports/Opens mandated flags must both be 0x8000")
	}
}

func TestDirectiveTaggedVariant(t *testing.T) {
	var directives []moddir.Directive
	directives = append(directives,
		moddir.Requires{Flags: moddir.RequiresTransitive},
		moddir.Exports{},
		moddir.Opens{},
		moddir.Uses{},
		moddir.Provides{},
	)
	if len(directives) != 5 {
		t.Fatalf("expected 5 directive kinds")
	}
}
