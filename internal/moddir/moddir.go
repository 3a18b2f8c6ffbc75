// Package moddir models the requires/exports/opens/uses/provides
// directives a module compilation unit carries, per spec.md §3.9/§6.3.
package moddir

import "github.com/funvibe/javac-core/internal/name"

// RequiresFlag bits, exact integer constants per spec §6.3.
type RequiresFlag uint32

const (
	RequiresTransitive RequiresFlag = 0x0020
	RequiresStaticPhase RequiresFlag = 0x0040
	RequiresSynthetic  RequiresFlag = 0x1000
	RequiresMandated   RequiresFlag = 0x8000
	RequiresExtra      RequiresFlag = 0x10000
)

// ExportsFlag / OpensFlag share the same two bits per spec §6.3.
type ExportsFlag uint32

const (
	ExportsSynthetic ExportsFlag = 0x1000
	ExportsMandated  ExportsFlag = 0x8000
)

type OpensFlag uint32

const (
	OpensSynthetic OpensFlag = 0x1000
	OpensMandated  OpensFlag = 0x8000
)

// Directive is the closed tagged variant over the five directive kinds.
type Directive interface {
	directiveNode()
}

// Requires declares a dependency on another module.
type Requires struct {
	Module name.Name
	Flags  RequiresFlag
}

func (Requires) directiveNode() {}

// Exports makes a package available to all modules, or to TargetModules
// only (a qualified export) when non-empty.
type Exports struct {
	Package       name.Name
	TargetModules []name.Name
	Flags         ExportsFlag
}

func (Exports) directiveNode() {}

// Opens permits reflective access to a package, unconditionally or to
// TargetModules only.
type Opens struct {
	Package       name.Name
	TargetModules []name.Name
	Flags         OpensFlag
}

func (Opens) directiveNode() {}

// Uses declares a service-consumer dependency.
type Uses struct {
	Service name.Name
}

func (Uses) directiveNode() {}

// Provides declares that this module implements Service via Impls.
type Provides struct {
	Service name.Name
	Impls   []name.Name
}

func (Provides) directiveNode() {}

// EncodeRequires / DecodeRequires round-trip a set of RequiresFlag bits to
// and from their OR'ed integer encoding, per spec §6.3/§8 Property 9.
func EncodeRequires(flags []RequiresFlag) uint32 {
	var v uint32
	for _, f := range flags {
		v |= uint32(f)
	}
	return v
}

func DecodeRequires(v uint32) []RequiresFlag {
	all := []RequiresFlag{RequiresTransitive, RequiresStaticPhase, RequiresSynthetic, RequiresMandated, RequiresExtra}
	var out []RequiresFlag
	for _, f := range all {
		if v&uint32(f) != 0 {
			out = append(out, f)
		}
	}
	return out
}

func EncodeExports(flags []ExportsFlag) uint32 {
	var v uint32
	for _, f := range flags {
		v |= uint32(f)
	}
	return v
}

func DecodeExports(v uint32) []ExportsFlag {
	all := []ExportsFlag{ExportsSynthetic, ExportsMandated}
	var out []ExportsFlag
	for _, f := range all {
		if v&uint32(f) != 0 {
			out = append(out, f)
		}
	}
	return out
}

func EncodeOpens(flags []OpensFlag) uint32 {
	var v uint32
	for _, f := range flags {
		v |= uint32(f)
	}
	return v
}

func DecodeOpens(v uint32) []OpensFlag {
	all := []OpensFlag{OpensSynthetic, OpensMandated}
	var out []OpensFlag
	for _, f := range all {
		if v&uint32(f) != 0 {
			out = append(out, f)
		}
	}
	return out
}
