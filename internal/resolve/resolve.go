// Package resolve implements the three-phase overload candidate search
// from spec.md §4.8: basic applicability (no boxing, no varargs), then
// boxing-permitted applicability, then varargs applicability, trying every
// candidate in one phase before moving to the next, and picking the
// most-specific applicable candidate.
package resolve

import (
	"github.com/funvibe/javac-core/internal/attr"
	"github.com/funvibe/javac-core/internal/symtab"
	"github.com/funvibe/javac-core/internal/types"
)

// Phase identifies one of the three applicability passes, in the strict
// order spec §4.8 requires: every candidate is probed in phase N before
// phase N+1 begins.
type Phase int

const (
	PhaseBasic Phase = iota
	PhaseBox
	PhaseVarargs
)

func (p Phase) checkMode() attr.CheckMode {
	switch p {
	case PhaseBasic:
		return attr.NoBoxing | attr.NoVarargs
	case PhaseBox:
		return attr.NoVarargs
	default:
		return attr.CheckModeNone
	}
}

// Candidate is one overload-resolution candidate: a method/constructor
// symbol with its (possibly generic) signature.
type Candidate struct {
	Symbol    *symtab.Symbol
	Signature *types.MethodType
}

// Probe runs one phase's applicability check for a candidate against a
// list of already-classified call arguments, per spec §4.8: "It probes
// each ArgumentType via overloadCheck in argument order; an error result
// disqualifies the candidate for that phase."
func Probe(a *attr.Attributor, cand Candidate, args []*attr.ArgumentType, phase Phase) bool {
	n := len(cand.Signature.ParamTypes)
	if phase == PhaseVarargs {
		if n == 0 || len(args) < n-1 {
			return false
		}
	} else if len(args) != n {
		return false
	}
	mode := phase.checkMode()
	for i, at := range args {
		target := paramTypeFor(cand.Signature, i, phase)
		if target == nil {
			return false
		}
		ok, err := a.OverloadCheck(at, attr.ResultInfo{Target: target, CheckMode: mode})
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// paramTypeFor returns the formal parameter type argIndex should be
// checked against. In PhaseVarargs, every argument at or past the last
// formal parameter is checked against the trailing array parameter's
// element type rather than the array type itself.
func paramTypeFor(sig *types.MethodType, argIndex int, phase Phase) types.Type {
	n := len(sig.ParamTypes)
	if n == 0 {
		return nil
	}
	if phase == PhaseVarargs && argIndex >= n-1 {
		last, ok := sig.ParamTypes[n-1].(*types.ArrayType)
		if !ok {
			return nil
		}
		return last.ElemType
	}
	if argIndex >= n {
		return nil
	}
	return sig.ParamTypes[argIndex]
}

// FindApplicable runs the three phases in order, returning the first
// phase's applicable candidate subset (phases never mix: finding any
// applicable candidate in PhaseBasic means PhaseBox/PhaseVarargs never
// run, per spec §4.8).
func FindApplicable(a *attr.Attributor, candidates []Candidate, args []*attr.ArgumentType) ([]Candidate, Phase) {
	for _, phase := range []Phase{PhaseBasic, PhaseBox, PhaseVarargs} {
		var applicable []Candidate
		for _, c := range candidates {
			if Probe(a, c, args, phase) {
				applicable = append(applicable, c)
			}
		}
		if len(applicable) > 0 {
			return applicable, phase
		}
	}
	return nil, PhaseVarargs
}

// MostSpecific picks the single most-specific candidate from a same-phase
// applicable set, per spec §4.8. A candidate m1 is more specific than m2
// when every one of m1's formal parameter types is a subtype of the
// corresponding m2 parameter type (the JLS §15.12.2.5 definition,
// restricted here to the common non-generic case; generic-method
// most-specific, which additionally requires inference, is not handled).
func MostSpecific(applicable []Candidate) (Candidate, bool) {
	if len(applicable) == 0 {
		return Candidate{}, false
	}
	best := applicable[0]
	for _, c := range applicable[1:] {
		if moreSpecific(c, best) {
			best = c
		}
	}
	for _, c := range applicable {
		if c.Symbol == best.Symbol && c.Signature == best.Signature {
			continue
		}
		if !moreSpecific(best, c) {
			return Candidate{}, false // ambiguous: no single most-specific winner
		}
	}
	return best, true
}

func moreSpecific(m1, m2 Candidate) bool {
	p1, p2 := m1.Signature.ParamTypes, m2.Signature.ParamTypes
	if len(p1) != len(p2) {
		return false
	}
	for i := range p1 {
		if !types.IsSubtype(p1[i], p2[i]) {
			return false
		}
	}
	return true
}
