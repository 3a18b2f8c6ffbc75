// Package attr implements the Argument Attribution / Deferred Attribution
// model from spec.md §4.7: a speculative-attribution cache keyed by source
// position so that resolving an overloaded call's arguments against many
// candidate parameter types does not re-type-check each argument
// quadratically or pollute symbol tables with speculative side effects.
package attr

import (
	"github.com/funvibe/javac-core/internal/source"
	"github.com/funvibe/javac-core/internal/tree"
	"github.com/funvibe/javac-core/internal/types"
)

// UniquePos is the cache key from spec §4.7 step 3: identity of file
// position. Hash is `offset<<16 + source.hash`, the fix applied per the
// corrected §9 Open Question (the original javac formula collides across
// files past a few thousand positions; widening the shift and folding in
// a real source hash avoids that without changing the documented shape).
type UniquePos struct {
	Src source.Source
	Off source.Position
}

func (u UniquePos) hash() uint64 {
	return (uint64(u.Off) << 16) + uint64(uint32(u.Src.Hash()))
}

// ArgKind classifies an argument expression's tree shape, per spec §4.7
// step 1.
type ArgKind int

const (
	KindPlainDeferred ArgKind = iota // implicit lambda, type-witnessed call, or anything else
	KindParens
	KindConditional
	KindExplicitLambda
	KindMethodRef
	KindResolvedMethod
	KindResolvedConstructor
)

// ClassifyArgument dispatches on tree tag per spec §4.7 step 1.
func ClassifyArgument(e tree.Expression) ArgKind {
	switch v := e.(type) {
	case *tree.Paren:
		return KindParens
	case *tree.ConditionalExpr:
		return KindConditional
	case *tree.LambdaExpr:
		if v.ExplicitParamTypes {
			return KindExplicitLambda
		}
		return KindPlainDeferred
	case *tree.MethodRefExpr:
		return KindMethodRef
	case *tree.MethodInvocation:
		if len(v.TypeArgs) == 0 {
			return KindResolvedMethod
		}
		return KindPlainDeferred
	case *tree.NewClassExpr:
		if v.Diamond {
			return KindResolvedConstructor
		}
		return KindPlainDeferred
	default:
		return KindPlainDeferred
	}
}

// ResultInfo describes a candidate target an ArgumentType is probed
// against: the expected type plus enough checking-mode context to decide
// strictness (spec §4.7 step 4 / §6 CheckMode supplement).
type ResultInfo struct {
	Target    types.Type
	CheckMode CheckMode
}

// CheckMode is a bitset controlling how strict a compatibility probe is,
// supplementing spec §4.7 with the three-phase applicability distinction
// resolve.go needs (spec §4.8's basic/box/varargs phases map onto these
// bits so overloadCheck can be phase-aware without resolve reaching into
// attr's internals).
type CheckMode uint8

const (
	CheckModeNone CheckMode = 0
	// NoBoxing forbids boxing/unboxing conversions (phase 1: basic).
	NoBoxing CheckMode = 1 << iota
	// NoVarargs forbids treating a trailing array parameter as variable-arity
	// (phases 1 and 2).
	NoVarargs
	// Speculative marks a probe run purely to decide applicability, whose
	// diagnostics (if any) must be suppressed rather than reported.
	Speculative
)

func (m CheckMode) Has(bit CheckMode) bool { return m&bit != 0 }

// overloadResult is the recorded answer to one overloadCheck probe,
// looked up by ResultInfo on repeat probes of the same ArgumentType.
type overloadResult struct {
	ok  bool
	err error
}

// ArgumentType is the cached classification+speculative-attribution
// result for one argument expression, per spec §4.7 steps 1-2.
type ArgumentType struct {
	Pos            UniquePos
	Kind           ArgKind
	Original       tree.Expression
	Speculative    tree.Expression // the tree-copied subtree attribution ran against
	DeferredType   types.Type      // the UnknownType placeholder prior to completion

	// results is keyed by a ResultInfo identity (pointer-ish: we key by
	// the Target pointer plus CheckMode since the same *ResultInfo value
	// is reused across repeat probes in practice).
	results map[resultKey]overloadResult
}

type resultKey struct {
	target types.Type
	mode   CheckMode
}

func newArgumentType(pos UniquePos, kind ArgKind, original tree.Expression) *ArgumentType {
	return &ArgumentType{Pos: pos, Kind: kind, Original: original, results: make(map[resultKey]overloadResult)}
}

func (a *ArgumentType) recordResult(ri ResultInfo, ok bool, err error) {
	a.results[resultKey{ri.Target, ri.CheckMode}] = overloadResult{ok: ok, err: err}
}

func (a *ArgumentType) lookupResult(ri ResultInfo) (overloadResult, bool) {
	r, ok := a.results[resultKey{ri.Target, ri.CheckMode}]
	return r, ok
}
