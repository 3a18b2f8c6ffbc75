// Package symtab implements the Symbol model from spec.md §4.3: every
// declared name (class, method, field, parameter, local, package, module)
// is represented by a Symbol carrying a Kind, owner back-reference, a
// completion thunk, and sticky completion state.
//
// Shape grounded on the teacher's internal/symbols.Symbol struct (a flat
// field bag: Name/Type/Kind/IsPending/...); this package generalizes
// IsPending into the full call-once-then-sticky Completer protocol spec
// §4.3 requires, since funxy symbols are never separately completed.
package symtab

import (
	"fmt"

	"github.com/funvibe/javac-core/internal/name"
	"github.com/funvibe/javac-core/internal/types"
)

// Kind identifies what sort of declaration a Symbol names.
type Kind int

const (
	KindPackage Kind = iota
	KindModule
	KindClass
	KindInterface
	KindMethod
	KindField
	KindParameter
	KindLocal
	KindTypeParameter
	KindError // sticky kind assigned once a symbol's completion fails
)

func (k Kind) String() string {
	switch k {
	case KindPackage:
		return "PACKAGE"
	case KindModule:
		return "MODULE"
	case KindClass:
		return "CLASS"
	case KindInterface:
		return "INTERFACE"
	case KindMethod:
		return "METHOD"
	case KindField:
		return "FIELD"
	case KindParameter:
		return "PARAMETER"
	case KindLocal:
		return "LOCAL"
	case KindTypeParameter:
		return "TYPE_PARAMETER"
	case KindError:
		return "ERROR"
	default:
		return "?"
	}
}

// Flags mirrors the small set of JLS modifier bits spec §4.3 needs for
// resolution/lint decisions (visibility, static-ness, finality); other
// JLS modifiers have no bit here.
type Flags uint32

const (
	FlagPublic Flags = 1 << iota
	FlagPrivate
	FlagProtected
	FlagStatic
	FlagFinal
	FlagAbstract
	FlagSynthetic
	FlagDeprecated
)

// completionState is the call-once-then-sticky state machine spec §4.3
// requires: a symbol starts Unstarted, a first Complete() call transitions
// it through Completing (to detect illegal re-entrant completion) to
// either Done or Failed, and every subsequent Complete() call is a no-op
// returning the first outcome.
type completionState int

const (
	unstarted completionState = iota
	completing
	done
	failed
)

// Completer performs the (potentially expensive, potentially
// cyclic-detecting) work of filling in a Symbol's Type/owner/members the
// first time it is needed. Concrete Completers come from the caller; this
// package only enforces the call-once contract.
type Completer interface {
	Complete(s *Symbol) error
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc func(s *Symbol) error

func (f CompleterFunc) Complete(s *Symbol) error { return f(s) }

// CompletionError is returned by every subsequent Complete() call once a
// symbol's first completion attempt has failed, per spec §4.3's "sticky
// failure, future completion attempts must return the same failure
// without re-running the completer" invariant.
type CompletionError struct {
	Symbol *Symbol
	Cause  error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("cannot complete symbol %q: %v", e.Symbol.Name.String(), e.Cause)
}

func (e *CompletionError) Unwrap() error { return e.Cause }

// ReentrantCompletionError is returned when Complete() is called again
// while the first call is still running on the same goroutine (a cyclic
// completion dependency slipped through internal/modgraph's cycle check).
type ReentrantCompletionError struct {
	Symbol *Symbol
}

func (e *ReentrantCompletionError) Error() string {
	return fmt.Sprintf("symbol %q: completion cycle detected", e.Symbol.Name.String())
}

// Symbol is the single struct backing every declared name, per spec §4.3.
type Symbol struct {
	Name  name.Name
	Kind  Kind
	Flags Flags
	Owner *Symbol
	Type  types.Type

	// Members is populated for KindClass/KindInterface/KindPackage/
	// KindModule symbols: a nested scope of member symbols. Left nil for
	// leaf symbols (fields, locals, parameters).
	Members MemberScope

	completer Completer
	state     completionState
	err       error
}

// MemberScope is the minimal view symtab needs into internal/scope's
// Scope type, kept as an interface here (rather than importing
// internal/scope directly) to avoid symtab depending downward on a
// package that itself may want to hold Symbols — the same
// consumer-side-interface trick used for types.ClassSymbol.
type MemberScope interface {
	Lookup(n name.Name) (*Symbol, bool)
	Enter(s *Symbol)
}

// NewSymbol constructs an already-complete symbol (used for built-ins and
// for symbols whose Type is known up front, e.g. parameters and locals).
func NewSymbol(n name.Name, kind Kind, owner *Symbol, typ types.Type) *Symbol {
	return &Symbol{Name: n, Kind: kind, Owner: owner, Type: typ, state: done}
}

// NewDeferredSymbol constructs a symbol whose Type/Members are filled in
// lazily the first time Complete is called.
func NewDeferredSymbol(n name.Name, kind Kind, owner *Symbol, completer Completer) *Symbol {
	return &Symbol{Name: n, Kind: kind, Owner: owner, completer: completer, state: unstarted}
}

// Complete runs this symbol's completer exactly once. Every call after
// the first returns the original outcome (nil, or the original sticky
// error) without re-running the completer, per spec §4.3.
func (s *Symbol) Complete() error {
	switch s.state {
	case done:
		return nil
	case failed:
		return &CompletionError{Symbol: s, Cause: s.err}
	case completing:
		return &ReentrantCompletionError{Symbol: s}
	}

	s.state = completing
	if s.completer == nil {
		s.state = done
		return nil
	}
	err := s.completer.Complete(s)
	if err != nil {
		s.state = failed
		s.err = err
		s.Kind = KindError
		return &CompletionError{Symbol: s, Cause: err}
	}
	s.state = done
	return nil
}

// IsCompleted reports whether Complete has run to a final (successful or
// failed) outcome.
func (s *Symbol) IsCompleted() bool { return s.state == done || s.state == failed }

// SymbolName implements types.ClassSymbol, letting *Symbol stand in for a
// ClassType's back-reference without internal/types importing this
// package (see internal/types.ClassSymbol's doc comment).
func (s *Symbol) SymbolName() string { return s.Name.String() }

func (s *Symbol) HasFlag(f Flags) bool { return s.Flags&f != 0 }

func (s *Symbol) IsStatic() bool { return s.HasFlag(FlagStatic) }

func (s *Symbol) String() string {
	return fmt.Sprintf("%s %s", s.Kind, s.Name.String())
}
