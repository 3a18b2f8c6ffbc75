package symtab_test

import (
	"errors"
	"testing"

	"github.com/funvibe/javac-core/internal/name"
	"github.com/funvibe/javac-core/internal/symtab"
	"github.com/funvibe/javac-core/internal/types"
)

func TestCompleteRunsCompleterExactlyOnce(t *testing.T) {
	tbl := name.NewTable()
	n := tbl.Intern("Foo")

	calls := 0
	sym := symtab.NewDeferredSymbol(n, symtab.KindClass, nil, symtab.CompleterFunc(func(s *symtab.Symbol) error {
		calls++
		s.Type = types.NewClassType(s)
		return nil
	}))

	if err := sym.Complete(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sym.Complete(); err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected completer to run exactly once, ran %d times", calls)
	}
	if !sym.IsCompleted() {
		t.Fatalf("expected symbol to be completed")
	}
}

func TestCompletionFailureIsSticky(t *testing.T) {
	tbl := name.NewTable()
	n := tbl.Intern("Bad")

	cause := errors.New("cyclic supertype")
	calls := 0
	sym := symtab.NewDeferredSymbol(n, symtab.KindClass, nil, symtab.CompleterFunc(func(s *symtab.Symbol) error {
		calls++
		return cause
	}))

	err1 := sym.Complete()
	if err1 == nil {
		t.Fatalf("expected an error")
	}
	err2 := sym.Complete()
	if err2 == nil {
		t.Fatalf("expected the sticky error on the second call too")
	}
	if calls != 1 {
		t.Fatalf("expected completer to run exactly once even though it failed, ran %d times", calls)
	}
	if sym.Kind != symtab.KindError {
		t.Fatalf("expected a failed symbol's Kind to become KindError, got %v", sym.Kind)
	}
	var completionErr *symtab.CompletionError
	if !errors.As(err2, &completionErr) {
		t.Fatalf("expected a *CompletionError, got %T", err2)
	}
	if !errors.Is(err2, cause) {
		t.Fatalf("expected errors.Is to unwrap to the original cause")
	}
}

func TestReentrantCompletionIsDetected(t *testing.T) {
	tbl := name.NewTable()
	n := tbl.Intern("Cyclic")

	var sym *symtab.Symbol
	sym = symtab.NewDeferredSymbol(n, symtab.KindClass, nil, symtab.CompleterFunc(func(s *symtab.Symbol) error {
		return sym.Complete()
	}))

	err := sym.Complete()
	if err == nil {
		t.Fatalf("expected reentrant completion to be reported")
	}
}

func TestSymbolImplementsClassSymbolInterface(t *testing.T) {
	tbl := name.NewTable()
	n := tbl.Intern("Impl")
	sym := symtab.NewSymbol(n, symtab.KindClass, nil, nil)

	var _ types.ClassSymbol = sym
	if sym.SymbolName() != "Impl" {
		t.Fatalf("expected SymbolName to delegate to the interned name")
	}
}
