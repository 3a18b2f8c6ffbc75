package resolve_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/attr"
	"github.com/funvibe/javac-core/internal/resolve"
	"github.com/funvibe/javac-core/internal/tree"
	"github.com/funvibe/javac-core/internal/types"
)

func intResultCompleter(expr tree.Expression) (types.Type, error) {
	return types.NewPrimitive(types.Int), nil
}

func TestFindApplicablePrefersEarlierPhase(t *testing.T) {
	a := attr.NewAttributor(intResultCompleter, nil)
	arg := a.ClassifyAndSpeculate(attr.UniquePos{Off: 1}, &tree.MethodInvocation{})
	arg.DeferredType = types.NewPrimitive(types.Int)

	exact := resolve.Candidate{Signature: types.NewMethodType([]types.Type{types.NewPrimitive(types.Int)}, &types.VoidType{}, nil)}
	widening := resolve.Candidate{Signature: types.NewMethodType([]types.Type{types.NewPrimitive(types.Long)}, &types.VoidType{}, nil)}

	applicable, phase := resolve.FindApplicable(a, []resolve.Candidate{exact, widening}, []*attr.ArgumentType{arg})
	if phase != resolve.PhaseBasic {
		t.Fatalf("expected both candidates to be applicable in PhaseBasic (widening conversions are allowed there), got %v", phase)
	}
	if len(applicable) != 2 {
		t.Fatalf("expected both exact and widening candidates to be applicable, got %d", len(applicable))
	}
}

func TestMostSpecificPicksNarrowerParameter(t *testing.T) {
	exact := resolve.Candidate{Signature: types.NewMethodType([]types.Type{types.NewPrimitive(types.Int)}, &types.VoidType{}, nil)}
	widening := resolve.Candidate{Signature: types.NewMethodType([]types.Type{types.NewPrimitive(types.Long)}, &types.VoidType{}, nil)}

	best, ok := resolve.MostSpecific([]resolve.Candidate{exact, widening})
	if !ok {
		t.Fatalf("expected a single most-specific winner")
	}
	if best.Signature.ParamTypes[0].(*types.PrimitiveType).PrimTag() != types.Int {
		t.Fatalf("expected the int-parameter overload to be more specific than the long-parameter one")
	}
}

func TestMostSpecificAmbiguousReturnsFalse(t *testing.T) {
	a := resolve.Candidate{Signature: types.NewMethodType([]types.Type{types.NewPrimitive(types.Int)}, &types.VoidType{}, nil)}
	b := resolve.Candidate{Signature: types.NewMethodType([]types.Type{types.NewPrimitive(types.Boolean)}, &types.VoidType{}, nil)}

	_, ok := resolve.MostSpecific([]resolve.Candidate{a, b})
	if ok {
		t.Fatalf("expected neither incomparable overload to be more specific, i.e. ambiguous")
	}
}
