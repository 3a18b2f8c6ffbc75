package types_test

import (
	"testing"

	"github.com/funvibe/javac-core/internal/types"
)

type fakeClassSymbol struct {
	name string
}

func (f *fakeClassSymbol) SymbolName() string { return f.name }
func (f *fakeClassSymbol) Complete() error    { return nil }

func completedClass(name string, super types.Type, ifaces []types.Type, typeArgs ...types.Type) *types.ClassType {
	ct := types.NewClassType(&fakeClassSymbol{name: name}, typeArgs...)
	ct.SetSupertype(super)
	ct.SetInterfaces(ifaces)
	ct.MarkCompleted()
	return ct
}

func TestErasureIdempotent(t *testing.T) {
	object := completedClass("Object", nil, nil)
	tv := types.NewTypeVar("T", object)
	list := completedClass("List", object, nil, tv)

	once := types.Erasure(list)
	twice := types.Erasure(once)
	if !types.IsSameType(once, twice) {
		t.Fatalf("erasure not idempotent: once=%s twice=%s", once, twice)
	}
}

func TestErasureStripsTypeArgsAndTypeVar(t *testing.T) {
	object := completedClass("Object", nil, nil)
	tv := types.NewTypeVar("T", object)
	list := completedClass("List", object, nil, tv)

	erased := types.Erasure(list).(*types.ClassType)
	if len(erased.TypeArgs) != 0 {
		t.Fatalf("expected erased class to have no type args, got %v", erased.TypeArgs)
	}

	erasedVar := types.Erasure(tv)
	if !types.IsSameType(erasedVar, object) {
		t.Fatalf("expected type var to erase to its bound, got %s", erasedVar)
	}
}

func TestCaptureNoOpWithoutWildcards(t *testing.T) {
	object := completedClass("Object", nil, nil)
	str := completedClass("String", object, nil)
	list := completedClass("List", object, nil, str)

	captured := types.Capture(list, []types.Type{object})
	if captured != types.Type(list) {
		t.Fatalf("expected Capture to be a no-op (identity) on a type with no wildcards")
	}
}

func TestCaptureOfWildcardProducesDistinctCapturedVar(t *testing.T) {
	object := completedClass("Object", nil, nil)
	str := completedClass("String", object, nil)
	wc := types.NewWildcard(types.Extends, str)
	list := completedClass("List", object, nil, wc)

	captured1 := types.Capture(list, []types.Type{object}).(*types.ClassType)
	captured2 := types.Capture(list, []types.Type{object}).(*types.ClassType)

	cv1, ok := captured1.TypeArgs[0].(*types.CapturedType)
	if !ok {
		t.Fatalf("expected capture to produce a CapturedType, got %T", captured1.TypeArgs[0])
	}
	cv2 := captured2.TypeArgs[0].(*types.CapturedType)
	if cv1 == cv2 {
		t.Fatalf("expected two independent Capture calls to mint distinct captured identities")
	}
	if !types.IsSubtype(cv1.UpperBound, str) || !types.IsSubtype(str, cv1.UpperBound) {
		t.Fatalf("expected captured upper bound to be the wildcard's inner type")
	}
}

func TestUndetVarAddBoundDedups(t *testing.T) {
	object := completedClass("Object", nil, nil)
	str := completedClass("String", object, nil)
	tv := types.NewTypeVar("T", object)
	uv := types.NewUndetVar(tv)

	uv.AddBound(types.Upper, str)
	uv.AddBound(types.Upper, str)
	uv.AddBound(types.Upper, types.NewClassType(str.Symbol))

	if len(uv.Bounds(types.Upper)) != 1 {
		t.Fatalf("expected duplicate structurally-equal bounds to collapse to one, got %d", len(uv.Bounds(types.Upper)))
	}
}

func TestUndetVarCapturedStateIsAbsorbing(t *testing.T) {
	object := completedClass("Object", nil, nil)
	tv := types.NewTypeVar("T", object)
	uv := types.NewUndetVar(tv)

	uv.TransitionTo(types.StateThrows)
	if uv.State != types.StateThrows {
		t.Fatalf("expected NORMAL -> THROWS to succeed")
	}
	uv.TransitionTo(types.StateCaptured)
	if uv.State != types.StateCaptured {
		t.Fatalf("expected transition to CAPTURED to succeed")
	}
	uv.TransitionTo(types.StateNormal)
	if uv.State != types.StateCaptured {
		t.Fatalf("expected CAPTURED to be absorbing, got %v", uv.State)
	}
	uv.TransitionTo(types.StateThrows)
	if uv.State != types.StateCaptured {
		t.Fatalf("expected CAPTURED to be absorbing against THROWS too, got %v", uv.State)
	}
}

func TestWithMetadataIsTransparentToIsSameType(t *testing.T) {
	object := completedClass("Object", nil, nil)
	annotated := types.WithMetadata(object, "nullability", "NonNull")

	if !types.IsSameType(object, annotated) {
		t.Fatalf("expected metadata to not affect IsSameType")
	}
	if annotated.Meta().IsEmpty() {
		t.Fatalf("expected annotated type to carry the metadata entry")
	}
	v, ok := annotated.Meta().Get("nullability")
	if !ok || v != "NonNull" {
		t.Fatalf("expected to read back the nullability metadata entry, got %v, %v", v, ok)
	}

	stripped := types.StripMetadata(annotated)
	if !stripped.Meta().IsEmpty() {
		t.Fatalf("expected StripMetadata to clear metadata")
	}
}

func TestStripMetadataReusesIdentityWhenAlreadyEmpty(t *testing.T) {
	object := completedClass("Object", nil, nil)
	if types.StripMetadata(object) != types.Type(object) {
		t.Fatalf("expected StripMetadata to return the same value when there is no metadata to strip")
	}
}

func TestIsSubtypeClassHierarchy(t *testing.T) {
	object := completedClass("Object", nil, nil)
	throwable := completedClass("Throwable", object, nil)
	exception := completedClass("Exception", throwable, nil)

	if !types.IsSubtype(exception, throwable) {
		t.Fatalf("expected Exception <: Throwable")
	}
	if !types.IsSubtype(exception, object) {
		t.Fatalf("expected Exception <: Object (transitively)")
	}
	if types.IsSubtype(throwable, exception) {
		t.Fatalf("did not expect Throwable <: Exception")
	}
}

func TestIsSubtypeBottomIsUniversal(t *testing.T) {
	object := completedClass("Object", nil, nil)
	bottom := &types.BottomType{}
	if !types.IsSubtype(bottom, object) {
		t.Fatalf("expected the null type to be a subtype of every reference type")
	}
	if types.IsSubtype(bottom, types.NewPrimitive(types.Int)) {
		t.Fatalf("did not expect the null type to be a subtype of a primitive type")
	}
}

func TestWidensTransitiveChain(t *testing.T) {
	if !types.Widens(types.Byte, types.Double) {
		t.Fatalf("expected byte to widen to double transitively")
	}
	if types.Widens(types.Double, types.Byte) {
		t.Fatalf("did not expect double to widen to byte")
	}
	if !types.Widens(types.Int, types.Int) {
		t.Fatalf("expected a type to widen to itself")
	}
}

func TestArraySubtypingIsCovariantForReferenceElements(t *testing.T) {
	object := completedClass("Object", nil, nil)
	str := completedClass("String", object, nil)

	strArray := types.NewArrayType(str)
	objArray := types.NewArrayType(object)
	if !types.IsSubtype(strArray, objArray) {
		t.Fatalf("expected String[] <: Object[]")
	}

	intArray := types.NewArrayType(types.NewPrimitive(types.Int))
	longArray := types.NewArrayType(types.NewPrimitive(types.Long))
	if types.IsSubtype(intArray, longArray) {
		t.Fatalf("did not expect int[] <: long[] (array element widening is not covariant for primitives)")
	}
}
