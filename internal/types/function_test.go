package types

import (
	"testing"

	"solstice/internal/ast"
	"solstice/internal/astmock"
)

func TestFunctionCanonicityIgnoresParamNames(t *testing.T) {
	in := NewInterner()
	boolT := in.Bool()
	uint256, _ := in.Integer(256, false)

	f1 := in.Function(FunctionSpec{
		Params:     []TypeID{boolT, uint256},
		ParamNames: []string{"a", "b"},
		Kind:       FnInternal,
		Mutability: ast.MutabilityNonPayable,
	})
	f2 := in.Function(FunctionSpec{
		Params:     []TypeID{boolT, uint256},
		ParamNames: []string{"x", "y"},
		Kind:       FnInternal,
		Mutability: ast.MutabilityNonPayable,
	})
	if f1 != f2 {
		t.Fatalf("function types differing only in parameter names should canonicalize to the same handle (spec.md open question resolved: names excluded)")
	}
}

func TestFunctionFromDefinition(t *testing.T) {
	in := NewInterner()
	boolT := in.Bool()

	fn := &astmock.Function{
		IDVal:  ast.DeclID(7),
		Params: []ast.Param{{Name: "ok", Type: uint32(boolT)}},
		Vis:    ast.VisibilityExternal,
		Mutab:  ast.MutabilityView,
	}
	id := in.FunctionFromDefinition(fn)
	info := in.FunctionInfoOf(id)
	if len(info.Params) != 1 || info.Params[0] != boolT {
		t.Fatalf("unexpected params: %v", info.Params)
	}
	if info.Kind != FnExternal || info.Mutability != ast.MutabilityView {
		t.Fatalf("unexpected kind/mutability: %v %v", info.Kind, info.Mutability)
	}
	if info.Decl != ast.DeclID(7) || !info.Bound {
		t.Fatalf("expected function type bound to declaration 7, got %+v", info)
	}

	id2 := in.FunctionFromDefinition(fn)
	if id != id2 {
		t.Fatalf("FunctionFromDefinition should be idempotent for the same declaration")
	}
}

func TestFunctionFromEvent(t *testing.T) {
	in := NewInterner()
	uint256, _ := in.Integer(256, false)
	ev := &astmock.Event{IDVal: ast.DeclID(3), Params: []ast.Param{{Name: "amount", Type: uint32(uint256)}}}
	id := in.FunctionFromEvent(ev)
	if in.KindOf(id) != KindFunction {
		t.Fatalf("expected a function-kind type")
	}
	info := in.FunctionInfoOf(id)
	if info.Kind != FnEvent {
		t.Fatalf("expected FnEvent, got %v", info.Kind)
	}
}
