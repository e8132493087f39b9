package globals

import (
	"testing"

	"solstice/internal/ast"
	"solstice/internal/astmock"
	"solstice/internal/types"
)

func TestBuiltinsPresentExactlyPerTable(t *testing.T) {
	in := types.NewInterner()
	ctx := NewContext(in)

	wantNames := []string{
		"abi", "block", "msg", "tx", "now", "addmod", "mulmod", "assert",
		"require", "require", "revert", "revert", "blockhash", "gasleft",
		"keccak256", "sha3", "sha256", "ripemd160", "ecrecover",
		"selfdestruct", "suicide",
		"log0", "log1", "log2", "log3", "log4",
		"type",
	}

	decls := ctx.Declarations()
	if len(decls) != len(wantNames) {
		t.Fatalf("expected %d declarations, got %d: %v", len(wantNames), len(decls), decls)
	}
	for i, want := range wantNames {
		if decls[i].Name != want {
			t.Fatalf("declaration %d: want name %q, got %q", i, want, decls[i].Name)
		}
	}
}

func TestAliasesShareOneInternedType(t *testing.T) {
	in := types.NewInterner()
	ctx := NewContext(in)

	var keccak, sha3, selfdestruct, suicide types.TypeID
	for _, d := range ctx.Declarations() {
		switch d.Name {
		case "keccak256":
			keccak = d.Type
		case "sha3":
			sha3 = d.Type
		case "selfdestruct":
			selfdestruct = d.Type
		case "suicide":
			suicide = d.Type
		}
	}
	if keccak != sha3 {
		t.Fatalf("sha3 and keccak256 must share one interned function type")
	}
	if selfdestruct != suicide {
		t.Fatalf("suicide and selfdestruct must share one interned function type")
	}
}

func TestCurrentThisAndSuperMemoization(t *testing.T) {
	in := types.NewInterner()
	ctx := NewContext(in)
	c := &astmock.Contract{IDVal: ast.DeclID(5), NameVal: "Token"}
	ctx.SetCurrentContract(c)

	this1 := ctx.CurrentThis()
	this2 := ctx.CurrentThis()
	if this1 != this2 {
		t.Fatalf("CurrentThis should return the same pointer across calls for the same contract")
	}
	if this1.Type != in.Contract(c, false) {
		t.Fatalf("CurrentThis type should equal contract(C, isSuper=false)")
	}

	super := ctx.CurrentSuper()
	if super.Type != in.Contract(c, true) {
		t.Fatalf("CurrentSuper type should equal contract(C, isSuper=true)")
	}
}

func TestLookupResolvesByInternedName(t *testing.T) {
	in := types.NewInterner()
	ctx := NewContext(in)

	d, ok := ctx.Lookup("keccak256")
	if !ok {
		t.Fatalf("expected keccak256 to be found")
	}
	if d.NameID != ctx.Names().Intern("keccak256") {
		t.Fatalf("Lookup result's NameID should match the interner's ID for the same text")
	}

	if _, ok := ctx.Lookup("does-not-exist"); ok {
		t.Fatalf("expected an unknown name to miss")
	}
}

func TestDuplicateNamesShareOneStringID(t *testing.T) {
	in := types.NewInterner()
	ctx := NewContext(in)

	var requireIDs []uint32
	for _, d := range ctx.Declarations() {
		if d.Name == "require" {
			requireIDs = append(requireIDs, uint32(d.NameID))
		}
	}
	if len(requireIDs) != 2 {
		t.Fatalf("expected 2 require overloads, got %d", len(requireIDs))
	}
	if requireIDs[0] != requireIDs[1] {
		t.Fatalf("require overloads should intern to the same StringID")
	}
}

func TestCurrentThisWithoutActiveContractPanics(t *testing.T) {
	ctx := NewContext(types.NewInterner())
	defer func() {
		if recover() == nil {
			t.Fatalf("CurrentThis with no active contract should panic")
		}
	}()
	ctx.CurrentThis()
}

func TestCurrentThisFreshAfterNewContextPostReset(t *testing.T) {
	in := types.NewInterner()
	ctx1 := NewContext(in)
	c := &astmock.Contract{IDVal: ast.DeclID(1), NameVal: "Token"}
	ctx1.SetCurrentContract(c)
	before := ctx1.CurrentThis()

	in.Reset()
	ctx2 := NewContext(in) // the Global Context must be discarded before/around a reset
	ctx2.SetCurrentContract(c)
	after := ctx2.CurrentThis()

	if before == after {
		t.Fatalf("a fresh Context after Reset should allocate a fresh *Declaration")
	}
}
