package types

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestFixedArrayCanonicity(t *testing.T) {
	in := NewInterner()
	elem := in.Bool()
	len5 := uint256.NewInt(5)

	a1 := in.Array(LocationMemory, elem, len5)
	a2 := in.Array(LocationMemory, elem, uint256.NewInt(5))
	if a1 != a2 {
		t.Fatalf("fixed arrays with equal length should canonicalize: %d != %d", a1, a2)
	}

	a3 := in.Array(LocationMemory, elem, uint256.NewInt(6))
	if a1 == a3 {
		t.Fatalf("fixed arrays with different lengths must not canonicalize")
	}

	length, ok := in.ArrayLength(a1)
	if !ok || length.Cmp(len5) != 0 {
		t.Fatalf("ArrayLength returned wrong result: %v, %v", length, ok)
	}
}

func TestDynamicArrayIsDistinctFromFixed(t *testing.T) {
	in := NewInterner()
	elem := in.Bool()

	dyn := in.DynamicArray(LocationMemory, elem)
	fixed := in.Array(LocationMemory, elem, uint256.NewInt(0))
	if dyn == fixed {
		t.Fatalf("a dynamic array and a fixed array of length 0 must be distinct")
	}
	if _, ok := in.ArrayLength(dyn); ok {
		t.Fatalf("ArrayLength should report false for a dynamic array")
	}
}

func TestWithLocationOverride(t *testing.T) {
	in := NewInterner()
	et, _ := in.Integer(8, false)

	arr := in.DynamicArray(LocationStorage, et)
	moved := in.WithLocation(arr, LocationMemory, true)
	movedAgain := in.WithLocation(moved, LocationCalldata, true)
	direct := in.WithLocation(arr, LocationCalldata, true)
	if movedAgain != direct {
		t.Fatalf("withLocation(withLocation(t,L1,p),L2,p) must equal withLocation(t,L2,p)")
	}
}

func TestWithLocationOnNonReferenceIsIdentity(t *testing.T) {
	in := NewInterner()
	b := in.Bool()
	if in.WithLocation(b, LocationMemory, true) != b {
		t.Fatalf("withLocation on a non-reference type must return it unchanged")
	}
}

func TestBytesOrStringArrayFlavors(t *testing.T) {
	in := NewInterner()
	bytesArr := in.BytesOrStringArray(LocationStorage, false)
	stringArr := in.BytesOrStringArray(LocationStorage, true)
	if bytesArr == stringArr {
		t.Fatalf("bytes and string flavors must be distinct even at the same location")
	}
	if bytesArr != in.BytesType() {
		t.Fatalf("BytesOrStringArray(storage, false) should equal the BytesType atom")
	}
	if stringArr != in.StringType() {
		t.Fatalf("BytesOrStringArray(storage, true) should equal the StringType atom")
	}
}
