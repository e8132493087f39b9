package types

import "testing"

func TestResetPreservesAtomsAndInvalidatesCaches(t *testing.T) {
	in := NewInterner()

	boolBefore := in.Bool()
	uint256Before, _ := in.Integer(256, false)
	bytesMemBefore := in.BytesMemory()

	dyn := in.DynamicArray(LocationMemory, in.Bool())
	tup := in.Tuple([]TypeID{in.Bool(), uint256Before})

	in.Reset()

	if in.Bool() != boolBefore {
		t.Fatalf("bool atom identity changed across Reset")
	}
	uint256After, _ := in.Integer(256, false)
	if uint256After != uint256Before {
		t.Fatalf("uint256 atom identity changed across Reset")
	}
	if in.BytesMemory() != bytesMemBefore {
		t.Fatalf("bytes memory atom identity changed across Reset")
	}

	dynAfter := in.DynamicArray(LocationMemory, in.Bool())
	if dynAfter == dyn {
		t.Fatalf("non-atom array handle should be freshly allocated after Reset")
	}
	tupAfter := in.Tuple([]TypeID{in.Bool(), uint256After})
	if tupAfter == tup {
		t.Fatalf("non-atom tuple handle should be freshly allocated after Reset")
	}
}

func TestResetThenBytesOrStringArrayStillReturnsAtom(t *testing.T) {
	in := NewInterner()
	before := in.BytesType()
	in.Reset()
	after := in.BytesOrStringArray(LocationStorage, false)
	if after != before {
		t.Fatalf("BytesOrStringArray(storage, false) should still resolve to the bytes atom after Reset: %d != %d", before, after)
	}
}
