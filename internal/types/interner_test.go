package types

import "testing"

func TestAtomsPrePopulated(t *testing.T) {
	in := NewInterner()

	if in.Bool() == NoTypeID {
		t.Fatalf("bool atom missing")
	}
	if in.Address() == in.PayableAddress() {
		t.Fatalf("address and address payable must be distinct atoms")
	}
	for bits := uint16(8); bits <= 256; bits += 8 {
		if _, err := in.Integer(bits, true); err != nil {
			t.Fatalf("signed int%d should be pre-populated: %v", bits, err)
		}
		if _, err := in.Integer(bits, false); err != nil {
			t.Fatalf("unsigned uint%d should be pre-populated: %v", bits, err)
		}
	}
	for n := uint16(1); n <= 32; n++ {
		if _, err := in.FixedBytes(n); err != nil {
			t.Fatalf("bytes%d should be pre-populated: %v", n, err)
		}
	}
	if in.Magic(MagicBlock) == in.Magic(MagicMessage) {
		t.Fatalf("magic namespaces must be distinct")
	}
	if in.EmptyTuple() == NoTypeID {
		t.Fatalf("empty tuple atom missing")
	}
	if in.BytesType() == in.BytesMemory() {
		t.Fatalf("bytes storage/memory must be distinct atoms")
	}
	if in.StringType() == in.StringMemory() {
		t.Fatalf("string storage/memory must be distinct atoms")
	}
	if in.InaccessibleDynamic() == NoTypeID {
		t.Fatalf("inaccessible dynamic atom missing")
	}
}

func TestCanonicityAndIdempotence(t *testing.T) {
	in := NewInterner()

	a1, _ := in.Integer(256, false)
	a2, _ := in.Integer(256, false)
	if a1 != a2 {
		t.Fatalf("Integer(256, false) is not idempotent: %d != %d", a1, a2)
	}

	dyn1 := in.DynamicArray(LocationMemory, in.Bool())
	dyn2 := in.DynamicArray(LocationMemory, in.Bool())
	if dyn1 != dyn2 {
		t.Fatalf("DynamicArray canonicalization failed: %d != %d", dyn1, dyn2)
	}

	tuple1 := in.Tuple([]TypeID{in.Bool(), a1})
	tuple2 := in.Tuple([]TypeID{in.Bool(), a2})
	if tuple1 != tuple2 {
		t.Fatalf("tuple canonicalization failed across two calls: %d != %d", tuple1, tuple2)
	}
}

func TestLookupAndMustLookup(t *testing.T) {
	in := NewInterner()

	if _, ok := in.Lookup(TypeID(999999)); ok {
		t.Fatalf("Lookup should report false for an out-of-range TypeID")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustLookup should panic on an invalid TypeID")
		}
	}()
	in.MustLookup(TypeID(999999))
}
