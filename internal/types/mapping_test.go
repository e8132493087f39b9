package types

import "testing"

func TestMappingBadKeyRejected(t *testing.T) {
	in := NewInterner()
	str := in.StringType()
	uint8T, _ := in.Integer(8, false)

	if _, err := in.Mapping(str, uint8T); err == nil {
		t.Fatalf("mapping with a dynamic key should fail")
	} else if itr, ok := err.(*InvalidTypeRequest); !ok || itr.Kind != ErrBadMappingKey {
		t.Fatalf("expected ErrBadMappingKey, got %v", err)
	}
}

func TestMappingCanonicity(t *testing.T) {
	in := NewInterner()
	uint256, _ := in.Integer(256, false)
	boolT := in.Bool()

	m1, err := in.Mapping(uint256, boolT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, err := in.Mapping(uint256, boolT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m1 != m2 {
		t.Fatalf("mapping(uint256, bool) is not canonical across two calls")
	}
	if in.MappingKey(m1) != uint256 || in.MappingValue(m1) != boolT {
		t.Fatalf("mapping accessors returned wrong components")
	}
}
