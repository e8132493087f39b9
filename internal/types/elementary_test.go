package types

import "testing"

func TestFromElementaryTypeNameUintDefaultsTo256(t *testing.T) {
	in := NewInterner()
	uint, err := in.FromElementaryTypeName("uint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uint256, _ := in.Integer(256, false)
	if uint != uint256 {
		t.Fatalf("uint should default to uint256")
	}
	uintExplicit, err := in.FromElementaryTypeName("uint256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uint != uintExplicit {
		t.Fatalf("uint and uint256 should resolve to the same handle")
	}
}

func TestFromElementaryTypeNameBytesLocationDefaults(t *testing.T) {
	in := NewInterner()

	bytesMem, err := in.FromElementaryTypeName("bytes memory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytesMem != in.BytesMemory() {
		t.Fatalf("'bytes memory' should resolve to the BytesMemory singleton")
	}

	bytesDefault, err := in.FromElementaryTypeName("bytes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytesDefault != in.BytesType() {
		t.Fatalf("'bytes' with no suffix should default to storage")
	}
}

func TestFromElementaryTypeNameRoundTrip(t *testing.T) {
	in := NewInterner()
	cases := []string{"bool", "address", "address payable", "int8", "uint256", "bytes1", "bytes32", "string", "bytes"}
	for _, s := range cases {
		id, err := in.FromElementaryTypeName(s)
		if err != nil {
			t.Fatalf("FromElementaryTypeName(%q) failed: %v", s, err)
		}
		if got := in.Render(id); got != s {
			t.Fatalf("round trip failed for %q: rendered %q", s, got)
		}
	}
}

func TestFromElementaryTypeNameFixedPointDefault(t *testing.T) {
	in := NewInterner()
	id, err := in.FromElementaryTypeName("fixed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, n, signed := in.FixedPointShape(id)
	if m != 128 || n != 18 || !signed {
		t.Fatalf("fixed should default to fixed128x18, got (%d,%d,%t)", m, n, signed)
	}
}

func TestFromElementaryTypeNameBadFixedBytesLength(t *testing.T) {
	in := NewInterner()
	_, err := in.FromElementaryTypeName("bytes33")
	if err == nil {
		t.Fatalf("bytes33 should fail")
	}
	itr, ok := err.(*InvalidTypeRequest)
	if !ok || itr.Kind != ErrBadFixedBytesLength {
		t.Fatalf("expected ErrBadFixedBytesLength, got %v", err)
	}
}

func TestFromElementaryTypeNameUnknown(t *testing.T) {
	in := NewInterner()
	_, err := in.FromElementaryTypeName("frobnicate")
	if err == nil {
		t.Fatalf("expected an error for an unknown elementary type name")
	}
	itr, ok := err.(*InvalidTypeRequest)
	if !ok || itr.Kind != ErrUnknownElementaryType {
		t.Fatalf("expected ErrUnknownElementaryType, got %v", err)
	}
}

func TestFromElementaryTypeNameBadLocationSuffix(t *testing.T) {
	in := NewInterner()
	_, err := in.FromElementaryTypeName("uint256 heap")
	if err == nil {
		t.Fatalf("expected an error for an unrecognized location suffix")
	}
	itr, ok := err.(*InvalidTypeRequest)
	if !ok || itr.Kind != ErrInvalidLocationSuffix {
		t.Fatalf("expected ErrInvalidLocationSuffix, got %v", err)
	}
}
