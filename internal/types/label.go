package types

import "fmt"

// Render produces the canonical elementary-type-name spelling of id, with
// the default " storage" suffix normalized away. It is the inverse of
// FromElementaryTypeName for every elementary kind; non-elementary kinds
// render a debug-oriented label instead (there is no surface syntax for
// them in this core, since parsing type names is a collaborator concern).
func (in *Interner) Render(id TypeID) string {
	t := in.MustLookup(id)
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindAddress:
		if t.Flags&flagPayable != 0 {
			return "address payable"
		}
		return "address"
	case KindInteger:
		bits, signed := in.IntegerShape(id)
		if signed {
			return fmt.Sprintf("int%d", bits)
		}
		return fmt.Sprintf("uint%d", bits)
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", in.FixedBytesLength(id))
	case KindFixedPoint:
		m, n, signed := in.FixedPointShape(id)
		if signed {
			return fmt.Sprintf("fixed%dx%d", m, n)
		}
		return fmt.Sprintf("ufixed%dx%d", m, n)
	case KindArray:
		return in.renderArray(id, t)
	case KindInaccessibleDynamic:
		return "<inaccessible dynamic type>"
	case KindTuple:
		if id == in.emptyTupleID {
			return "()"
		}
		return fmt.Sprintf("tuple#%d", id)
	default:
		return fmt.Sprintf("%s#%d", t.Kind, id)
	}
}

func (in *Interner) renderArray(id TypeID, t Type) string {
	if _, hasFixedLength := in.ArrayLength(id); !hasFixedLength && t.A == uint32(in.Byte()) {
		name := "bytes"
		if t.Flags&flagIsString != 0 {
			name = "string"
		}
		switch t.location() {
		case LocationMemory:
			return name + " memory"
		case LocationCalldata:
			return name + " calldata"
		default:
			return name
		}
	}
	return fmt.Sprintf("array#%d", id)
}
