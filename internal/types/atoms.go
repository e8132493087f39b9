package types

// Bool returns the boolean atom.
func (in *Interner) Bool() TypeID { return in.boolID }

// Address returns the non-payable address atom.
func (in *Interner) Address() TypeID { return in.addressID }

// PayableAddress returns the `address payable` atom. It is a distinct
// atom from Address, not a flavor of it: address payable is a subtype
// surface only (spec.md §4.1 normalization rules).
func (in *Interner) PayableAddress() TypeID { return in.payableAddressID }

// Byte returns the fixedBytes(1) atom, i.e. `bytes1`.
func (in *Interner) Byte() TypeID { return in.fixedBytesByLen[1] }

// FixedBytes returns the atom for `bytesN`, 1 <= n <= 32.
func (in *Interner) FixedBytes(n uint16) (TypeID, error) {
	if n < 1 || n > 32 {
		return NoTypeID, &InvalidTypeRequest{Kind: ErrBadFixedBytesLength, Length: n}
	}
	return in.fixedBytesByLen[n], nil
}

// Integer returns the atom for a signed or unsigned integer of the given
// bit width. Width must be a multiple of 8 in [8,256].
func (in *Interner) Integer(bits uint16, signed bool) (TypeID, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return NoTypeID, &InvalidTypeRequest{Kind: ErrBadIntegerWidth, Bits: bits}
	}
	if signed {
		return in.intByWidth[bits/8], nil
	}
	return in.uintByWidth[bits/8], nil
}

// IntegerShape returns (bit-width, signed) for an integer-kind type.
func (in *Interner) IntegerShape(id TypeID) (bits uint16, signed bool) {
	t := in.MustLookup(id)
	return uint16(t.A), t.Flags&flagSigned != 0
}

// FixedBytesLength returns the length of a fixed-bytes-kind type.
func (in *Interner) FixedBytesLength(id TypeID) uint16 {
	return uint16(in.MustLookup(id).A)
}

// IsPayableAddress reports the payable flag of an address-kind type.
func (in *Interner) IsPayableAddress(id TypeID) bool {
	return in.MustLookup(id).Flags&flagPayable != 0
}

// BytesType returns the canonical `bytes storage` singleton.
func (in *Interner) BytesType() TypeID { return in.bytesStorageID }

// BytesMemory returns the canonical `bytes memory` singleton.
func (in *Interner) BytesMemory() TypeID { return in.bytesMemoryID }

// StringType returns the canonical `string storage` singleton.
func (in *Interner) StringType() TypeID { return in.stringStorageID }

// StringMemory returns the canonical `string memory` singleton.
func (in *Interner) StringMemory() TypeID { return in.stringMemoryID }

// InaccessibleDynamic returns the marker type used for dynamic-array
// members that expression evaluation must reject at the type-check stage
// (out of scope here) rather than the interner.
func (in *Interner) InaccessibleDynamic() TypeID { return in.inaccessibleDynamicID }
