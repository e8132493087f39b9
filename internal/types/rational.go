package types

import "math/big"

// RationalNumber interns the type of a rational-number literal. value is
// kept in exact form via math/big.Rat (no pack library offers an unbounded
// exact rational; see DESIGN.md). compatibleBytes is the fixed-bytes type
// the literal can additionally be interpreted as (e.g. a literal that also
// reads as a valid bytes4), or NoTypeID when none applies.
func (in *Interner) RationalNumber(value *big.Rat, compatibleBytes TypeID) TypeID {
	key := value.RatString()
	if compatibleBytes != NoTypeID {
		key += "|" + compatibleBytes.String()
	}
	if id, ok := in.rationalCache[key]; ok {
		return id
	}
	payload := in.pushRational(RationalInfo{Value: value.RatString(), CompatibleBytes: compatibleBytes})
	id := in.internRaw(Type{Kind: KindRationalNumber, Payload: payload})
	in.rationalCache[key] = id
	return id
}

// RationalValue returns the exact value of a rational-number type.
func (in *Interner) RationalValue(id TypeID) *big.Rat {
	info := in.rationals[in.MustLookup(id).Payload]
	v, ok := new(big.Rat).SetString(info.Value)
	if !ok {
		panic("types: corrupt rational literal in side table: " + info.Value)
	}
	return v
}

// RationalCompatibleBytes returns the compatible fixed-bytes type of a
// rational-number type, or NoTypeID if none applies.
func (in *Interner) RationalCompatibleBytes(id TypeID) TypeID {
	return in.rationals[in.MustLookup(id).Payload].CompatibleBytes
}
