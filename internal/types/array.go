package types

import (
	"github.com/holiman/uint256"
)

// arrayKey is the canonicalization key for KindArray, matching the tuple
// spec.md §4.1 names: (location, element, length-tag, is-string, is-pointer).
// Length is folded to its decimal string ("" for dynamic) so the key stays
// a comparable, hashable Go value despite lengths ranging up to 2^256-1.
type arrayKey struct {
	Location  DataLocation
	Element   TypeID
	Length    string
	IsString  bool
	IsPointer bool
}

func lengthTag(length *uint256.Int) string {
	if length == nil {
		return ""
	}
	return length.Dec()
}

// Array interns a fixed-size array at data location loc holding length
// elements of type element. Use DynamicArray for an unbounded array (a nil
// length here interns the same dynamic array).
func (in *Interner) Array(loc DataLocation, element TypeID, length *uint256.Int) TypeID {
	return in.internArray(loc, element, length, false, false)
}

// DynamicArray interns a dynamically sized array of element.
func (in *Interner) DynamicArray(loc DataLocation, element TypeID) TypeID {
	return in.internArray(loc, element, nil, false, false)
}

// BytesOrStringArray is the convenience form of array(location, isString?):
// a dynamic array of bytes, flavored as `bytes` or `string`.
func (in *Interner) BytesOrStringArray(loc DataLocation, isString bool) TypeID {
	return in.internArray(loc, in.Byte(), nil, isString, false)
}

func (in *Interner) internArray(loc DataLocation, element TypeID, length *uint256.Int, isString, isPointer bool) TypeID {
	key := arrayKey{Location: loc, Element: element, Length: lengthTag(length), IsString: isString, IsPointer: isPointer}
	if id, ok := in.arrayCache[key]; ok {
		return id
	}
	var lenPtr *string
	if length != nil {
		s := length.Dec()
		lenPtr = &s
	}
	payload := in.pushArrayInfo(ArrayInfo{Length: lenPtr})
	flags := withLocationFlag(0, loc)
	if isString {
		flags |= flagIsString
	}
	if isPointer {
		flags |= flagIsPointer
	}
	id := in.internRaw(Type{Kind: KindArray, Flags: flags, A: uint32(element), Payload: payload})
	in.arrayCache[key] = id
	return id
}

// ArrayElement returns the element type of an array-kind type.
func (in *Interner) ArrayElement(id TypeID) TypeID {
	return TypeID(in.MustLookup(id).A)
}

// ArrayLocation returns the data location of an array-kind type.
func (in *Interner) ArrayLocation(id TypeID) DataLocation {
	return in.MustLookup(id).location()
}

// ArrayLength returns the fixed length of an array-kind type and true, or
// (nil, false) when the array is dynamically sized.
func (in *Interner) ArrayLength(id TypeID) (*uint256.Int, bool) {
	t := in.MustLookup(id)
	info := in.arrayInfos[t.Payload]
	if info.Length == nil {
		return nil, false
	}
	n, err := uint256.FromDecimal(*info.Length)
	if err != nil {
		panic("types: corrupt array length in side table: " + err.Error())
	}
	return n, true
}

// IsStringFlavor reports whether an array-kind type is a `string` (as
// opposed to `bytes`) flavored dynamic byte array.
func (in *Interner) IsStringFlavor(id TypeID) bool {
	return in.MustLookup(id).Flags&flagIsString != 0
}

// IsPointer reports the pointer-flavor bit of an array-kind type.
func (in *Interner) IsPointer(id TypeID) bool {
	return in.MustLookup(id).Flags&flagIsPointer != 0
}

// WithLocation interns a re-located variant of a reference type (array or
// struct). Non-reference types are returned unchanged, per spec: relocating
// a value type is a no-op, not an error.
func (in *Interner) WithLocation(t TypeID, loc DataLocation, isPointer bool) TypeID {
	tt := in.MustLookup(t)
	switch tt.Kind {
	case KindArray:
		length, hasLength := in.ArrayLength(t)
		if !hasLength {
			length = nil
		}
		return in.internArray(loc, TypeID(tt.A), length, tt.Flags&flagIsString != 0, isPointer)
	case KindStruct:
		info := in.nominals[tt.Payload]
		return in.internStruct(info.Decl, loc)
	default:
		return t
	}
}

// WithLocationIfReference is a convenience wrapper for callers that do not
// know in advance whether t is a reference type; it simply forwards to
// WithLocation, which already treats non-reference kinds as identity.
func (in *Interner) WithLocationIfReference(t TypeID, loc DataLocation, isPointer bool) TypeID {
	return in.WithLocation(t, loc, isPointer)
}
