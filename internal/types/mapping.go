package types

type mappingKey struct {
	Key   TypeID
	Value TypeID
}

// comparableMappingKey reports whether kind k is legal as a mapping key:
// reference and dynamically sized types are excluded (spec.md §4.1).
func comparableMappingKey(k Kind) bool {
	switch k {
	case KindBool, KindAddress, KindInteger, KindFixedBytes, KindFixedPoint, KindEnum, KindContract:
		return true
	default:
		return false
	}
}

// Mapping interns mapping(key => value). Keys are always normalized to
// storage location before lookup, per policy; keys that are reference or
// dynamically sized types fail with ErrBadMappingKey.
func (in *Interner) Mapping(key, value TypeID) (TypeID, error) {
	keyType := in.MustLookup(key)
	if !comparableMappingKey(keyType.Kind) {
		return NoTypeID, &InvalidTypeRequest{Kind: ErrBadMappingKey, KeyKind: keyType.Kind}
	}
	normalizedKey := in.WithLocation(key, LocationStorage, false)
	mk := mappingKey{Key: normalizedKey, Value: value}
	if id, ok := in.mappingCache[mk]; ok {
		return id, nil
	}
	id := in.internRaw(Type{Kind: KindMapping, A: uint32(normalizedKey), B: uint32(value)})
	in.mappingCache[mk] = id
	return id, nil
}

// MappingKey returns the key type of a mapping-kind type.
func (in *Interner) MappingKey(id TypeID) TypeID {
	return TypeID(in.MustLookup(id).A)
}

// MappingValue returns the value type of a mapping-kind type.
func (in *Interner) MappingValue(id TypeID) TypeID {
	return TypeID(in.MustLookup(id).B)
}
