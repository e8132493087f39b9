package types

// StringLiteral interns the type of a string/hex literal expression,
// keyed on its raw bytes. Two literals with identical bytes share a type.
func (in *Interner) StringLiteral(value []byte) TypeID {
	key := string(value)
	if id, ok := in.stringLitCache[key]; ok {
		return id
	}
	payload := in.pushStringLiteral(append([]byte(nil), value...))
	id := in.internRaw(Type{Kind: KindStringLiteral, Payload: payload})
	in.stringLitCache[key] = id
	return id
}

// StringLiteralBytes returns the raw bytes backing a string-literal type.
func (in *Interner) StringLiteralBytes(id TypeID) []byte {
	return in.stringLiterals[in.MustLookup(id).Payload]
}
