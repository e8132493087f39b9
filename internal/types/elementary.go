package types

import (
	"strconv"
	"strings"
)

// FromElementaryTypeName parses the surface syntax described in spec.md §6
// (an atom optionally followed by a data-location suffix) and interns the
// corresponding atomic, address, fixed-bytes, integer, fixed-point, or
// bytes/string type. The default suffix, when omitted, is " storage".
func (in *Interner) FromElementaryTypeName(token string) (TypeID, error) {
	atomPart, loc, locErr := splitLocationSuffix(token)
	if locErr != nil {
		return NoTypeID, locErr
	}
	base, err := in.parseAtom(atomPart)
	if err != nil {
		return NoTypeID, err
	}
	return in.WithLocation(base, loc, false), nil
}

func splitLocationSuffix(token string) (atomPart string, loc DataLocation, err *InvalidTypeRequest) {
	if token == "address payable" {
		return token, LocationStorage, nil
	}
	if rest, ok := strings.CutPrefix(token, "address payable "); ok {
		l, ok := parseLocationWord(rest)
		if !ok {
			return "", 0, &InvalidTypeRequest{Kind: ErrInvalidLocationSuffix, Name: rest}
		}
		return "address payable", l, nil
	}
	idx := strings.LastIndexByte(token, ' ')
	if idx < 0 {
		return token, LocationStorage, nil
	}
	suffixWord := token[idx+1:]
	l, ok := parseLocationWord(suffixWord)
	if !ok {
		return "", 0, &InvalidTypeRequest{Kind: ErrInvalidLocationSuffix, Name: suffixWord}
	}
	return token[:idx], l, nil
}

func parseLocationWord(w string) (DataLocation, bool) {
	switch w {
	case "storage":
		return LocationStorage, true
	case "memory":
		return LocationMemory, true
	case "calldata":
		return LocationCalldata, true
	default:
		return 0, false
	}
}

func (in *Interner) parseAtom(atom string) (TypeID, error) {
	switch {
	case atom == "bool":
		return in.Bool(), nil
	case atom == "address":
		return in.Address(), nil
	case atom == "address payable":
		return in.PayableAddress(), nil
	case atom == "string":
		return in.StringType(), nil
	case atom == "bytes":
		return in.BytesType(), nil
	case atom == "int":
		id, _ := in.Integer(256, true)
		return id, nil
	case atom == "uint":
		id, _ := in.Integer(256, false)
		return id, nil
	case atom == "fixed":
		return in.FixedPoint(128, 18, true)
	case atom == "ufixed":
		return in.FixedPoint(128, 18, false)
	case strings.HasPrefix(atom, "ufixed"):
		return in.parseFixedPoint(atom, "ufixed", false)
	case strings.HasPrefix(atom, "fixed"):
		return in.parseFixedPoint(atom, "fixed", true)
	case strings.HasPrefix(atom, "uint"):
		return in.parseIntWidth(atom, "uint", false)
	case strings.HasPrefix(atom, "int"):
		return in.parseIntWidth(atom, "int", true)
	case strings.HasPrefix(atom, "bytes"):
		return in.parseFixedBytesName(atom)
	default:
		return NoTypeID, &InvalidTypeRequest{Kind: ErrUnknownElementaryType, Name: atom}
	}
}

func (in *Interner) parseIntWidth(atom, prefix string, signed bool) (TypeID, error) {
	bits, ok := parseDigits(strings.TrimPrefix(atom, prefix))
	if !ok {
		return NoTypeID, &InvalidTypeRequest{Kind: ErrUnknownElementaryType, Name: atom}
	}
	return in.Integer(bits, signed)
}

func (in *Interner) parseFixedBytesName(atom string) (TypeID, error) {
	n, ok := parseDigits(strings.TrimPrefix(atom, "bytes"))
	if !ok {
		return NoTypeID, &InvalidTypeRequest{Kind: ErrUnknownElementaryType, Name: atom}
	}
	return in.FixedBytes(n)
}

func (in *Interner) parseFixedPoint(atom, prefix string, signed bool) (TypeID, error) {
	rest := strings.TrimPrefix(atom, prefix)
	parts := strings.SplitN(rest, "x", 2)
	if len(parts) != 2 {
		return NoTypeID, &InvalidTypeRequest{Kind: ErrUnknownElementaryType, Name: atom}
	}
	m, ok1 := parseDigits(parts[0])
	n, ok2 := parseDigits(parts[1])
	if !ok1 || !ok2 {
		return NoTypeID, &InvalidTypeRequest{Kind: ErrUnknownElementaryType, Name: atom}
	}
	return in.FixedPoint(m, n, signed)
}

func parseDigits(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
