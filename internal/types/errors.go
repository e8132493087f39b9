package types

import "fmt"

// ErrorKind tags the reason an InvalidTypeRequest was raised. Grounded on
// the teacher's LayoutErrorKind/LayoutError split (internal/layout): a
// single exported error type with a discriminator, rather than one error
// type per failure mode.
type ErrorKind uint8

const (
	ErrUnknownElementaryType ErrorKind = iota + 1
	ErrBadIntegerWidth
	ErrBadFixedBytesLength
	ErrBadFixedPointShape
	ErrBadMappingKey
	ErrInvalidLocationSuffix
)

// InvalidTypeRequest is returned by every factory method that can fail on
// caller-supplied parameters (out-of-range widths, unknown elementary
// names, non-comparable mapping keys). It is never returned for internal
// misuse such as calling withLocation incorrectly from within this
// package; that is a programmer error and panics instead (spec.md §7).
type InvalidTypeRequest struct {
	Kind ErrorKind

	Name string // ErrUnknownElementaryType, ErrInvalidLocationSuffix

	Bits uint16 // ErrBadIntegerWidth

	Length uint16 // ErrBadFixedBytesLength

	IntBits  uint16 // ErrBadFixedPointShape
	FracBits uint16 // ErrBadFixedPointShape

	KeyKind Kind // ErrBadMappingKey
}

func (e *InvalidTypeRequest) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrUnknownElementaryType:
		return fmt.Sprintf("unknown elementary type name %q", e.Name)
	case ErrBadIntegerWidth:
		return fmt.Sprintf("invalid integer width %d (must be a multiple of 8 in [8,256])", e.Bits)
	case ErrBadFixedBytesLength:
		return fmt.Sprintf("invalid fixed-bytes length %d (must be in [1,32])", e.Length)
	case ErrBadFixedPointShape:
		return fmt.Sprintf("invalid fixed-point shape (%d,%d)", e.IntBits, e.FracBits)
	case ErrBadMappingKey:
		return fmt.Sprintf("invalid mapping key kind %s (reference and dynamic types are not comparable)", e.KeyKind)
	case ErrInvalidLocationSuffix:
		return fmt.Sprintf("invalid data location suffix %q", e.Name)
	default:
		return fmt.Sprintf("invalid type request (kind=%d)", e.Kind)
	}
}
