package types

import (
	"strconv"

	"solstice/internal/ast"
)

// TypeID is a stable, opaque handle into the interner's arena. Handle
// equality is semantic type equality: two TypeIDs compare equal if and
// only if the interner would consider the underlying descriptors
// equivalent. TypeID is never dereferenced by callers directly; it is
// only ever passed back into Interner.Lookup or another factory method.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

func (id TypeID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Type is the compact descriptor every interned value reduces to. Kinds
// whose full content does not fit in Flags/A/B (slices, decl identities,
// arbitrary-precision values) store an index into a kind-specific side
// table in Payload; kinds that fit entirely in A/B leave Payload zero.
type Type struct {
	Kind    Kind
	Flags   uint16
	A       uint32
	B       uint32
	Payload uint32
}

// Flag bits shared across a handful of kinds. Each kind documents which
// bits it actually reads.
const (
	flagSigned    uint16 = 1 << 0
	flagPayable   uint16 = 1 << 1
	flagIsString  uint16 = 1 << 2
	flagIsPointer uint16 = 1 << 3
	flagIsSuper   uint16 = 1 << 4
)

func (t Type) location() DataLocation { return DataLocation(t.Flags >> 8) }

func withLocationFlag(base uint16, loc DataLocation) uint16 {
	return (base &^ (0xff << 8)) | (uint16(loc) << 8)
}

// ArrayInfo is the side table entry for KindArray, holding the piece of
// state that does not fit into Type.A/B: the exact element count. A nil
// Length means the array is dynamically sized. Length is stored as a
// decimal string of a 256-bit natural number (see array.go) since the
// spec allows array lengths up to the full uint256 range.
type ArrayInfo struct {
	Length *string
}

// FunctionInfo is the side table entry for KindFunction.
type FunctionInfo struct {
	Params          []TypeID
	ParamNames      []string
	Returns         []TypeID
	ReturnNames     []string
	Kind            FunctionKind
	Mutability      ast.StateMutability
	GasSet          bool
	ValueSet        bool
	Bound           bool
	ArbitraryParams bool
	Decl            ast.DeclID // NoDeclID when not bound to a user declaration
}

// RationalInfo is the side table entry for KindRationalNumber.
type RationalInfo struct {
	Value           string // normalized "num/den" decimal form
	CompatibleBytes TypeID // NoTypeID when the literal has no compatible fixed-bytes width
}

// NominalInfo is the shared side table entry for the declaration-identified
// kinds: Contract, Struct, Enum, Module, Modifier.
type NominalInfo struct {
	Decl     ast.DeclID
	Location DataLocation // meaningful for Struct only
	IsSuper  bool         // meaningful for Contract only
}
