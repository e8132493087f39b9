package globals

import (
	"solstice/internal/source"
	"solstice/internal/types"
)

// Declaration is a single named, already-typed built-in identifier. Two
// declarations may legally share a Name (require/revert overloads,
// sha3/keccak256 and suicide/selfdestruct aliases); name resolution
// disambiguates by argument arity and type, which is out of scope here.
//
// NameID is Name's handle in the owning Context's string interner. Name
// resolution stages downstream of this package can carry NameID instead
// of the raw string once they have interned an identifier off the source
// text, turning a repeated lookup by name into an integer comparison.
type Declaration struct {
	Name   string
	NameID source.StringID
	Type   types.TypeID
}
