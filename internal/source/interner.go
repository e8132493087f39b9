// Package source provides small, allocation-light primitives shared by the
// type system: string interning and source-position spans. It has no
// knowledge of files, lexing, or parsing — those concerns live upstream of
// this core and are out of scope here.
package source

import "slices"

// StringID is a stable handle for an interned string, minted by Interner.
type StringID uint32

// NoStringID marks the absence of a string reference; it always resolves to "".
const NoStringID StringID = 0

// Interner deduplicates strings (declaration and member names) into stable,
// comparable IDs so callers can cache by identity instead of comparing text.
type Interner struct {
	byID  []string            // index -> string (byID[0] == "" for NoStringID)
	index map[string]StringID // string -> ID
}

// NewInterner creates an interner pre-seeded with NoStringID -> "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the stable ID for s, minting a new one on first sight.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	// Copy so the interner doesn't keep the caller's backing array alive.
	cpy := string([]byte(s))
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes interns the UTF-8 decoding of b.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) if id is not valid.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup returns the string for id, panicking if id is invalid.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}

// Has reports whether id was minted by this interner.
func (in *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(in.byID)
}

// Len returns the number of interned strings, including NoStringID's "".
func (in *Interner) Len() int {
	return len(in.byID)
}

// Snapshot returns a copy of every interned string, indexed by StringID.
func (in *Interner) Snapshot() []string {
	return slices.Clone(in.byID)
}
