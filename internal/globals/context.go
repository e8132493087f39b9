package globals

import (
	"solstice/internal/ast"
	"solstice/internal/source"
	"solstice/internal/types"
)

// Context is the Global Context: an immutable list of built-in
// declarations plus lazily materialized "this"/"super" for the contract
// currently under analysis. It owns the string interner that names its
// own declarations, so a caller who has interned an identifier off the
// source text can look a Declaration up by StringID instead of by string.
type Context struct {
	interner     *types.Interner
	names        *source.Interner
	declarations []Declaration

	currentContract ast.ContractDefinition
	thisByContract  map[ast.DeclID]*Declaration
	superByContract map[ast.DeclID]*Declaration
}

// NewContext constructs a Global Context bound to interner, building the
// built-in declaration list immediately.
func NewContext(interner *types.Interner) *Context {
	names := source.NewInterner()
	return &Context{
		interner:        interner,
		names:           names,
		declarations:    buildBuiltins(interner, names),
		thisByContract:  make(map[ast.DeclID]*Declaration),
		superByContract: make(map[ast.DeclID]*Declaration),
	}
}

// NewDefaultContext builds a Global Context against the package-wide
// default interner (types.Default()), for callers that do not need
// per-compilation isolation.
func NewDefaultContext() *Context {
	return NewContext(types.Default())
}

// Declarations returns the built-in declaration list in construction
// order, including duplicate require/revert overloads.
func (c *Context) Declarations() []Declaration {
	return c.declarations
}

// Names returns the string interner backing this Context's declaration
// names, so a caller can intern a name it read from source and compare it
// by StringID against Declaration.NameID rather than by string.
func (c *Context) Names() *source.Interner {
	return c.names
}

// Lookup returns the first declaration named name. name is interned
// through the shared string interner (the same one Declaration.NameID
// values come from) and compared by StringID, matching how a resolver
// that has already interned an identifier off the source text would look
// a built-in up. It returns (Declaration{}, false) for an unknown name.
func (c *Context) Lookup(name string) (Declaration, bool) {
	id := c.names.Intern(name)
	for _, d := range c.declarations {
		if d.NameID == id {
			return d, true
		}
	}
	return Declaration{}, false
}

// SetCurrentContract updates the contract that CurrentThis/CurrentSuper
// resolve against.
func (c *Context) SetCurrentContract(contract ast.ContractDefinition) {
	c.currentContract = contract
}

// CurrentThis returns the memoized "this" declaration for the active
// contract. Calling it with no active contract is a programmer error
// (spec.md §4.2's Failure clause), not a recoverable condition.
func (c *Context) CurrentThis() *Declaration {
	if c.currentContract == nil {
		panic("globals: CurrentThis called with no active contract")
	}
	id := c.currentContract.ID()
	if d, ok := c.thisByContract[id]; ok {
		return d
	}
	d := &Declaration{Name: "this", NameID: c.names.Intern("this"), Type: c.interner.Contract(c.currentContract, false)}
	c.thisByContract[id] = d
	return d
}

// CurrentSuper returns the memoized "super" declaration for the active
// contract.
func (c *Context) CurrentSuper() *Declaration {
	if c.currentContract == nil {
		panic("globals: CurrentSuper called with no active contract")
	}
	id := c.currentContract.ID()
	if d, ok := c.superByContract[id]; ok {
		return d
	}
	d := &Declaration{Name: "super", NameID: c.names.Intern("super"), Type: c.interner.Contract(c.currentContract, true)}
	c.superByContract[id] = d
	return d
}
