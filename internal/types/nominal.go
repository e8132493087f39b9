package types

import "solstice/internal/ast"

// Declaration-identified kinds are keyed on decl identity, never on
// structural expansion: this is how recursive user-defined types (a
// struct containing a mapping of itself, a contract referencing its own
// type-of-type) terminate without infinite unrolling (spec.md §9).

type contractKey struct {
	Decl    ast.DeclID
	IsSuper bool
}

type structKey struct {
	Decl     ast.DeclID
	Location DataLocation
}

// Contract interns the type of a contract/interface/library declaration.
func (in *Interner) Contract(decl ast.ContractDefinition, isSuper bool) TypeID {
	key := contractKey{Decl: decl.ID(), IsSuper: isSuper}
	if id, ok := in.contractCache[key]; ok {
		return id
	}
	flags := uint16(0)
	if isSuper {
		flags |= flagIsSuper
	}
	payload := in.pushNominal(NominalInfo{Decl: decl.ID(), IsSuper: isSuper})
	id := in.internRaw(Type{Kind: KindContract, Flags: flags, Payload: payload})
	in.contractCache[key] = id
	return id
}

// Struct interns the type of a struct declaration at a given data location.
func (in *Interner) Struct(decl ast.StructDefinition, location DataLocation) TypeID {
	return in.internStruct(decl.ID(), location)
}

func (in *Interner) internStruct(declID ast.DeclID, location DataLocation) TypeID {
	key := structKey{Decl: declID, Location: location}
	if id, ok := in.structCache[key]; ok {
		return id
	}
	payload := in.pushNominal(NominalInfo{Decl: declID, Location: location})
	id := in.internRaw(Type{Kind: KindStruct, Flags: withLocationFlag(0, location), Payload: payload})
	in.structCache[key] = id
	return id
}

// Enum interns the type of an enum declaration.
func (in *Interner) Enum(decl ast.EnumDefinition) TypeID {
	if id, ok := in.enumCache[decl.ID()]; ok {
		return id
	}
	payload := in.pushNominal(NominalInfo{Decl: decl.ID()})
	id := in.internRaw(Type{Kind: KindEnum, Payload: payload})
	in.enumCache[decl.ID()] = id
	return id
}

// Module interns the type of an imported source unit.
func (in *Interner) Module(unit ast.SourceUnit) TypeID {
	if id, ok := in.moduleCache[unit.ID()]; ok {
		return id
	}
	payload := in.pushNominal(NominalInfo{Decl: unit.ID()})
	id := in.internRaw(Type{Kind: KindModule, Payload: payload})
	in.moduleCache[unit.ID()] = id
	return id
}

// Modifier interns the type of a function modifier declaration.
func (in *Interner) Modifier(decl ast.ModifierDefinition) TypeID {
	if id, ok := in.modifierCache[decl.ID()]; ok {
		return id
	}
	payload := in.pushNominal(NominalInfo{Decl: decl.ID()})
	id := in.internRaw(Type{Kind: KindModifier, Payload: payload})
	in.modifierCache[decl.ID()] = id
	return id
}

// TypeOf interns the "type of a type" meta-value used for expressions like
// `T.max` / `T.min` member access on an elementary or user-defined type.
func (in *Interner) TypeOf(underlying TypeID) TypeID {
	if id, ok := in.typeOfCache[underlying]; ok {
		return id
	}
	id := in.internRaw(Type{Kind: KindTypeOf, A: uint32(underlying)})
	in.typeOfCache[underlying] = id
	return id
}

// Magic returns the atom for one of the three plain namespace kinds
// (Block, Message, Transaction) or the ABI namespace. MetaType is
// constructed via MetaType below since it carries a parameter.
func (in *Interner) Magic(kind MagicKind) TypeID {
	switch kind {
	case MagicBlock:
		return in.magicBlockID
	case MagicMessage:
		return in.magicMessageID
	case MagicTransaction:
		return in.magicTransactionID
	case MagicABI:
		return in.magicABIID
	default:
		panic("types: Magic called with a parameterized kind; use MetaType")
	}
}

// MetaType interns the magic value produced by the built-in `type(X)`
// expression: a namespace object exposing X's static members.
func (in *Interner) MetaType(of TypeID) TypeID {
	if id, ok := in.metaTypeCache[of]; ok {
		return id
	}
	id := in.internRaw(Type{Kind: KindMagic, A: uint32(MagicMetaType), B: uint32(of)})
	in.metaTypeCache[of] = id
	return id
}

// NominalDecl returns the owning declaration identity of a Contract,
// Struct, Enum, Module, or Modifier type.
func (in *Interner) NominalDecl(id TypeID) ast.DeclID {
	return in.nominals[in.MustLookup(id).Payload].Decl
}

// IsSuper reports the isSuper flag of a contract-kind type.
func (in *Interner) IsSuper(id TypeID) bool {
	return in.MustLookup(id).Flags&flagIsSuper != 0
}

// StructLocation returns the data location of a struct-kind type.
func (in *Interner) StructLocation(id TypeID) DataLocation {
	return in.MustLookup(id).location()
}

// TypeOfUnderlying returns the wrapped type of a type-of-type value.
func (in *Interner) TypeOfUnderlying(id TypeID) TypeID {
	return TypeID(in.MustLookup(id).A)
}

// MagicKindOf returns the namespace discriminator of a magic-kind type.
func (in *Interner) MagicKindOf(id TypeID) MagicKind {
	return MagicKind(in.MustLookup(id).A)
}

// MetaTypeUnderlying returns the wrapped type of a MetaType magic value.
func (in *Interner) MetaTypeUnderlying(id TypeID) TypeID {
	return TypeID(in.MustLookup(id).B)
}
