package types

import (
	"fmt"

	"fortio.org/safecast"

	"solstice/internal/ast"
)

// Interner is a process-scoped factory owning every type value. It is
// single-writer state: the public contract assumes one goroutine drives it
// at a time (spec.md §5). Atoms are pre-populated by NewInterner and never
// invalidated; every other kind lives in a content-keyed cache that Reset
// clears in one step.
type Interner struct {
	types []Type

	boolID, addressID, payableAddressID TypeID
	intByWidth                          [33]TypeID
	uintByWidth                         [33]TypeID
	fixedBytesByLen                     [33]TypeID
	magicBlockID                        TypeID
	magicMessageID                      TypeID
	magicTransactionID                  TypeID
	magicABIID                          TypeID
	emptyTupleID                        TypeID
	bytesStorageID                      TypeID
	bytesMemoryID                       TypeID
	stringStorageID                     TypeID
	stringMemoryID                      TypeID
	inaccessibleDynamicID               TypeID

	// atomArrayKeys records the bytes/string atoms' cache entries so Reset
	// can reseed the array cache with them; otherwise a post-reset call to
	// BytesOrStringArray would mint a *new* TypeID for what is supposed to
	// be an immortal atom.
	atomArrayKeys map[arrayKey]TypeID

	arrayCache      map[arrayKey]TypeID
	mappingCache    map[mappingKey]TypeID
	tupleCache      map[string]TypeID
	functionCache   map[string]TypeID
	stringLitCache  map[string]TypeID
	rationalCache   map[string]TypeID
	fixedPointCache map[fixedPointKey]TypeID
	contractCache   map[contractKey]TypeID
	structCache     map[structKey]TypeID
	enumCache       map[ast.DeclID]TypeID
	moduleCache     map[ast.DeclID]TypeID
	typeOfCache     map[TypeID]TypeID
	modifierCache   map[ast.DeclID]TypeID
	metaTypeCache   map[TypeID]TypeID

	arrayInfos     []ArrayInfo
	tupleInfos     [][]TypeID
	functionInfos  []FunctionInfo
	stringLiterals [][]byte
	rationals      []RationalInfo
	nominals       []NominalInfo

	atomArrayInfoCount int
	atomTupleInfoCount int
}

// NewInterner constructs an interner with every atom pre-populated: bool,
// both address variants, all 32 signed and unsigned integer widths, all 32
// fixed-bytes widths, the four magic namespaces, the empty tuple, the four
// canonical bytes/string storage-and-memory arrays, and the inaccessible-
// dynamic marker.
func NewInterner() *Interner {
	in := &Interner{
		atomArrayKeys:   make(map[arrayKey]TypeID),
		arrayCache:      make(map[arrayKey]TypeID),
		mappingCache:    make(map[mappingKey]TypeID),
		tupleCache:      make(map[string]TypeID),
		functionCache:   make(map[string]TypeID),
		stringLitCache:  make(map[string]TypeID),
		rationalCache:   make(map[string]TypeID),
		fixedPointCache: make(map[fixedPointKey]TypeID),
		contractCache:   make(map[contractKey]TypeID),
		structCache:     make(map[structKey]TypeID),
		enumCache:       make(map[ast.DeclID]TypeID),
		moduleCache:     make(map[ast.DeclID]TypeID),
		typeOfCache:     make(map[TypeID]TypeID),
		modifierCache:   make(map[ast.DeclID]TypeID),
		metaTypeCache:   make(map[TypeID]TypeID),
	}

	in.internRaw(Type{Kind: KindInvalid}) // reserve TypeID 0 as an invalid sentinel

	in.boolID = in.internRaw(Type{Kind: KindBool})
	in.addressID = in.internRaw(Type{Kind: KindAddress})
	in.payableAddressID = in.internRaw(Type{Kind: KindAddress, Flags: flagPayable})

	for bits := uint16(8); bits <= 256; bits += 8 {
		idx := bits / 8
		in.uintByWidth[idx] = in.internRaw(Type{Kind: KindInteger, A: uint32(bits)})
		in.intByWidth[idx] = in.internRaw(Type{Kind: KindInteger, A: uint32(bits), Flags: flagSigned})
	}

	for n := uint16(1); n <= 32; n++ {
		in.fixedBytesByLen[n] = in.internRaw(Type{Kind: KindFixedBytes, A: uint32(n)})
	}

	in.magicBlockID = in.internRaw(Type{Kind: KindMagic, A: uint32(MagicBlock)})
	in.magicMessageID = in.internRaw(Type{Kind: KindMagic, A: uint32(MagicMessage)})
	in.magicTransactionID = in.internRaw(Type{Kind: KindMagic, A: uint32(MagicTransaction)})
	in.magicABIID = in.internRaw(Type{Kind: KindMagic, A: uint32(MagicABI)})

	emptyPayload := in.pushTupleInfo(nil)
	in.emptyTupleID = in.internRaw(Type{Kind: KindTuple, Payload: emptyPayload})

	in.bytesStorageID = in.newAtomArray(LocationStorage, false)
	in.bytesMemoryID = in.newAtomArray(LocationMemory, false)
	in.stringStorageID = in.newAtomArray(LocationStorage, true)
	in.stringMemoryID = in.newAtomArray(LocationMemory, true)

	in.inaccessibleDynamicID = in.internRaw(Type{Kind: KindInaccessibleDynamic})

	in.atomArrayInfoCount = len(in.arrayInfos)
	in.atomTupleInfoCount = len(in.tupleInfos)

	return in
}

func (in *Interner) newAtomArray(loc DataLocation, isString bool) TypeID {
	element := in.fixedBytesByLen[1]
	key := arrayKey{Location: loc, Element: element, Length: "", IsString: isString, IsPointer: false}
	payload := in.pushArrayInfo(ArrayInfo{Length: nil})
	flags := withLocationFlag(0, loc)
	if isString {
		flags |= flagIsString
	}
	id := in.internRaw(Type{Kind: KindArray, Flags: flags, A: uint32(element), Payload: payload})
	in.arrayCache[key] = id
	in.atomArrayKeys[key] = id
	return id
}

// Reset drops every non-atom cache; atoms survive with their original
// TypeID. This is the only observable mutation of the interner (spec.md
// §4.1) and must be treated as a checkpoint barrier: no handle for a
// non-atom kind may be retained across a Reset call.
//
// The type arena itself is never truncated. internRaw always mints the
// next TypeID from len(in.types), so rewinding that slice back to the
// atom-populated prefix would let the very next non-atom allocation reuse
// a TypeID a pre-reset allocation once held, even though the two are
// supposed to be distinct handles. Leaving old entries in place keeps
// every fresh allocation's TypeID strictly greater than any handle minted
// before it, so a non-atom type re-created after Reset is always
// observably distinct from its pre-reset counterpart, per the
// freshly-allocated law. The side tables (arrayInfos, tupleInfos, ...)
// hold payload data rather than identity, so rewinding and reusing their
// indices past the atom-populated prefix is harmless: a resurrected index
// is only ever read through a freshly allocated Type that was just given
// that same payload.
func (in *Interner) Reset() {
	in.arrayInfos = in.arrayInfos[:in.atomArrayInfoCount]
	in.tupleInfos = in.tupleInfos[:in.atomTupleInfoCount]
	in.functionInfos = in.functionInfos[:0]
	in.stringLiterals = in.stringLiterals[:0]
	in.rationals = in.rationals[:0]
	in.nominals = in.nominals[:0]

	in.arrayCache = make(map[arrayKey]TypeID, len(in.atomArrayKeys))
	for k, v := range in.atomArrayKeys {
		in.arrayCache[k] = v
	}
	in.mappingCache = make(map[mappingKey]TypeID)
	in.tupleCache = make(map[string]TypeID)
	in.functionCache = make(map[string]TypeID)
	in.stringLitCache = make(map[string]TypeID)
	in.rationalCache = make(map[string]TypeID)
	in.fixedPointCache = make(map[fixedPointKey]TypeID)
	in.contractCache = make(map[contractKey]TypeID)
	in.structCache = make(map[structKey]TypeID)
	in.enumCache = make(map[ast.DeclID]TypeID)
	in.moduleCache = make(map[ast.DeclID]TypeID)
	in.typeOfCache = make(map[TypeID]TypeID)
	in.modifierCache = make(map[ast.DeclID]TypeID)
	in.metaTypeCache = make(map[TypeID]TypeID)
}

// internRaw appends a descriptor to the arena without consulting any cache.
// Every factory method above eventually funnels through this.
func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: type arena overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	return id
}

func (in *Interner) pushArrayInfo(info ArrayInfo) uint32 {
	idx, err := safecast.Conv[uint32](len(in.arrayInfos))
	if err != nil {
		panic(fmt.Errorf("types: array info table overflow: %w", err))
	}
	in.arrayInfos = append(in.arrayInfos, info)
	return idx
}

func (in *Interner) pushTupleInfo(members []TypeID) uint32 {
	idx, err := safecast.Conv[uint32](len(in.tupleInfos))
	if err != nil {
		panic(fmt.Errorf("types: tuple info table overflow: %w", err))
	}
	in.tupleInfos = append(in.tupleInfos, members)
	return idx
}

func (in *Interner) pushFunctionInfo(info FunctionInfo) uint32 {
	idx, err := safecast.Conv[uint32](len(in.functionInfos))
	if err != nil {
		panic(fmt.Errorf("types: function info table overflow: %w", err))
	}
	in.functionInfos = append(in.functionInfos, info)
	return idx
}

func (in *Interner) pushStringLiteral(b []byte) uint32 {
	idx, err := safecast.Conv[uint32](len(in.stringLiterals))
	if err != nil {
		panic(fmt.Errorf("types: string literal table overflow: %w", err))
	}
	in.stringLiterals = append(in.stringLiterals, b)
	return idx
}

func (in *Interner) pushRational(info RationalInfo) uint32 {
	idx, err := safecast.Conv[uint32](len(in.rationals))
	if err != nil {
		panic(fmt.Errorf("types: rational table overflow: %w", err))
	}
	in.rationals = append(in.rationals, info)
	return idx
}

func (in *Interner) pushNominal(info NominalInfo) uint32 {
	idx, err := safecast.Conv[uint32](len(in.nominals))
	if err != nil {
		panic(fmt.Errorf("types: nominal table overflow: %w", err))
	}
	in.nominals = append(in.nominals, info)
	return idx
}

// Lookup returns the descriptor for id, or (Type{}, false) if id is out of
// range.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if int(id) < 0 || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid. Every accessor in this package
// calls this instead of Lookup: an invalid TypeID reaching an accessor is
// a compiler bug (spec.md §7), not a recoverable user-facing error.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("types: invalid TypeID %d", id))
	}
	return t
}

// KindOf is a convenience accessor for the discriminator alone.
func (in *Interner) KindOf(id TypeID) Kind {
	return in.MustLookup(id).Kind
}
