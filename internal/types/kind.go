package types

import "fmt"

// Kind is the closed, tagged discriminator for every type this core can
// produce. It replaces the polymorphic base-class dispatch of a C++-style
// type hierarchy with a single sum type. The Go compiler does not check
// switches over Kind for exhaustiveness: a newly added Kind falls into each
// switch's default branch until a case is written for it.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindAddress
	KindInteger
	KindFixedBytes
	KindFixedPoint
	KindArray
	KindMapping
	KindTuple
	KindFunction
	KindStringLiteral
	KindRationalNumber
	KindContract
	KindStruct
	KindEnum
	KindModule
	KindTypeOf
	KindModifier
	KindMagic
	KindInaccessibleDynamic
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindInteger:
		return "integer"
	case KindFixedBytes:
		return "fixed_bytes"
	case KindFixedPoint:
		return "fixed_point"
	case KindArray:
		return "array"
	case KindMapping:
		return "mapping"
	case KindTuple:
		return "tuple"
	case KindFunction:
		return "function"
	case KindStringLiteral:
		return "string_literal"
	case KindRationalNumber:
		return "rational_number"
	case KindContract:
		return "contract"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindModule:
		return "module"
	case KindTypeOf:
		return "type_of"
	case KindModifier:
		return "modifier"
	case KindMagic:
		return "magic"
	case KindInaccessibleDynamic:
		return "inaccessible_dynamic"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// DataLocation is the storage tier of a reference-typed value.
type DataLocation uint8

const (
	LocationStorage DataLocation = iota
	LocationMemory
	LocationCalldata
)

func (l DataLocation) String() string {
	switch l {
	case LocationMemory:
		return "memory"
	case LocationCalldata:
		return "calldata"
	default:
		return "storage"
	}
}

// MagicKind discriminates the fixed set of magic namespace objects.
type MagicKind uint8

const (
	MagicBlock MagicKind = iota
	MagicMessage
	MagicTransaction
	MagicABI
	MagicMetaType
)

func (k MagicKind) String() string {
	switch k {
	case MagicBlock:
		return "block"
	case MagicMessage:
		return "msg"
	case MagicTransaction:
		return "tx"
	case MagicABI:
		return "abi"
	case MagicMetaType:
		return "meta_type"
	default:
		return fmt.Sprintf("MagicKind(%d)", k)
	}
}

// FunctionKind is the closed set of calling conventions and intrinsic
// operation tags a Function type can carry.
type FunctionKind uint8

const (
	FnInternal FunctionKind = iota
	FnExternal
	FnCallCode
	FnDelegateCall
	FnBareCall
	FnCreation
	FnSend
	FnTransfer
	FnKeccak256
	FnECRecover
	FnSHA256
	FnRIPEMD160
	FnLog0
	FnLog1
	FnLog2
	FnLog3
	FnLog4
	FnGasLeft
	FnBlockHash
	FnAddMod
	FnMulMod
	FnAssert
	FnRequire
	FnRevert
	FnSelfdestruct
	FnMetaType
	FnEvent
	FnUserDefined
)
