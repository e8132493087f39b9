package globals

import (
	"fmt"

	"solstice/internal/ast"
	"solstice/internal/source"
	"solstice/internal/types"
)

// buildBuiltins allocates one declaration per row of spec.md §4.2's table,
// in construction order, using in to build each bound type and names to
// intern each row's identifier. Rows with duplicate names are appended
// twice, never coalesced (spec.md §9), and intern to the same StringID.
func buildBuiltins(in *types.Interner, names *source.Interner) []Declaration {
	uint256 := mustInt(in, 256, false)
	uint8_ := mustInt(in, 8, false)
	boolT := in.Bool()
	address := in.Address()
	payableAddress := in.PayableAddress()
	bytes32 := mustFixedBytes(in, 32)
	bytes20 := mustFixedBytes(in, 20)
	stringMemory := in.StringMemory()
	bytesMemory := in.BytesMemory()

	pureFn := func(kind types.FunctionKind, params []types.TypeID, returns []types.TypeID) types.TypeID {
		return in.Function(types.FunctionSpec{Params: params, Returns: returns, Kind: kind, Mutability: ast.MutabilityPure})
	}
	viewFn := func(kind types.FunctionKind, params []types.TypeID, returns []types.TypeID) types.TypeID {
		return in.Function(types.FunctionSpec{Params: params, Returns: returns, Kind: kind, Mutability: ast.MutabilityView})
	}
	nonPayableFn := func(kind types.FunctionKind, params []types.TypeID, returns []types.TypeID) types.TypeID {
		return in.Function(types.FunctionSpec{Params: params, Returns: returns, Kind: kind, Mutability: ast.MutabilityNonPayable})
	}

	decls := []Declaration{
		{Name: "abi", Type: in.Magic(types.MagicABI)},
		{Name: "block", Type: in.Magic(types.MagicBlock)},
		{Name: "msg", Type: in.Magic(types.MagicMessage)},
		{Name: "tx", Type: in.Magic(types.MagicTransaction)},
		{Name: "now", Type: uint256},
		{Name: "addmod", Type: pureFn(types.FnAddMod, []types.TypeID{uint256, uint256, uint256}, []types.TypeID{uint256})},
		{Name: "mulmod", Type: pureFn(types.FnMulMod, []types.TypeID{uint256, uint256, uint256}, []types.TypeID{uint256})},
		{Name: "assert", Type: pureFn(types.FnAssert, []types.TypeID{boolT}, nil)},
		{Name: "require", Type: pureFn(types.FnRequire, []types.TypeID{boolT}, nil)},
		{Name: "require", Type: pureFn(types.FnRequire, []types.TypeID{boolT, stringMemory}, nil)},
		{Name: "revert", Type: pureFn(types.FnRevert, nil, nil)},
		{Name: "revert", Type: pureFn(types.FnRevert, []types.TypeID{stringMemory}, nil)},
		{Name: "blockhash", Type: viewFn(types.FnBlockHash, []types.TypeID{uint256}, []types.TypeID{bytes32})},
		{Name: "gasleft", Type: viewFn(types.FnGasLeft, nil, []types.TypeID{uint256})},
	}

	keccak256Type := pureFn(types.FnKeccak256, []types.TypeID{bytesMemory}, []types.TypeID{bytes32})
	decls = append(decls,
		Declaration{Name: "keccak256", Type: keccak256Type},
		Declaration{Name: "sha3", Type: keccak256Type},
		Declaration{Name: "sha256", Type: pureFn(types.FnSHA256, []types.TypeID{bytesMemory}, []types.TypeID{bytes32})},
		Declaration{Name: "ripemd160", Type: pureFn(types.FnRIPEMD160, []types.TypeID{bytesMemory}, []types.TypeID{bytes20})},
		Declaration{Name: "ecrecover", Type: pureFn(types.FnECRecover, []types.TypeID{bytes32, uint8_, bytes32, bytes32}, []types.TypeID{address})},
	)

	selfdestructType := nonPayableFn(types.FnSelfdestruct, []types.TypeID{payableAddress}, nil)
	decls = append(decls,
		Declaration{Name: "selfdestruct", Type: selfdestructType},
		Declaration{Name: "suicide", Type: selfdestructType},
	)

	logKinds := [5]types.FunctionKind{types.FnLog0, types.FnLog1, types.FnLog2, types.FnLog3, types.FnLog4}
	for n := 0; n <= 4; n++ {
		params := make([]types.TypeID, n+1)
		for i := range params {
			params[i] = bytes32
		}
		decls = append(decls, Declaration{
			Name: fmt.Sprintf("log%d", n),
			Type: nonPayableFn(logKinds[n], params, nil),
		})
	}

	decls = append(decls, Declaration{
		Name: "type",
		Type: pureFn(types.FnMetaType, []types.TypeID{address}, nil),
	})

	for i := range decls {
		decls[i].NameID = names.Intern(decls[i].Name)
	}
	return decls
}

func mustInt(in *types.Interner, bits uint16, signed bool) types.TypeID {
	id, err := in.Integer(bits, signed)
	if err != nil {
		panic(fmt.Errorf("globals: invalid built-in integer width: %w", err))
	}
	return id
}

func mustFixedBytes(in *types.Interner, n uint16) types.TypeID {
	id, err := in.FixedBytes(n)
	if err != nil {
		panic(fmt.Errorf("globals: invalid built-in fixed-bytes length: %w", err))
	}
	return id
}
