package types

import (
	"fmt"
	"strings"

	"solstice/internal/ast"
)

// FunctionSpec is the free-form shape of the five function-type factory
// overloads spec.md §4.1 describes. The other four shapes (function
// definition, state-variable accessor, event, function type name) are
// sugar that build a FunctionSpec from an AST collaborator and call
// Function.
type FunctionSpec struct {
	Params      []TypeID
	ParamNames  []string // may be shorter than Params, or omitted entirely
	Returns     []TypeID
	ReturnNames []string

	Kind       FunctionKind
	Mutability ast.StateMutability

	GasSet          bool
	ValueSet        bool
	Bound           bool
	ArbitraryParams bool

	Decl ast.DeclID // NoDeclID unless Bound
}

// functionKey excludes parameter/return names by policy: spec.md §9's
// open question is resolved in favor of name-insensitive equivalence.
func functionKey(s FunctionSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|%t|%t|%t|%t|%d|", s.Kind, s.Mutability, s.GasSet, s.ValueSet, s.Bound, s.ArbitraryParams, s.Decl)
	for _, p := range s.Params {
		fmt.Fprintf(&b, "%d,", p)
	}
	b.WriteByte('|')
	for _, r := range s.Returns {
		fmt.Fprintf(&b, "%d,", r)
	}
	return b.String()
}

// Function interns the free-form function-type specification.
func (in *Interner) Function(spec FunctionSpec) TypeID {
	key := functionKey(spec)
	if id, ok := in.functionCache[key]; ok {
		return id
	}
	info := FunctionInfo{
		Params:          append([]TypeID(nil), spec.Params...),
		ParamNames:      append([]string(nil), spec.ParamNames...),
		Returns:         append([]TypeID(nil), spec.Returns...),
		ReturnNames:     append([]string(nil), spec.ReturnNames...),
		Kind:            spec.Kind,
		Mutability:      spec.Mutability,
		GasSet:          spec.GasSet,
		ValueSet:        spec.ValueSet,
		Bound:           spec.Bound,
		ArbitraryParams: spec.ArbitraryParams,
		Decl:            spec.Decl,
	}
	payload := in.pushFunctionInfo(info)
	id := in.internRaw(Type{Kind: KindFunction, Payload: payload})
	in.functionCache[key] = id
	return id
}

func paramTypes(params []ast.Param) []TypeID {
	out := make([]TypeID, len(params))
	for i, p := range params {
		out[i] = TypeID(p.Type)
	}
	return out
}

func paramNames(params []ast.Param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Name
	}
	return out
}

func visibilityKind(v ast.Visibility) FunctionKind {
	switch v {
	case ast.VisibilityExternal, ast.VisibilityPublic:
		return FnExternal
	default:
		return FnInternal
	}
}

// FunctionFromDefinition interns the type of a named function declaration.
func (in *Interner) FunctionFromDefinition(fn ast.FunctionDefinition) TypeID {
	return in.Function(FunctionSpec{
		Params:      paramTypes(fn.Parameters()),
		ParamNames:  paramNames(fn.Parameters()),
		Returns:     paramTypes(fn.ReturnParameters()),
		ReturnNames: paramNames(fn.ReturnParameters()),
		Kind:        visibilityKind(fn.Visibility()),
		Mutability:  fn.StateMutability(),
		Bound:       true,
		Decl:        fn.ID(),
	})
}

// FunctionFromVariable interns the implicit public-accessor function type
// of a state variable declaration: it takes one parameter per mapping/array
// dimension stripped off on the way to result and returns result.
func (in *Interner) FunctionFromVariable(v ast.VariableDeclaration, params []TypeID, result TypeID) TypeID {
	return in.Function(FunctionSpec{
		Params:     params,
		Returns:    []TypeID{result},
		Kind:       FnExternal,
		Mutability: ast.MutabilityView,
		Bound:      true,
		Decl:       v.ID(),
	})
}

// FunctionFromEvent interns an event's function-shaped type: parameters
// only, no return values, no mutability (events are never called).
func (in *Interner) FunctionFromEvent(e ast.EventDefinition) TypeID {
	return in.Function(FunctionSpec{
		Params:     paramTypes(e.Parameters()),
		ParamNames: paramNames(e.Parameters()),
		Kind:       FnEvent,
		Bound:      true,
		Decl:       e.ID(),
	})
}

// FunctionFromTypeName interns the type of a `function (...) returns (...)`
// type name expression. Unlike FunctionFromDefinition this is never bound
// to a declaration: it is a structural type, not a reference to one.
func (in *Interner) FunctionFromTypeName(f ast.FunctionTypeName) TypeID {
	return in.Function(FunctionSpec{
		Params:      paramTypes(f.Parameters()),
		ParamNames:  paramNames(f.Parameters()),
		Returns:     paramTypes(f.ReturnParameters()),
		ReturnNames: paramNames(f.ReturnParameters()),
		Kind:        visibilityKind(f.Visibility()),
		Mutability:  f.StateMutability(),
	})
}

// FunctionParams returns the parameter types of a function-kind type.
func (in *Interner) FunctionParams(id TypeID) []TypeID {
	return in.functionInfos[in.MustLookup(id).Payload].Params
}

// FunctionReturns returns the return types of a function-kind type.
func (in *Interner) FunctionReturns(id TypeID) []TypeID {
	return in.functionInfos[in.MustLookup(id).Payload].Returns
}

// FunctionInfoOf returns the full side-table entry for a function-kind type.
func (in *Interner) FunctionInfoOf(id TypeID) FunctionInfo {
	return in.functionInfos[in.MustLookup(id).Payload]
}
