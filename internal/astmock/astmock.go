// Package astmock provides minimal concrete implementations of the
// internal/ast collaborator interfaces, for use by internal/types and
// internal/globals tests only.
package astmock

import "solstice/internal/ast"

// Function is a test double for ast.FunctionDefinition.
type Function struct {
	IDVal   ast.DeclID
	Params  []ast.Param
	Returns []ast.Param
	Mutab   ast.StateMutability
	Vis     ast.Visibility
	Ctor    bool
}

func (f *Function) ID() ast.DeclID { return f.IDVal }
func (f *Function) Parameters() []ast.Param { return f.Params }
func (f *Function) ReturnParameters() []ast.Param { return f.Returns }
func (f *Function) StateMutability() ast.StateMutability { return f.Mutab }
func (f *Function) Visibility() ast.Visibility { return f.Vis }
func (f *Function) IsConstructor() bool { return f.Ctor }

// Variable is a test double for ast.VariableDeclaration.
type Variable struct {
	IDVal   ast.DeclID
	NameVal string
	Public  bool
}

func (v *Variable) ID() ast.DeclID { return v.IDVal }
func (v *Variable) Name() string { return v.NameVal }
func (v *Variable) IsPublic() bool { return v.Public }

// Event is a test double for ast.EventDefinition.
type Event struct {
	IDVal  ast.DeclID
	Params []ast.Param
}

func (e *Event) ID() ast.DeclID { return e.IDVal }
func (e *Event) Parameters() []ast.Param { return e.Params }

// FunctionTypeName is a test double for ast.FunctionTypeName.
type FunctionTypeName struct {
	IDVal   ast.DeclID
	Params  []ast.Param
	Returns []ast.Param
	Mutab   ast.StateMutability
	Vis     ast.Visibility
}

func (f *FunctionTypeName) ID() ast.DeclID { return f.IDVal }
func (f *FunctionTypeName) Parameters() []ast.Param { return f.Params }
func (f *FunctionTypeName) ReturnParameters() []ast.Param { return f.Returns }
func (f *FunctionTypeName) StateMutability() ast.StateMutability { return f.Mutab }
func (f *FunctionTypeName) Visibility() ast.Visibility { return f.Vis }

// Contract is a test double for ast.ContractDefinition.
type Contract struct {
	IDVal   ast.DeclID
	NameVal string
}

func (c *Contract) ID() ast.DeclID { return c.IDVal }
func (c *Contract) Name() string { return c.NameVal }

// Struct is a test double for ast.StructDefinition.
type Struct struct {
	IDVal   ast.DeclID
	NameVal string
}

func (s *Struct) ID() ast.DeclID { return s.IDVal }
func (s *Struct) Name() string { return s.NameVal }

// Enum is a test double for ast.EnumDefinition.
type Enum struct {
	IDVal      ast.DeclID
	NameVal    string
	MembersVal []string
}

func (e *Enum) ID() ast.DeclID { return e.IDVal }
func (e *Enum) Name() string { return e.NameVal }
func (e *Enum) Members() []string { return e.MembersVal }

// Modifier is a test double for ast.ModifierDefinition.
type Modifier struct {
	IDVal   ast.DeclID
	NameVal string
}

func (m *Modifier) ID() ast.DeclID { return m.IDVal }
func (m *Modifier) Name() string { return m.NameVal }

// SourceUnit is a test double for ast.SourceUnit.
type SourceUnit struct {
	IDVal   ast.DeclID
	PathVal string
}

func (s *SourceUnit) ID() ast.DeclID { return s.IDVal }
func (s *SourceUnit) Path() string { return s.PathVal }
