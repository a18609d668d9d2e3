package ast

func (ExprStatement) stmtNode()      {}
func (Assignment) stmtNode()         {}
func (TypeAliasStatement) stmtNode() {}
func (ExportStatement) stmtNode()    {}
func (IfStatement) stmtNode()        {}
func (WhileStatement) stmtNode()     {}
func (BreakStatement) stmtNode()     {}
func (ContinueStatement) stmtNode()  {}
func (ReturnStatement) stmtNode()    {}
func (BlockStatement) stmtNode()     {}
func (ImportStatement) stmtNode()    {}

// ExprStatement evaluates Expr for its side effects (and, as the last
// statement of a block, yields its value — spec §5).
type ExprStatement struct {
	Base
	Expr Expr
}

// Assignment binds Value to Target. Target's single-assignment check
// happens in the evaluator against the current scope, not here.
type Assignment struct {
	Base
	Target LValue
	Value  Expr
}

// TypeAliasStatement introduces a named type alias: `type Name = Type`.
type TypeAliasStatement struct {
	Base
	Name   string
	Export bool
	Type   TypeExpr
}

// ExportStatement declares a new binding and exports it in a single
// statement, per spec §4.E/§7. A name already bound in the current scope
// is rejected; an existing binding cannot be re-exported this way.
type ExportStatement struct {
	Base
	Name  string
	Value Expr
}

// IfStatement is `if (cond) then else else` (Else nil if no else clause).
type IfStatement struct {
	Base
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Base
	Cond Expr
	Body Stmt
}

// BreakStatement exits the nearest enclosing loop.
type BreakStatement struct{ Base }

// ContinueStatement skips to the next iteration of the nearest enclosing
// loop.
type ContinueStatement struct{ Base }

// ReturnStatement exits the nearest enclosing function call. Value is nil
// for a bare `return` (returns Null).
type ReturnStatement struct {
	Base
	Value Expr
}

// BlockStatement is a `{ ... }` sequence, executed in a fresh child scope
// (spec §4.E).
type BlockStatement struct {
	Base
	Stmts []Stmt
}

// ImportSpec is either a NamedImportSpec or a StarImportSpec.
type ImportSpec interface {
	importSpecNode()
}

// NamedImportSpec imports one name, optionally under a local Alias.
type NamedImportSpec struct {
	Name  string
	Alias string
}

func (NamedImportSpec) importSpecNode() {}

// StarImportSpec imports every exported name of the module under Alias
// as a namespace record.
type StarImportSpec struct {
	Alias string
}

func (StarImportSpec) importSpecNode() {}

// ImportStatement is `import {a, b as c} from "path"` or
// `import * as ns from "path"` (spec §4.F/§7).
type ImportStatement struct {
	Base
	Path  string
	Specs []ImportSpec
}

// Program is the root node: a module's top-level statement sequence.
type Program struct {
	Base
	Stmts []Stmt
}
