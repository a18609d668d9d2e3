// Package ast defines the syntax tree the evaluator walks (spec §4.D/§4.E):
// expressions, statements, and type-expressions, each carrying the source
// Position it was parsed from for diagnostics.
package ast

import "github.com/funvibe/snek/internal/diag"

// Node is implemented by every expression, statement, and type-expression
// node.
type Node interface {
	Pos() diag.Position
}

// Expr is a syntax node that evaluates to a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a syntax node executed for effect (and, for the last statement
// in a block, also its value — spec §5).
type Stmt interface {
	Node
	stmtNode()
}

// TypeExpr is a syntax node denoting a type, evaluated once at binding
// time into a types.Type (spec §4.B/§4.E).
type TypeExpr interface {
	Node
	typeExprNode()
}

// Base embeds the common Position field; concrete node structs embed it
// to get Pos() for free. Exported (unlike a lowercase mixin would be) so
// that packages outside ast — parsers, and test/demo code building trees
// by hand — can set a node's Position via a keyed struct literal.
type Base struct {
	Position diag.Position
}

func (b Base) Pos() diag.Position { return b.Position }
