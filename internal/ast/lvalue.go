package ast

// LValue is implemented by the three node kinds spec §4.E permits as
// assignment targets: Identifier, ListLiteral (destructuring), and
// RecordLiteral (destructuring) — the same node types used in expression
// position, so a parsed `ListLiteral` becomes an LValue simply by virtue
// of appearing on the left of an Assignment rather than by any separate
// pattern grammar.
type LValue interface {
	Expr
	lvalueNode()
}
