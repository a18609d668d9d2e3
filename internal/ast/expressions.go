package ast

import "github.com/funvibe/snek/internal/diag"

func (NullLiteral) exprNode()   {}
func (BoolLiteral) exprNode()   {}
func (IntLiteral) exprNode()    {}
func (FloatLiteral) exprNode()  {}
func (StrLiteral) exprNode()    {}
func (BinLiteral) exprNode()    {}
func (Identifier) exprNode()    {}
func (ListLiteral) exprNode()   {}
func (RecordLiteral) exprNode() {}
func (FieldAccess) exprNode()   {}
func (Subscript) exprNode()     {}
func (Call) exprNode()          {}
func (FuncLiteral) exprNode()   {}
func (Binary) exprNode()        {}
func (Unary) exprNode()         {}
func (Logical) exprNode()       {}
func (Conditional) exprNode()   {}

// NullLiteral is the `null` literal.
type NullLiteral struct{ Base }

// BoolLiteral is `true`/`false`.
type BoolLiteral struct {
	Base
	Value bool
}

// IntLiteral is a decimal integer literal.
type IntLiteral struct {
	Base
	Value int64
}

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	Base
	Value float64
}

// StrLiteral is a quoted string literal (already unescaped by the lexer).
type StrLiteral struct {
	Base
	Value string
}

// BinLiteral is a `b"..."` byte-string literal (already unescaped).
type BinLiteral struct {
	Base
	Value []byte
}

// Identifier is a bare name: a variable reference as an expression, and
// an assignment target as an LValue (spec §4.D/§4.E).
type Identifier struct {
	Base
	Name string
}

func (id Identifier) lvalueNode() {}

// ListLiteral is `[e1, e2, ...]` as a value expression, or a destructuring
// pattern `[a, b, ...rest]` as an LValue.
type ListLiteral struct {
	Base
	Elems []Expr
	Rest  *Identifier // non-nil only in pattern position, for `...rest`
}

func (l ListLiteral) lvalueNode() {}

// RecordField is one field of a record literal or pattern. Key is non-nil
// for a computed key (`{[expr]: value}`); otherwise Name is the bare or
// quoted field name. Shorthand (`{x}`) sets Name and leaves Value nil in
// expression position (resolved to Identifier{Name} by the evaluator).
type RecordField struct {
	Key   Expr
	Name  string
	Value Expr
}

// RecordLiteral is `{k: v, ...spread}` as a value expression, or a
// destructuring pattern `{k, alias: k2}` as an LValue.
type RecordLiteral struct {
	Base
	Spread Expr
	Fields []RecordField
}

func (r RecordLiteral) lvalueNode() {}

// FieldAccess is `target.field`.
type FieldAccess struct {
	Base
	Target Expr
	Field  string
}

// Subscript is `target[index]`, optionally `target?[index]` (Optional),
// per spec §4.D's optional-chaining subscript.
type Subscript struct {
	Base
	Target   Expr
	Index    Expr
	Optional bool
}

// Call is `callee(args...)`.
type Call struct {
	Base
	Callee Expr
	Args   []Expr
}

// ParamSpec is the syntax of one function-literal parameter: a name, an
// optional type annotation, the `...`/`?` flags, and an optional default
// expression.
type ParamSpec struct {
	Name       string
	Type       TypeExpr // nil if unannotated (defaults to Any)
	Rest       bool
	Default    Expr // nil if no default
	Position   diag.Position
}

// FuncLiteral is `(params) -> ReturnType { body }` (or an expression
// body, per spec §4.D).
type FuncLiteral struct {
	Base
	Params     []ParamSpec
	ReturnType TypeExpr // nil if unannotated
	Body       Stmt
}

// Binary is a binary operator expression: `+ - * / % == != < <= > >=`.
type Binary struct {
	Base
	Op    string
	Left  Expr
	Right Expr
}

// Unary is a unary operator expression: currently only `not`.
type Unary struct {
	Base
	Op      string
	Operand Expr
}

// Logical is `and`/`or`, which short-circuit unlike Binary's arithmetic
// and comparison operators.
type Logical struct {
	Base
	Op    string
	Left  Expr
	Right Expr
}

// Conditional is the `if cond then_expr else else_expr` expression form.
type Conditional struct {
	Base
	Cond Expr
	Then Expr
	Else Expr
}
