package interp

import (
	"testing"

	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/values"
)

func newTestHost() (*Host, *scope.Scope) {
	h := NewHost(nil)
	return h, h.NewRootScope()
}

func mustEval(t *testing.T, h *Host, sc *scope.Scope, e ast.Expr) values.Value {
	t.Helper()
	v, err := h.eval(e, sc)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	return v
}

func TestEvalLiterals(t *testing.T) {
	h, sc := newTestHost()
	cases := []struct {
		expr ast.Expr
		want values.Value
	}{
		{ast.NullLiteral{}, values.Null{}},
		{ast.BoolLiteral{Value: true}, values.Bool{Value: true}},
		{ast.IntLiteral{Value: 42}, values.Int{Value: 42}},
		{ast.FloatLiteral{Value: 3.5}, values.Float{Value: 3.5}},
		{ast.StrLiteral{Value: "hi"}, values.NewStr("hi")},
	}
	for _, c := range cases {
		got := mustEval(t, h, sc, c.expr)
		if !got.Equal(c.want) {
			t.Errorf("eval(%v) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestEvalIdentifierLookupError(t *testing.T) {
	h, sc := newTestHost()
	_, err := h.eval(ast.Identifier{Name: "missing"}, sc)
	if err == nil {
		t.Fatal("expected lookup error")
	}
}

func TestEvalListLiteral(t *testing.T) {
	h, sc := newTestHost()
	got := mustEval(t, h, sc, ast.ListLiteral{Elems: []ast.Expr{
		ast.IntLiteral{Value: 1}, ast.IntLiteral{Value: 2},
	}})
	list, ok := got.(values.List)
	if !ok || len(list.Elems) != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestEvalRecordLiteralShorthandAndSpread(t *testing.T) {
	h, sc := newTestHost()
	sc.BindVariable("x", values.Int{Value: 7}, false)

	base := ast.RecordLiteral{Fields: []ast.RecordField{
		{Name: "a", Value: ast.IntLiteral{Value: 1}},
		{Name: "x"}, // shorthand
	}}
	spreadExpr := ast.RecordLiteral{
		Spread: base,
		Fields: []ast.RecordField{
			{Name: "b", Value: ast.IntLiteral{Value: 2}},
			{Name: "a", Value: ast.IntLiteral{Value: 99}}, // overwrite
		},
	}
	got := mustEval(t, h, sc, spreadExpr)
	rec, ok := got.(values.Record)
	if !ok {
		t.Fatalf("got %v", got)
	}
	if rec.Fields["a"].(values.Int).Value != 99 {
		t.Errorf("expected overwritten a=99, got %v", rec.Fields["a"])
	}
	if rec.Fields["x"].(values.Int).Value != 7 {
		t.Errorf("expected shorthand x=7, got %v", rec.Fields["x"])
	}
	if rec.Fields["b"].(values.Int).Value != 2 {
		t.Errorf("expected b=2, got %v", rec.Fields["b"])
	}
}

func TestEvalFieldAccessAndErrors(t *testing.T) {
	h, sc := newTestHost()
	rec := values.NewRecord([]string{"n"}, map[string]values.Value{"n": values.NewStr("world")})
	sc.BindVariable("r", rec, false)

	got := mustEval(t, h, sc, ast.FieldAccess{Target: ast.Identifier{Name: "r"}, Field: "n"})
	if got.(values.Str).Raw() != "world" {
		t.Errorf("got %v", got)
	}

	_, err := h.eval(ast.FieldAccess{Target: ast.Identifier{Name: "r"}, Field: "missing"}, sc)
	if err == nil {
		t.Fatal("expected missing-field error")
	}

	_, err = h.eval(ast.FieldAccess{Target: ast.IntLiteral{Value: 1}, Field: "n"}, sc)
	if err == nil {
		t.Fatal("expected not-a-record error")
	}
}

func TestEvalSubscriptListNegativeIndex(t *testing.T) {
	h, sc := newTestHost()
	lst := ast.ListLiteral{Elems: []ast.Expr{
		ast.IntLiteral{Value: 10}, ast.IntLiteral{Value: 20}, ast.IntLiteral{Value: 30},
	}}
	got := mustEval(t, h, sc, ast.Subscript{Target: lst, Index: ast.IntLiteral{Value: -1}})
	if got.(values.Int).Value != 30 {
		t.Errorf("got %v", got)
	}

	_, err := h.eval(ast.Subscript{Target: lst, Index: ast.IntLiteral{Value: 5}}, sc)
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestEvalSubscriptOptionalShortCircuitsOnNull(t *testing.T) {
	h, sc := newTestHost()
	got := mustEval(t, h, sc, ast.Subscript{
		Target: ast.NullLiteral{}, Index: ast.IntLiteral{Value: 0}, Optional: true,
	})
	if _, ok := got.(values.Null); !ok {
		t.Errorf("got %v, want Null", got)
	}
}

func TestEvalStringSubscript(t *testing.T) {
	h, sc := newTestHost()
	got := mustEval(t, h, sc, ast.Subscript{
		Target: ast.StrLiteral{Value: "hello"}, Index: ast.IntLiteral{Value: 1},
	})
	if got.(values.Str).Raw() != "e" {
		t.Errorf("got %v", got)
	}
}

func TestEvalBinaryArithmetic(t *testing.T) {
	h, sc := newTestHost()
	cases := []struct {
		op   string
		l, r ast.Expr
		want values.Value
	}{
		{"+", ast.IntLiteral{Value: 2}, ast.IntLiteral{Value: 3}, values.Int{Value: 5}},
		{"+", ast.IntLiteral{Value: 2}, ast.FloatLiteral{Value: 0.5}, values.Float{Value: 2.5}},
		{"-", ast.IntLiteral{Value: 5}, ast.IntLiteral{Value: 3}, values.Int{Value: 2}},
		{"*", ast.IntLiteral{Value: 5}, ast.IntLiteral{Value: 3}, values.Int{Value: 15}},
		{"/", ast.IntLiteral{Value: 6}, ast.IntLiteral{Value: 3}, values.Int{Value: 2}},
		{"/", ast.IntLiteral{Value: 7}, ast.IntLiteral{Value: 2}, values.Float{Value: 3.5}},
		{"%", ast.IntLiteral{Value: 7}, ast.IntLiteral{Value: 2}, values.Int{Value: 1}},
	}
	for _, c := range cases {
		got := mustEval(t, h, sc, ast.Binary{Op: c.op, Left: c.l, Right: c.r})
		if !got.Equal(c.want) {
			t.Errorf("%s: got %v, want %v", c.op, got, c.want)
		}
	}
}

func TestEvalIntDivisionByZero(t *testing.T) {
	h, sc := newTestHost()
	_, err := h.eval(ast.Binary{Op: "/", Left: ast.IntLiteral{Value: 1}, Right: ast.IntLiteral{Value: 0}}, sc)
	if err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestEvalComparisonAndEquality(t *testing.T) {
	h, sc := newTestHost()
	got := mustEval(t, h, sc, ast.Binary{Op: "<", Left: ast.IntLiteral{Value: 1}, Right: ast.IntLiteral{Value: 2}})
	if !got.(values.Bool).Value {
		t.Errorf("expected true")
	}
	got = mustEval(t, h, sc, ast.Binary{Op: "==", Left: ast.IntLiteral{Value: 1}, Right: ast.FloatLiteral{Value: 1.0}})
	if !got.(values.Bool).Value {
		t.Errorf("expected cross-kind equality true")
	}
}

func TestEvalLogicalShortCircuit(t *testing.T) {
	h, sc := newTestHost()
	got := mustEval(t, h, sc, ast.Logical{Op: "or", Left: ast.BoolLiteral{Value: true}, Right: ast.BoolLiteral{Value: false}})
	if !got.(values.Bool).Value {
		t.Errorf("expected true")
	}
	got = mustEval(t, h, sc, ast.Logical{Op: "and", Left: ast.BoolLiteral{Value: false}, Right: ast.BoolLiteral{Value: true}})
	if got.(values.Bool).Value {
		t.Errorf("expected false")
	}
}

func TestEvalConditional(t *testing.T) {
	h, sc := newTestHost()
	got := mustEval(t, h, sc, ast.Conditional{
		Cond: ast.BoolLiteral{Value: true},
		Then: ast.IntLiteral{Value: 1},
		Else: ast.IntLiteral{Value: 2},
	})
	if got.(values.Int).Value != 1 {
		t.Errorf("got %v", got)
	}
}

func TestEvalUnaryNot(t *testing.T) {
	h, sc := newTestHost()
	got := mustEval(t, h, sc, ast.Unary{Op: "not", Operand: ast.BoolLiteral{Value: false}})
	if !got.(values.Bool).Value {
		t.Errorf("expected true")
	}
}

func TestEvalAsBoolRejectsNonBool(t *testing.T) {
	h, sc := newTestHost()
	_, err := h.evalAsBool(ast.IntLiteral{Value: 1}, sc)
	if err == nil {
		t.Fatal("expected type error")
	}
}

func TestEvalFuncLiteralCaptures(t *testing.T) {
	h, sc := newTestHost()
	fl := ast.FuncLiteral{
		Params: []ast.ParamSpec{{Name: "x"}},
		Body: ast.ReturnStatement{Value: ast.Binary{
			Op: "+", Left: ast.Identifier{Name: "x"}, Right: ast.IntLiteral{Value: 1},
		}},
	}
	got := mustEval(t, h, sc, fl)
	fn, ok := got.(values.Func)
	if !ok {
		t.Fatalf("got %v", got)
	}
	if fn.Captured == nil {
		t.Error("expected captured scope")
	}
}
