package session

import (
	"strings"
	"testing"

	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/values"
)

func TestSessionRunReturnsResult(t *testing.T) {
	s := New(nil)
	prog := &ast.Program{Stmts: []ast.Stmt{
		ast.ExprStatement{Expr: ast.IntLiteral{Value: 7}},
	}}
	result, err := s.Run(prog, s.Host.NewRootScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(values.Int).Value != 7 {
		t.Errorf("got %v", result)
	}
}

func TestSessionRunWrapsErrorWithSessionID(t *testing.T) {
	s := New(nil)
	prog := &ast.Program{Stmts: []ast.Stmt{
		ast.ExprStatement{Expr: ast.Identifier{Name: "missing"}},
	}}
	_, err := s.Run(prog, s.Host.NewRootScope())
	if err == nil {
		t.Fatal("expected lookup error")
	}
	if !strings.Contains(err.Error(), s.ID.String()) {
		t.Errorf("expected error to carry session id %s, got %q", s.ID, err.Error())
	}
}

func TestSessionRunRecoversPanic(t *testing.T) {
	s := New(nil)
	// A Call to a Func with a nil Captured (no script closure) and a
	// statement body that panics on assertion failure would be awkward to
	// construct directly; instead exercise the recover path the way a
	// misbehaving host-native callback would trigger it, by invoking a
	// Native function that panics.
	fn := values.Func{
		Native: func(args []values.Value) (values.Value, *diag.Error) {
			panic("boom")
		},
	}
	sc := s.Host.NewRootScope()
	sc.BindVariable("boom", fn, false)
	prog := &ast.Program{Stmts: []ast.Stmt{
		ast.ExprStatement{Expr: ast.Call{Callee: ast.Identifier{Name: "boom"}}},
	}}
	_, err := s.Run(prog, sc)
	if err == nil {
		t.Fatal("expected recovered panic to surface as an error")
	}
	if !strings.Contains(err.Error(), "panic") {
		t.Errorf("expected panic message, got %q", err.Error())
	}
}

func TestSessionStringIncludesID(t *testing.T) {
	s := New(nil)
	if !strings.Contains(s.String(), s.ID.String()) {
		t.Errorf("expected String() to include the session id, got %q", s.String())
	}
}
