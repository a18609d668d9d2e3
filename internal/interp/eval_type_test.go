package interp

import (
	"testing"

	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/types"
)

func TestEvalTypeExprNilIsAny(t *testing.T) {
	h, sc := newTestHost()
	ty, err := h.evalTypeExpr(sc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ty.(types.Any); !ok {
		t.Errorf("got %v, want Any", ty)
	}
}

func TestEvalTypeExprNameResolvesPrimordial(t *testing.T) {
	h, sc := newTestHost()
	ty, err := h.evalTypeExpr(sc, ast.NameTypeExpr{Name: "Int"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.String() != "Int" {
		t.Errorf("got %v", ty)
	}
}

func TestEvalTypeExprUnknownNameErrors(t *testing.T) {
	h, sc := newTestHost()
	_, err := h.evalTypeExpr(sc, ast.NameTypeExpr{Name: "Bogus"})
	if err == nil {
		t.Fatal("expected unknown-type error")
	}
}

func TestEvalTypeExprListAndRecord(t *testing.T) {
	h, sc := newTestHost()
	listTy, err := h.evalTypeExpr(sc, ast.ListTypeExpr{Elem: ast.NameTypeExpr{Name: "Str"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listTy.String() != "Str[]" {
		t.Errorf("got %v", listTy)
	}

	recTy, err := h.evalTypeExpr(sc, ast.RecordTypeExpr{Fields: []ast.RecordFieldType{
		{Name: "n", Type: ast.NameTypeExpr{Name: "Int"}},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, ok := recTy.(types.Record)
	if !ok || rec.Fields["n"].String() != "Int" {
		t.Errorf("got %v", recTy)
	}
}

func TestEvalTypeExprFuncType(t *testing.T) {
	h, sc := newTestHost()
	ty, err := h.evalTypeExpr(sc, ast.FuncTypeExpr{
		Params: []ast.FuncParamType{{Name: "x", Type: ast.NameTypeExpr{Name: "Int"}}},
		Return: ast.NameTypeExpr{Name: "Bool"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := ty.(types.Func)
	if !ok || len(fn.Params) != 1 {
		t.Errorf("got %v", ty)
	}
}

func TestEvalTypeExprUnionBuildsUnion(t *testing.T) {
	h, sc := newTestHost()
	ty, err := h.evalTypeExpr(sc, ast.UnionTypeExpr{Of: []ast.TypeExpr{
		ast.NameTypeExpr{Name: "Int"},
		ast.NameTypeExpr{Name: "Str"},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ty.(types.Union); !ok {
		t.Errorf("got %v, want Union", ty)
	}
}
