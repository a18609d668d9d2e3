package interp

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/types"
)

// evalTypeExpr evaluates a type-expression node against sc, producing the
// types.Type it denotes (spec §4.D "Type-expression AST"). A nil TypeExpr
// (an omitted annotation) denotes Any.
func (h *Host) evalTypeExpr(sc *scope.Scope, te ast.TypeExpr) (types.Type, *diag.Error) {
	if te == nil {
		return h.anyType, nil
	}
	switch t := te.(type) {
	case ast.AnyTypeExpr:
		return types.Any{}, nil

	case ast.NameTypeExpr:
		ty, ok := sc.LookupType(t.Name)
		if !ok {
			return nil, diag.New(t.Pos(), "Unknown type: %s", t.Name)
		}
		return ty, nil

	case ast.StrLiteralTypeExpr:
		return types.StrLiteral{Value: t.Value}, nil

	case ast.ListTypeExpr:
		elem, err := h.evalTypeExpr(sc, t.Elem)
		if err != nil {
			return nil, err
		}
		return types.List{Elem: elem}, nil

	case ast.TupleTypeExpr:
		elems := make([]types.Type, len(t.Elems))
		for i, e := range t.Elems {
			ty, err := h.evalTypeExpr(sc, e)
			if err != nil {
				return nil, err
			}
			elems[i] = ty
		}
		return types.Tuple{Elems: elems}, nil

	case ast.RecordTypeExpr:
		fields := make(map[string]types.Type, len(t.Fields))
		for _, f := range t.Fields {
			ty, err := h.evalTypeExpr(sc, f.Type)
			if err != nil {
				return nil, err
			}
			fields[f.Name] = ty
		}
		return types.Record{Fields: fields}, nil

	case ast.FuncTypeExpr:
		params := make([]types.Param, len(t.Params))
		for i, p := range t.Params {
			ty, err := h.evalTypeExpr(sc, p.Type)
			if err != nil {
				return nil, err
			}
			params[i] = types.Param{Name: p.Name, Type: ty, Rest: p.Rest, Default: p.Default}
		}
		ret, err := h.evalTypeExpr(sc, t.Return)
		if err != nil {
			return nil, err
		}
		return types.Func{Params: params, Return: ret}, nil

	case ast.UnionTypeExpr:
		of := make([]types.Type, len(t.Of))
		for i, e := range t.Of {
			ty, err := h.evalTypeExpr(sc, e)
			if err != nil {
				return nil, err
			}
			of[i] = ty
		}
		return types.NewUnion(of...), nil

	case ast.IntersectionTypeExpr:
		of := make([]types.Type, len(t.Of))
		for i, e := range t.Of {
			ty, err := h.evalTypeExpr(sc, e)
			if err != nil {
				return nil, err
			}
			of[i] = ty
		}
		return types.NewIntersection(of...), nil

	default:
		return nil, diag.New(te.Pos(), "unsupported type expression")
	}
}
