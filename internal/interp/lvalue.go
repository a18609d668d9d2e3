package interp

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/values"
)

// assign dispatches the LValue protocol of spec §4.D/§4.E: Identifier
// binds a fresh variable (single-assignment), ListLiteral destructures a
// List value element-wise, RecordLiteral destructures a Record value
// field-wise.
func (h *Host) assign(target ast.LValue, sc *scope.Scope, v values.Value) *diag.Error {
	switch t := target.(type) {
	case ast.Identifier:
		if !sc.BindVariable(t.Name, v, false) {
			return diag.New(t.Pos(), "Variable `%s` has already been defined", t.Name)
		}
		return nil

	case ast.ListLiteral:
		list, ok := v.(values.List)
		if !ok {
			return diag.NewTypeError(t.Pos(), "cannot destructure %s as a list", v.Kind())
		}
		if t.Rest == nil {
			if len(list.Elems) != len(t.Elems) {
				return diag.NewTypeError(t.Pos(), "expected %d elements, got %d", len(t.Elems), len(list.Elems))
			}
		} else if len(list.Elems) < len(t.Elems) {
			return diag.NewTypeError(t.Pos(), "expected at least %d elements, got %d", len(t.Elems), len(list.Elems))
		}
		for i, elemTarget := range t.Elems {
			lv, ok := elemTarget.(ast.LValue)
			if !ok {
				return diag.New(elemTarget.Pos(), "invalid assignment target")
			}
			if err := h.assign(lv, sc, list.Elems[i]); err != nil {
				return err
			}
		}
		if t.Rest != nil {
			rest := append([]values.Value{}, list.Elems[len(t.Elems):]...)
			if !sc.BindVariable(t.Rest.Name, values.List{Elems: rest}, false) {
				return diag.New(t.Rest.Pos(), "Variable `%s` has already been defined", t.Rest.Name)
			}
		}
		return nil

	case ast.RecordLiteral:
		rec, ok := v.(values.Record)
		if !ok {
			return diag.NewTypeError(t.Pos(), "cannot destructure %s as a record", v.Kind())
		}
		for _, f := range t.Fields {
			fv, present := rec.Fields[f.Name]
			if !present {
				return diag.NewDomainError(t.Pos(), "record does not have field `%s`", f.Name)
			}
			target := f.Value
			if target == nil {
				target = ast.Identifier{Name: f.Name}
			}
			lv, ok := target.(ast.LValue)
			if !ok {
				return diag.New(t.Pos(), "invalid assignment target")
			}
			if err := h.assign(lv, sc, fv); err != nil {
				return err
			}
		}
		return nil

	default:
		return diag.New(target.Pos(), "invalid assignment target")
	}
}
