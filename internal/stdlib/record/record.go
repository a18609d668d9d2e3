// Package record is an illustrative host module exercising the
// host-extension contract end to end: a module built via
// interp.Host.CreateModule, importable like any other module, whose
// exported functions dispatch to Go callbacks rather than a statement
// tree. It is not a complete "record" library — spec.md explicitly
// scopes `record` (along with `io`/`debug`) out, except as a vehicle for
// demonstrating the host-extension mechanism itself.
package record

import (
	"sort"

	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/interp"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/values"
)

// Register builds and binds the record module into h's module cache
// under the canonical name "record", so `import {keys, has} from "record"`
// resolves to it.
func Register(h *interp.Host) *scope.Scope {
	return h.CreateModule("record", []interp.FuncDefinition{
		{
			Name:       "keys",
			Callback:   keysCallback,
			Params:     []ast.ParamSpec{{Name: "r", Type: recordTypeExpr()}},
			ReturnType: ast.ListTypeExpr{Elem: ast.NameTypeExpr{Name: "Str"}},
		},
		{
			Name:     "has",
			Callback: hasCallback,
			Params: []ast.ParamSpec{
				{Name: "r", Type: recordTypeExpr()},
				{Name: "k", Type: ast.NameTypeExpr{Name: "Str"}},
			},
			ReturnType: ast.NameTypeExpr{Name: "Bool"},
		},
	}, nil)
}

// recordTypeExpr denotes `{}`, the universal (field-less) record type:
// width subtyping means `{}` accepts any record value.
func recordTypeExpr() ast.TypeExpr {
	return ast.RecordTypeExpr{}
}

func keysCallback(h *interp.Host, msg *interp.Message) (values.Value, *diag.Error) {
	v, ok := msg.At(0)
	if !ok {
		return nil, diag.New(diag.Position{}, "keys: missing argument `r`")
	}
	rec, ok := v.(values.Record)
	if !ok {
		return nil, diag.NewTypeError(diag.Position{}, "keys: %s is not a record", v.Kind())
	}
	names := make([]string, 0, len(rec.Fields))
	for k := range rec.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	elems := make([]values.Value, len(names))
	for i, n := range names {
		elems[i] = values.NewStr(n)
	}
	return values.List{Elems: elems}, nil
}

func hasCallback(h *interp.Host, msg *interp.Message) (values.Value, *diag.Error) {
	v, ok := msg.At(0)
	if !ok {
		return nil, diag.New(diag.Position{}, "has: missing argument `r`")
	}
	rec, ok := v.(values.Record)
	if !ok {
		return nil, diag.NewTypeError(diag.Position{}, "has: %s is not a record", v.Kind())
	}
	key, ok := msg.AtStr(1)
	if !ok {
		return nil, diag.New(diag.Position{}, "has: missing argument `k`")
	}
	_, present := rec.Fields[key]
	return values.Bool{Value: present}, nil
}
