package interp

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/types"
	"github.com/funvibe/snek/internal/values"
)

// resolveHostTypeExpr evaluates a host-supplied type expression against
// a fresh primordial scope: host modules declare signatures in terms of
// the primitive types only — neither the aliases CreateModule binds in the
// module's own scope nor a caller's local scope are visible here. Falls
// back to Any on error —
// a host module registering an invalid type expression is a programming
// error in the embedding application, not a Snek-program failure to
// surface through diag.Error.
func (h *Host) resolveHostTypeExpr(te ast.TypeExpr) types.Type {
	ty, err := h.evalTypeExpr(h.primordialScope(), te)
	if err != nil {
		return h.anyType
	}
	return ty
}

// buildNativeFunc turns a FuncDefinition into a values.Func whose Native
// field dispatches to Callback, with Params/ReturnType resolved against
// the primordial scope (spec §4.F "host extension contract").
func (h *Host) buildNativeFunc(fd FuncDefinition) values.Func {
	params := make([]values.FuncParam, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = values.FuncParam{
			Name: p.Name,
			Type: h.resolveHostTypeExpr(p.Type),
			Rest: p.Rest,
		}
		if p.Default != nil {
			params[i].Default = p.Default
		}
	}
	names := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		names[i] = p.Name
	}
	return values.Func{
		Params:      params,
		ReturnType:  h.resolveHostTypeExpr(fd.ReturnType),
		Native:      wrapCallback(h, fd.Name, names, fd.Callback),
		DisplayName: fd.Name,
		// Captured is only consulted to evaluate a defaulted parameter's
		// expression; host-defined defaults, if any, see the primordial
		// scope rather than a caller's local bindings.
		Captured: h.primordialScope(),
	}
}

// wrapCallback adapts a HostCallback (which takes the owning Host and a
// *Message) into a values.NativeFunc (which takes a plain argument
// slice), closing over h and the parameter names so Message.Get/GetStr
// work by name as well as by position.
func wrapCallback(h *Host, name string, paramNames []string, cb HostCallback) values.NativeFunc {
	return func(args []values.Value) (values.Value, *diag.Error) {
		byName := make(map[string]values.Value, len(args))
		for i, v := range args {
			if i < len(paramNames) {
				byName[paramNames[i]] = v
			}
		}
		return cb(h, &Message{Name: name, args: args, byName: byName})
	}
}
