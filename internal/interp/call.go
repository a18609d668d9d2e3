package interp

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/typecheck"
	"github.com/funvibe/snek/internal/values"
)

func (h *Host) evalCall(e ast.Call, sc *scope.Scope) (values.Value, *diag.Error) {
	calleeVal, err := h.eval(e.Callee, sc)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(values.Func)
	if !ok {
		return nil, diag.NewTypeError(e.Pos(), "%s is not callable", calleeVal.Kind())
	}
	args := make([]values.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := h.eval(a, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return h.CallFunction(fn, args, e.Pos())
}

// CallFunction applies the six-step call protocol of spec §4.F to a
// closure or host-native function fn with already-evaluated args.
func (h *Host) CallFunction(fn values.Func, args []values.Value, pos diag.Position) (values.Value, *diag.Error) {
	bound, err := h.bindArguments(fn, args, pos)
	if err != nil {
		return nil, err
	}

	var result values.Value
	if fn.Native != nil {
		positional := make([]values.Value, len(fn.Params))
		for i, p := range fn.Params {
			positional[i] = bound[p.Name]
		}
		result, err = fn.Native(positional)
		if err != nil {
			return nil, err
		}
	} else {
		callScope := scope.New(fn.Captured.(*scope.Scope))
		for name, v := range bound {
			callScope.BindVariable(name, v, false)
		}
		var ctx ExecContext
		h.execStatement(fn.Body.(ast.Stmt), callScope, &ctx)
		if ctx.Err != nil {
			return nil, ctx.Err
		}
		if ctx.Jump == JumpReturn {
			result = ctx.Value
			if result == nil {
				result = values.Null{}
			}
		} else {
			result = values.Null{}
		}
	}

	if fn.ReturnType != nil {
		if !typecheck.Accepts(fn.ReturnType, result) {
			return nil, diag.NewTypeError(pos, "%s cannot be assigned to %s", result.TypeOf(h), fn.ReturnType)
		}
	}
	return result, nil
}

// bindArguments builds the name -> value message map of spec §4.F step 1,
// enforcing arity (step 2) and per-parameter type acceptance (step 3).
func (h *Host) bindArguments(fn values.Func, args []values.Value, pos diag.Position) (map[string]values.Value, *diag.Error) {
	bound := make(map[string]values.Value, len(fn.Params))
	argi := 0
	for _, p := range fn.Params {
		if p.Rest {
			rest := make([]values.Value, 0, len(args)-argi)
			for ; argi < len(args); argi++ {
				rest = append(rest, args[argi])
			}
			bound[p.Name] = values.List{Elems: rest}
			continue
		}
		if argi < len(args) {
			v := args[argi]
			argi++
			if p.Type != nil && !typecheck.Accepts(p.Type, v) {
				return nil, diag.NewTypeError(pos, "%s cannot be assigned to %s", v.TypeOf(h), p.Type)
			}
			bound[p.Name] = v
			continue
		}
		if p.Default != nil {
			v, err := h.eval(p.Default, fn.Captured.(*scope.Scope))
			if err != nil {
				return nil, err
			}
			bound[p.Name] = v
			continue
		}
		return nil, diag.NewTypeError(pos, "Not enough arguments.")
	}
	if argi < len(args) {
		return nil, diag.NewTypeError(pos, "Too many arguments.")
	}
	return bound, nil
}
