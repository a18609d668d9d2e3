// Package typecheck implements the value-inhabits-type half of spec §4.B:
// "does this runtime value belong to that structural type?" It sits above
// both internal/types and internal/values rather than inside either one,
// mirroring how the teacher keeps internal/typesystem (pure type algebra)
// separate from internal/evaluator (where values get matched against
// declared types at call sites and bindings) — see DESIGN.md.
package typecheck

import (
	"github.com/funvibe/snek/internal/types"
	"github.com/funvibe/snek/internal/values"
)

// Accepts reports whether v inhabits t, per spec §4.B. It type-switches
// on both t and v directly rather than routing back through
// types.Type.AcceptsType, because that method only compares two
// Type descriptions — it has no way to look inside a values.Value.
func Accepts(t types.Type, v values.Value) bool {
	switch ty := t.(type) {
	case types.Any:
		return true

	case types.Primitive:
		return acceptsPrimitive(ty, v)

	case types.StrLiteral:
		s, ok := v.(values.Str)
		return ok && s.Raw() == ty.Value

	case types.List:
		l, ok := v.(values.List)
		if !ok {
			return false
		}
		for _, elem := range l.Elems {
			if !Accepts(ty.Elem, elem) {
				return false
			}
		}
		return true

	case types.Tuple:
		l, ok := v.(values.List)
		if !ok || len(l.Elems) != len(ty.Elems) {
			return false
		}
		for i, elemType := range ty.Elems {
			if !Accepts(elemType, l.Elems[i]) {
				return false
			}
		}
		return true

	case types.Record:
		r, ok := v.(values.Record)
		if !ok {
			return false
		}
		for name, fieldType := range ty.Fields {
			fv, present := r.Fields[name]
			if !present || !Accepts(fieldType, fv) {
				return false
			}
		}
		return true

	case types.Func:
		f, ok := v.(values.Func)
		if !ok {
			return false
		}
		return ty.AcceptsType(funcSignature(f))

	case types.Union:
		for _, alt := range ty.Of {
			if Accepts(alt, v) {
				return true
			}
		}
		return false

	case types.Intersection:
		for _, member := range ty.Of {
			if !Accepts(member, v) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func acceptsPrimitive(p types.Primitive, v values.Value) bool {
	switch p.Kind {
	case types.PrimBool:
		_, ok := v.(values.Bool)
		return ok
	case types.PrimInt:
		_, ok := v.(values.Int)
		return ok
	case types.PrimFloat:
		_, ok := v.(values.Float)
		return ok
	case types.PrimNum:
		switch v.(type) {
		case values.Int, values.Float:
			return true
		default:
			return false
		}
	case types.PrimStr:
		_, ok := v.(values.Str)
		return ok
	case types.PrimBin:
		_, ok := v.(values.Bin)
		return ok
	case types.PrimVoid:
		_, ok := v.(values.Null)
		return ok
	default:
		return false
	}
}

// funcSignature reconstructs the declared types.Func signature of a
// values.Func so a Func-type's own (type-to-type) AcceptsType logic —
// contravariant params, covariant return, arity compatibility — can be
// reused instead of duplicated here.
func funcSignature(f values.Func) types.Func {
	params := make([]types.Param, len(f.Params))
	for i, p := range f.Params {
		params[i] = types.Param{
			Name:    p.Name,
			Type:    p.Type,
			Rest:    p.Rest,
			Default: p.Default != nil,
		}
	}
	ret := f.ReturnType
	if ret == nil {
		ret = types.Any{}
	}
	return types.Func{Params: params, Return: ret}
}
