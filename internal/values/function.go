package values

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/types"
)

// Environment is the minimal surface a closed-over lexical scope must
// expose to the value model. Defined here rather than imported from
// package scope to keep the value model's only outward dependencies on
// types, ast, and diag — scope.Scope satisfies this interface structurally
// (scope imports values, not the other way around), the same trick
// TypeHost uses for interp.Host.
type Environment interface {
	LookupVariable(name string) (Value, bool)
}

// NativeFunc is the signature a host-provided builtin implements (spec
// §6, the function-invocation protocol's native side). It receives
// already-evaluated, already-typechecked arguments.
type NativeFunc func(args []Value) (Value, *diag.Error)

// FuncParam is a bound parameter of a Func value: name, declared type,
// rest/default flags per spec §3, plus the unevaluated default-value
// expression (evaluated lazily, in the closure's scope, on each call that
// omits the argument).
type FuncParam struct {
	Name    string
	Type    types.Type
	Rest    bool
	Default ast.Expr // nil when the parameter has no default
}

// Func is either a user-defined closure (Body set, evaluated against
// Captured extended with the call's arguments) or a host-provided native
// function (Native set). Exactly one of Body/Native is non-nil.
type Func struct {
	Params     []FuncParam
	ReturnType types.Type
	Body       ast.Node
	Captured   Environment
	Native     NativeFunc

	// DisplayName is used only for error messages and debugging output;
	// it does not participate in equality.
	DisplayName string
}

func (f Func) Kind() Kind { return FuncKind }

func (f Func) TypeOf(h TypeHost) types.Type {
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
		ret = h.AnyType()
	}
	return types.Func{Params: params, Return: ret}
}

func (f Func) String() string { return "<function>" }

// Equal always reports false: Snek functions carry no value identity a
// script can observe other than reference equality, and Func here is a
// plain struct rather than a pointer, so two Func values are never
// considered equal (spec §4.A).
func (f Func) Equal(other Value) bool { return false }
