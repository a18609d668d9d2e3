package interp

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/values"
)

// HostCallback is the native side of the function-invocation protocol
// (spec §4.F/§6): given the already-arity-checked, already-type-checked
// argument Message, produce a result or an error.
type HostCallback func(h *Host, msg *Message) (values.Value, *diag.Error)

// FuncDefinition describes one host-provided function for CreateModule:
// its declared signature (used for the same contravariant-parameter,
// arity, and return-type checks a Snek-defined function gets) and the
// native implementation backing it.
type FuncDefinition struct {
	Name       string
	Callback   HostCallback
	Params     []ast.ParamSpec
	ReturnType ast.TypeExpr // nil means Any
}

// TypeDefinition describes one host-provided type alias for CreateModule.
type TypeDefinition struct {
	Name string
	Type ast.TypeExpr
}

// Message is the argument bundle a HostCallback receives: positional
// access by index and by declared parameter name, plus typed
// conveniences for the primitive kinds a host extension most commonly
// wants (spec §4.F "host extension contract").
type Message struct {
	Name   string
	args   []values.Value
	byName map[string]values.Value
}

// At returns the i'th positional argument.
func (m *Message) At(i int) (values.Value, bool) {
	if i < 0 || i >= len(m.args) {
		return nil, false
	}
	return m.args[i], true
}

// Get returns the argument bound to parameter name.
func (m *Message) Get(name string) (values.Value, bool) {
	v, ok := m.byName[name]
	return v, ok
}

// Len reports the number of positional arguments (including any
// collected into a trailing rest parameter as a single List).
func (m *Message) Len() int { return len(m.args) }

// AtInt is a typed convenience over At, for callbacks that know their
// i'th parameter is declared Int.
func (m *Message) AtInt(i int) (int64, bool) {
	v, ok := m.At(i)
	if !ok {
		return 0, false
	}
	iv, ok := v.(values.Int)
	if !ok {
		return 0, false
	}
	return iv.Value, true
}

// GetStr is a typed convenience over Get, for callbacks that know name is
// declared Str.
func (m *Message) GetStr(name string) (string, bool) {
	v, ok := m.Get(name)
	if !ok {
		return "", false
	}
	sv, ok := v.(values.Str)
	if !ok {
		return "", false
	}
	return sv.Raw(), true
}

// AtStr is a typed convenience over At.
func (m *Message) AtStr(i int) (string, bool) {
	v, ok := m.At(i)
	if !ok {
		return "", false
	}
	sv, ok := v.(values.Str)
	if !ok {
		return "", false
	}
	return sv.Raw(), true
}
