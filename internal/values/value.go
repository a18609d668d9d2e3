package values

import "github.com/funvibe/snek/internal/types"

// TypeHost supplies the primordial type singletons a value needs to
// report its own type_of (spec §4.A). Defined here, not in package interp,
// so that values never imports interp — interp.Host implements TypeHost
// structurally. Mirrors the teacher's accessor pattern (evaluator.New()
// exposing primordials) without the import direction it would otherwise
// require.
type TypeHost interface {
	AnyType() types.Type
	BoolType() types.Type
	IntType() types.Type
	FloatType() types.Type
	NumType() types.Type
	StrType() types.Type
	BinType() types.Type
	VoidType() types.Type
}

// Value is the interface every runtime value variant implements (spec
// §3/§4.A). Values are immutable once constructed.
type Value interface {
	// Kind reports the runtime variant.
	Kind() Kind

	// TypeOf reports the most specific type inhabited by the value.
	TypeOf(h TypeHost) types.Type

	// String renders a human-readable, round-trip-oriented form (spec
	// §4.A).
	String() string

	// Equal implements the structural equality of spec §4.A.
	Equal(other Value) bool
}
