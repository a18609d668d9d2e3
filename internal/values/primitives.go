package values

import (
	"math"
	"strconv"

	"github.com/funvibe/snek/internal/types"
)

// Null is the sole inhabitant of the Void type.
type Null struct{}

func (Null) Kind() Kind                      { return NullKind }
func (Null) TypeOf(h TypeHost) types.Type    { return h.VoidType() }
func (Null) String() string                  { return "null" }
func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

// Bool is a boolean value.
type Bool struct {
	Value bool
}

func (b Bool) Kind() Kind                   { return BoolKind }
func (b Bool) TypeOf(h TypeHost) types.Type { return h.BoolType() }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && o.Value == b.Value
}

// Int is a 64-bit signed integer.
type Int struct {
	Value int64
}

func (i Int) Kind() Kind                   { return IntKind }
func (i Int) TypeOf(h TypeHost) types.Type { return h.IntType() }
func (i Int) String() string               { return strconv.FormatInt(i.Value, 10) }

// Equal implements the spec §4.A cross-kind rule: Int(i) == Float(f) iff f
// is finite and equals i as a real number.
func (i Int) Equal(other Value) bool {
	switch o := other.(type) {
	case Int:
		return o.Value == i.Value
	case Float:
		return !math.IsNaN(o.Value) && !math.IsInf(o.Value, 0) && float64(i.Value) == o.Value
	default:
		return false
	}
}

// Float is a 64-bit IEEE754 floating point number.
type Float struct {
	Value float64
}

func (f Float) Kind() Kind                   { return FloatKind }
func (f Float) TypeOf(h TypeHost) types.Type { return h.FloatType() }

// String renders the shortest lossless form (spec §4.A), with the forced
// ".0" suffix described in SPEC_FULL.md so Float and Int textual forms
// never collide (both being plain decimal digits would otherwise be
// indistinguishable, breaking the round-trip property of spec §8).
func (f Float) String() string {
	switch {
	case math.IsNaN(f.Value):
		return "nan"
	case math.IsInf(f.Value, 1):
		return "inf"
	case math.IsInf(f.Value, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	hasDotOrExp := false
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			hasDotOrExp = true
			break
		}
	}
	if !hasDotOrExp {
		s += ".0"
	}
	return s
}

// Equal is NaN-aware per IEEE754: NaN != NaN, including NaN != NaN.
func (f Float) Equal(other Value) bool {
	if math.IsNaN(f.Value) {
		return false
	}
	switch o := other.(type) {
	case Float:
		return !math.IsNaN(o.Value) && o.Value == f.Value
	case Int:
		return o.Equal(f)
	default:
		return false
	}
}
