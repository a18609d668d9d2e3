package values

import (
	"sort"
	"strings"

	"github.com/funvibe/snek/internal/types"
)

// List is an ordered, homogeneous-by-convention sequence of values (spec
// §4.A). Snek lists are immutable once constructed: mutating operations
// in the interpreter build and bind a new List.
type List struct {
	Elems []Value
}

func (l List) Kind() Kind { return ListKind }

// TypeOf reports the Tuple of its elements' per-position types (spec
// §4.A), or Void[] for the empty list — there being no element to
// inspect.
func (l List) TypeOf(h TypeHost) types.Type {
	if len(l.Elems) == 0 {
		return types.List{Elem: h.VoidType()}
	}
	elemTypes := make([]types.Type, len(l.Elems))
	for i, e := range l.Elems {
		elemTypes[i] = e.TypeOf(h)
	}
	return types.Tuple{Elems: elemTypes}
}

func (l List) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(o.Elems) != len(l.Elems) {
		return false
	}
	for i, e := range l.Elems {
		if !e.Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// Record is an immutable, ordered map of field name to value. Keys is the
// insertion order the record literal was written in, kept alongside the
// map so IterFields walks fields in a stable order rather than in Go's
// randomized map iteration order (spec §4.A); String() sorts keys instead.
type Record struct {
	Fields map[string]Value
	Keys   []string
}

// NewRecord builds a Record, deriving Keys from the supplied order slice
// (the order fields appeared in the literal or were assembled in).
func NewRecord(order []string, fields map[string]Value) Record {
	keys := make([]string, len(order))
	copy(keys, order)
	return Record{Fields: fields, Keys: keys}
}

func (r Record) Kind() Kind { return RecordKind }

func (r Record) TypeOf(h TypeHost) types.Type {
	fields := make(map[string]types.Type, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v.TypeOf(h)
	}
	return types.Record{Fields: fields}
}

// String renders fields in sorted key order, independent of Keys: two
// records with the same fields read identically regardless of how they
// were built (spec §4.A — this governs display, not iteration order,
// which IterFields below preserves from Keys).
func (r Record) String() string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fieldKeyLiteral(k) + ": " + r.Fields[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func fieldKeyLiteral(k string) string {
	if isIdentifierKey(k) {
		return k
	}
	return NewStr(k).String()
}

func isIdentifierKey(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isAlpha := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isAlpha {
			return false
		}
		if i > 0 && !isAlpha && !isDigit {
			return false
		}
	}
	return true
}

// Equal requires an identical key set and pointwise-equal values (spec
// §4.A); field order is irrelevant to equality.
func (r Record) Equal(other Value) bool {
	o, ok := other.(Record)
	if !ok || len(o.Fields) != len(r.Fields) {
		return false
	}
	for k, v := range r.Fields {
		ov, present := o.Fields[k]
		if !present || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// IterFields walks fields in insertion order, as a Go 1.23 range-over-func
// iterator, for record-destructuring and host-side inspection.
func (r Record) IterFields(yield func(key string, val Value) bool) {
	for _, k := range r.Keys {
		if v, ok := r.Fields[k]; ok {
			if !yield(k, v) {
				return
			}
		}
	}
}
