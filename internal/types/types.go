// Package types implements the structural type model of spec §4.B: the
// seven type constructors and type-to-type Accepts (assignability).
//
// This package never imports package values: Accepts(value) — "does this
// runtime value inhabit the type?" — lives in package typecheck instead,
// which imports both types and values. Keeping the check there (rather
// than on Type itself) mirrors the teacher's own layering: internal/
// typesystem never imports internal/evaluator; value-vs-type matching
// lives beside the evaluator. See DESIGN.md.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the interface every type constructor implements.
type Type interface {
	// String renders the type in Snek's surface syntax (spec §4.B):
	// E[], [T1, T2], {k: T, ...}, (p: T, ...) -> R, A | B, A & B.
	String() string

	// AcceptsType answers "is an expression of type other safely
	// assignable here?" — width-subtyping, covariant, checked at call
	// sites and assignments (spec §4.B).
	AcceptsType(other Type) bool
}

// Param is a function parameter: a name, a type, and the two optional
// flags from spec §3 (Parameter).
type Param struct {
	Name    string
	Type    Type
	Rest    bool // collects remaining positional arguments into a list
	Default bool // true if a default value is supplied (value lives in values.Func.Params)
}

// Any accepts every value and every type.
type Any struct{}

func (Any) String() string             { return "Any" }
func (Any) AcceptsType(other Type) bool { return true }

// Primitive is one of Bool, Int, Float, Num, Str, Bin, Void.
type Primitive struct {
	Kind PrimKind
}

func (p Primitive) String() string { return p.Kind.String() }

func (p Primitive) AcceptsType(other Type) bool {
	if o, ok := other.(Primitive); ok {
		if p.Kind == PrimNum {
			return o.Kind == PrimNum || o.Kind == PrimInt || o.Kind == PrimFloat
		}
		return p.Kind == o.Kind
	}
	return acceptsViaRight(p, other)
}

// StrLiteral accepts only the string value equal to its field, or the
// identical literal type.
type StrLiteral struct {
	Value string
}

func (s StrLiteral) String() string { return fmt.Sprintf("%q", s.Value) }

func (s StrLiteral) AcceptsType(other Type) bool {
	if o, ok := other.(StrLiteral); ok {
		return s.Value == o.Value
	}
	return acceptsViaRight(s, other)
}

// List is a homogeneous sequence type: element-type E.
type List struct {
	Elem Type
}

func (l List) String() string { return l.Elem.String() + "[]" }

func (l List) AcceptsType(other Type) bool {
	switch o := other.(type) {
	case List:
		return l.Elem.AcceptsType(o.Elem)
	case Tuple:
		// A Tuple(Ts) value-type is accepted by List(E) iff every Ti <= E.
		for _, t := range o.Elems {
			if !l.Elem.AcceptsType(t) {
				return false
			}
		}
		return true
	default:
		return acceptsViaRight(l, other)
	}
}

// Tuple is a fixed-length, heterogeneous sequence type.
type Tuple struct {
	Elems []Type
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (t Tuple) AcceptsType(other Type) bool {
	if o, ok := other.(Tuple); ok {
		if len(t.Elems) != len(o.Elems) {
			return false
		}
		for i := range t.Elems {
			if !t.Elems[i].AcceptsType(o.Elems[i]) {
				return false
			}
		}
		return true
	}
	return acceptsViaRight(t, other)
}

// Record is a structural record type: field name -> field type.
// Width subtyping: extra fields in an accepted value/type are permitted;
// missing declared fields are a rejection.
type Record struct {
	Fields map[string]Type
}

func (r Record) String() string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", fieldKey(k), r.Fields[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func fieldKey(k string) string {
	if isIdentifier(k) {
		return k
	}
	return fmt.Sprintf("%q", k)
}

func isIdentifier(s string) bool {
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

func (r Record) AcceptsType(other Type) bool {
	if o, ok := other.(Record); ok {
		for name, ft := range r.Fields {
			of, present := o.Fields[name]
			if !present || !ft.AcceptsType(of) {
				return false
			}
		}
		return true
	}
	return acceptsViaRight(r, other)
}

// Func is a function type: parameter list plus return type. Matching
// accounts for arity-compatibility with defaults and a trailing rest
// parameter, contravariant parameters, covariant return (spec §4.B).
type Func struct {
	Params []Param
	Return Type
}

func (f Func) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		s := p.Name + ": " + p.Type.String()
		if p.Rest {
			s = "..." + s
		} else if p.Default {
			s += "?"
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + f.Return.String()
}

func (f Func) AcceptsType(other Type) bool {
	o, ok := other.(Func)
	if !ok {
		return acceptsViaRight(f, other)
	}
	if !funcArityCompatible(f.Params, o.Params) {
		return false
	}
	n := len(f.Params)
	if len(o.Params) < n {
		n = len(o.Params)
	}
	for i := 0; i < n; i++ {
		// Contravariant: the target's parameter type must be accepted by
		// the candidate's parameter type.
		if !o.Params[i].Type.AcceptsType(f.Params[i].Type) {
			return false
		}
	}
	return f.Return.AcceptsType(o.Return)
}

// funcArityCompatible checks that a function whose declared signature is
// candidate can be called everywhere a function with signature target is
// expected: candidate must never demand more required arguments than
// target guarantees, and must be able to absorb every call shape target
// allows (bounded by target's parameter count, or unbounded if target
// ends in a rest parameter).
func funcArityCompatible(target, candidate []Param) bool {
	if requiredCount(candidate) > requiredCount(target) {
		return false
	}
	hasRestTarget := len(target) > 0 && target[len(target)-1].Rest
	hasRestCandidate := len(candidate) > 0 && candidate[len(candidate)-1].Rest
	if hasRestTarget {
		return hasRestCandidate
	}
	if hasRestCandidate {
		return true
	}
	return len(candidate) >= len(target)
}

func requiredCount(ps []Param) int {
	n := 0
	for _, p := range ps {
		if !p.Rest && !p.Default {
			n++
		}
	}
	return n
}

// Union accepts iff any member accepts (spec §4.B).
type Union struct {
	Of []Type
}

// NewUnion flattens nested unions of the same kind, mirroring the
// teacher's NormalizeUnion but without string-based dedup: Snek unions are
// small and explicit (hand-written by the programmer, never synthesized
// by inference), so flattening alone is enough — see DESIGN.md.
func NewUnion(of ...Type) Type {
	flat := make([]Type, 0, len(of))
	for _, t := range of {
		if u, ok := t.(Union); ok {
			flat = append(flat, u.Of...)
		} else {
			flat = append(flat, t)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Union{Of: flat}
}

func (u Union) String() string {
	parts := make([]string, len(u.Of))
	for i, t := range u.Of {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}

func (u Union) AcceptsType(other Type) bool {
	if o, ok := other.(Union); ok {
		// Union on the right is accepted iff every alternative is
		// accepted by the left.
		for _, t := range o.Of {
			if !u.AcceptsType(t) {
				return false
			}
		}
		return true
	}
	for _, t := range u.Of {
		if t.AcceptsType(other) {
			return true
		}
	}
	return false
}

// Intersection accepts iff every member accepts (spec §4.B).
type Intersection struct {
	Of []Type
}

func NewIntersection(of ...Type) Type {
	flat := make([]Type, 0, len(of))
	for _, t := range of {
		if in, ok := t.(Intersection); ok {
			flat = append(flat, in.Of...)
		} else {
			flat = append(flat, t)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Intersection{Of: flat}
}

func (in Intersection) String() string {
	parts := make([]string, len(in.Of))
	for i, t := range in.Of {
		parts[i] = t.String()
	}
	return strings.Join(parts, " & ")
}

func (in Intersection) AcceptsType(other Type) bool {
	for _, t := range in.Of {
		if !t.AcceptsType(other) {
			return false
		}
	}
	return true
}

// acceptsViaRight handles the two constructors whose acceptance can be
// driven entirely by the right-hand side regardless of the left's own
// concrete kind: Any always accepts, and a Union/Intersection on the right
// needs to be unpacked pointwise even when the left isn't itself a
// Union/Intersection.
func acceptsViaRight(left Type, other Type) bool {
	switch o := other.(type) {
	case Any:
		// Any on the right is only accepted by Any on the left; Any was
		// already handled by Any.AcceptsType, so reaching here means the
		// left is some other concrete type, which does not accept Any.
		_ = o
		return false
	case Union:
		for _, t := range o.Of {
			if !left.AcceptsType(t) {
				return false
			}
		}
		return true
	case Intersection:
		for _, t := range o.Of {
			if left.AcceptsType(t) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
