// Package values implements the runtime value model of spec §3/§4.A: a
// tagged variant over Null, Bool, Int, Float, Str, Bin, List, Record, Func,
// each immutable once constructed.
package values

// Kind tags the runtime variant a Value belongs to, mirroring the
// teacher's ObjectType string constants (internal/evaluator/object.go) but
// as a small int enum, since nothing here needs ObjectType's string form
// for trait-dispatch keys the way the teacher does.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StrKind
	BinKind
	ListKind
	RecordKind
	FuncKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case BoolKind:
		return "Bool"
	case IntKind:
		return "Int"
	case FloatKind:
		return "Float"
	case StrKind:
		return "Str"
	case BinKind:
		return "Bin"
	case ListKind:
		return "List"
	case RecordKind:
		return "Record"
	case FuncKind:
		return "Func"
	default:
		return "?"
	}
}
