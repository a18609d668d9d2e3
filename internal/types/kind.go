package types

// PrimKind enumerates the primitive type constructors of spec §3/§4.B.
type PrimKind int

const (
	PrimBool PrimKind = iota
	PrimInt
	PrimFloat
	PrimNum // Int | Float, derived union (spec §3)
	PrimStr
	PrimBin
	PrimVoid // inhabited only by Null
)

func (k PrimKind) String() string {
	switch k {
	case PrimBool:
		return "Bool"
	case PrimInt:
		return "Int"
	case PrimFloat:
		return "Float"
	case PrimNum:
		return "Num"
	case PrimStr:
		return "Str"
	case PrimBin:
		return "Bin"
	case PrimVoid:
		return "Void"
	default:
		return "?"
	}
}
