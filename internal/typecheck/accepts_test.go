package typecheck

import (
	"testing"

	"github.com/funvibe/snek/internal/types"
	"github.com/funvibe/snek/internal/values"
)

func TestAcceptsPrimitives(t *testing.T) {
	if !Accepts(types.Primitive{Kind: types.PrimInt}, values.Int{Value: 1}) {
		t.Errorf("Int should accept Int(1)")
	}
	if Accepts(types.Primitive{Kind: types.PrimInt}, values.NewStr("x")) {
		t.Errorf("Int should not accept Str")
	}
	if !Accepts(types.Primitive{Kind: types.PrimNum}, values.Float{Value: 1.5}) {
		t.Errorf("Num should accept Float")
	}
}

func TestAcceptsAny(t *testing.T) {
	if !Accepts(types.Any{}, values.Null{}) {
		t.Errorf("Any should accept Null")
	}
}

func TestAcceptsStrLiteral(t *testing.T) {
	ty := types.StrLiteral{Value: "ok"}
	if !Accepts(ty, values.NewStr("ok")) {
		t.Errorf("StrLiteral(ok) should accept Str(ok)")
	}
	if Accepts(ty, values.NewStr("no")) {
		t.Errorf("StrLiteral(ok) should not accept Str(no)")
	}
}

func TestAcceptsListElementwise(t *testing.T) {
	ty := types.List{Elem: types.Primitive{Kind: types.PrimInt}}
	good := values.List{Elems: []values.Value{values.Int{Value: 1}, values.Int{Value: 2}}}
	bad := values.List{Elems: []values.Value{values.Int{Value: 1}, values.NewStr("x")}}
	if !Accepts(ty, good) {
		t.Errorf("Int[] should accept [1, 2]")
	}
	if Accepts(ty, bad) {
		t.Errorf("Int[] should not accept [1, \"x\"]")
	}
}

func TestAcceptsRecordWidthSubtyping(t *testing.T) {
	ty := types.Record{Fields: map[string]types.Type{"name": types.Primitive{Kind: types.PrimStr}}}
	v := values.NewRecord([]string{"name", "age"}, map[string]values.Value{
		"name": values.NewStr("a"),
		"age":  values.Int{Value: 1},
	})
	if !Accepts(ty, v) {
		t.Errorf("{name: Str} should accept a record with an extra field")
	}
}

func TestAcceptsUnion(t *testing.T) {
	ty := types.NewUnion(types.Primitive{Kind: types.PrimInt}, types.Primitive{Kind: types.PrimStr})
	if !Accepts(ty, values.Int{Value: 1}) || !Accepts(ty, values.NewStr("x")) {
		t.Errorf("Int|Str should accept both Int and Str values")
	}
	if Accepts(ty, values.Bool{Value: true}) {
		t.Errorf("Int|Str should not accept Bool")
	}
}

func TestAcceptsFuncSignature(t *testing.T) {
	ty := types.Func{
		Params: []types.Param{{Name: "x", Type: types.Primitive{Kind: types.PrimInt}}},
		Return: types.Primitive{Kind: types.PrimInt},
	}
	fn := values.Func{
		Params: []values.FuncParam{{Name: "x", Type: types.Primitive{Kind: types.PrimNum}}},
		ReturnType: types.Primitive{Kind: types.PrimInt},
	}
	if !Accepts(ty, fn) {
		t.Errorf("(Int)->Int should accept a function declared as (Num)->Int")
	}
}
