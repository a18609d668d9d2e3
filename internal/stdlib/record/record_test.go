package record

import (
	"testing"

	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/interp"
	"github.com/funvibe/snek/internal/values"
)

func TestRegisterBindsKeysAndHas(t *testing.T) {
	h := interp.NewHost(nil)
	modScope := Register(h)

	for _, name := range []string{"keys", "has"} {
		if _, ok := modScope.LookupVariable(name); !ok {
			t.Errorf("expected %s to be registered", name)
		}
	}
}

func TestKeysReturnsSortedFieldNames(t *testing.T) {
	h := interp.NewHost(nil)
	modScope := Register(h)
	fnVal, _ := modScope.LookupVariable("keys")
	fn := fnVal.(values.Func)

	rec := values.NewRecord([]string{"zebra", "apple"}, map[string]values.Value{
		"zebra": values.Int{Value: 1}, "apple": values.Int{Value: 2},
	})
	result, err := h.CallFunction(fn, []values.Value{rec}, diag.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := result.(values.List)
	if len(list.Elems) != 2 || list.Elems[0].(values.Str).Raw() != "apple" || list.Elems[1].(values.Str).Raw() != "zebra" {
		t.Errorf("got %v", list)
	}
}

func TestHasReportsFieldPresence(t *testing.T) {
	h := interp.NewHost(nil)
	modScope := Register(h)
	fnVal, _ := modScope.LookupVariable("has")
	fn := fnVal.(values.Func)

	rec := values.NewRecord([]string{"n"}, map[string]values.Value{"n": values.NewStr("x")})

	present, err := h.CallFunction(fn, []values.Value{rec, values.NewStr("n")}, diag.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !present.(values.Bool).Value {
		t.Error("expected has(r, \"n\") to be true")
	}

	absent, err := h.CallFunction(fn, []values.Value{rec, values.NewStr("missing")}, diag.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absent.(values.Bool).Value {
		t.Error("expected has(r, \"missing\") to be false")
	}
}

func TestHasRejectsNonRecordArgument(t *testing.T) {
	h := interp.NewHost(nil)
	modScope := Register(h)
	fnVal, _ := modScope.LookupVariable("has")
	fn := fnVal.(values.Func)

	_, err := h.CallFunction(fn, []values.Value{values.Int{Value: 1}, values.NewStr("n")}, diag.Position{})
	if err == nil {
		t.Fatal("expected type error for non-record argument")
	}
}
