package scope

import (
	"testing"

	"github.com/funvibe/snek/internal/types"
	"github.com/funvibe/snek/internal/values"
)

func TestLookupFallsThroughToParent(t *testing.T) {
	root := New(nil)
	root.BindVariable("x", values.Int{Value: 1}, false)
	child := New(root)
	v, ok := child.LookupVariable("x")
	if !ok || !v.Equal(values.Int{Value: 1}) {
		t.Errorf("child scope should see parent's binding")
	}
}

func TestChildShadowsParent(t *testing.T) {
	root := New(nil)
	root.BindVariable("x", values.Int{Value: 1}, false)
	child := New(root)
	child.BindVariable("x", values.Int{Value: 2}, false)
	v, _ := child.LookupVariable("x")
	if !v.Equal(values.Int{Value: 2}) {
		t.Errorf("child's own binding should shadow the parent's")
	}
	pv, _ := root.LookupVariable("x")
	if !pv.Equal(values.Int{Value: 1}) {
		t.Errorf("parent's binding should be unaffected by the child's shadow")
	}
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	root := New(nil)
	if _, ok := root.LookupVariable("nope"); ok {
		t.Errorf("lookup of an unbound name should report false")
	}
}

func TestHasOwnVariableDoesNotSeeParent(t *testing.T) {
	root := New(nil)
	root.BindVariable("x", values.Null{}, false)
	child := New(root)
	if child.HasOwnVariable("x") {
		t.Errorf("HasOwnVariable should not see the parent's binding")
	}
	if !root.HasOwnVariable("x") {
		t.Errorf("HasOwnVariable should see the scope's own binding")
	}
}

func TestIterExportedVariablesSkipsPrivate(t *testing.T) {
	root := New(nil)
	root.BindVariable("pub", values.Int{Value: 1}, true)
	root.BindVariable("priv", values.Int{Value: 2}, false)
	seen := map[string]bool{}
	for name := range root.IterExportedVariables {
		seen[name] = true
	}
	if !seen["pub"] || seen["priv"] {
		t.Errorf("IterExportedVariables should only yield exported names, got %v", seen)
	}
}

func TestBindVariableRejectsRebind(t *testing.T) {
	root := New(nil)
	if !root.BindVariable("x", values.Int{Value: 1}, false) {
		t.Fatalf("first bind of x should succeed")
	}
	if root.BindVariable("x", values.Int{Value: 2}, false) {
		t.Errorf("rebinding x in the same scope should fail (single assignment)")
	}
	v, _ := root.LookupVariable("x")
	if !v.Equal(values.Int{Value: 1}) {
		t.Errorf("failed rebind should not alter the existing binding")
	}
}

func TestTypeBindingAndLookup(t *testing.T) {
	root := New(nil)
	root.BindType("MyInt", types.Primitive{Kind: types.PrimInt}, true)
	ty, ok := root.LookupType("MyInt")
	if !ok || ty.String() != "Int" {
		t.Errorf("expected to look up bound type alias MyInt as Int")
	}
}
