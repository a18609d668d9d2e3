package values

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// assertStringRoundTrip fails with a readable unified diff (rather than a
// bare got/want dump) when v.String() doesn't match want, the way
// termfx-morfx's util.Diff helps a reviewer spot the differing line in a
// large rendered value.
func assertStringRoundTrip(t *testing.T, v Value, want string) {
	t.Helper()
	got := v.String()
	if got == want {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	t.Fatalf("String() mismatch:\n%s", text)
}

func TestRecordStringRoundTripDiff(t *testing.T) {
	r := NewRecord([]string{"b", "a", "c"}, map[string]Value{
		"b": Int{Value: 2}, "a": Int{Value: 1}, "c": List{Elems: []Value{NewStr("x"), NewStr("y")}},
	})
	assertStringRoundTrip(t, r, `{a: 1, b: 2, c: ["x", "y"]}`)
}
