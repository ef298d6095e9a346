package libdiff

import (
	"testing"

	"github.com/abarnert/pathy/decode"
	"github.com/abarnert/pathy/encode"
	"github.com/abarnert/pathy/ir"
)

func mustDecode(t *testing.T, d string) *ir.Node {
	t.Helper()
	node, err := decode.Decode([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func wire(node *ir.Node) string {
	return encode.MustString(node, encode.EncodeWire(true))
}

func TestDiffEqual(t *testing.T) {
	a := mustDecode(t, `{"name": "cat", "ids": [1, 2]}`)
	b := mustDecode(t, `{"ids": [1, 2], "name": "cat"}`)
	if d := Diff(a, b); d != nil {
		t.Errorf("diff of equal trees = %s", wire(d))
	}
}

func TestDiffScalarReplace(t *testing.T) {
	d := Diff(ir.FromInt(1), ir.FromInt(2))
	if got := wire(d); got != `{"-":1,"+":2}` {
		t.Errorf("diff = %s", got)
	}
}

func TestDiffObjectFields(t *testing.T) {
	a := mustDecode(t, `{"keep": 1, "drop": 2, "change": 3}`)
	b := mustDecode(t, `{"keep": 1, "change": 4, "add": 5}`)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("nil diff")
	}
	if got := wire(ir.Get(d, "drop")); got != `{"-":2}` {
		t.Errorf("drop = %s", got)
	}
	if got := wire(ir.Get(d, "add")); got != `{"+":5}` {
		t.Errorf("add = %s", got)
	}
	if got := wire(ir.Get(d, "change")); got != `{"-":3,"+":4}` {
		t.Errorf("change = %s", got)
	}
	if got := ir.Get(d, "keep"); got != nil {
		t.Errorf("keep present: %s", wire(got))
	}
}

func TestDiffNested(t *testing.T) {
	a := mustDecode(t, `{"pet": {"name": "cat"}}`)
	b := mustDecode(t, `{"pet": {"name": "dog"}}`)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("nil diff")
	}
	if got := wire(ir.Get(ir.Get(d, "pet"), "name")); got != `{"-":"cat","+":"dog"}` {
		t.Errorf("nested = %s", got)
	}
}

func TestDiffArrayOps(t *testing.T) {
	a := mustDecode(t, `[1, 2, 3]`)
	b := mustDecode(t, `[1, 3, 4]`)
	d := DiffArray(a, b, Diff)
	if d == nil || d.Type != ir.ArrayType {
		t.Fatalf("diff = %v", d)
	}
	if len(d.Values) != 2 {
		t.Fatalf("%d ops: %s", len(d.Values), wire(d))
	}
	if got := wire(d.Values[0]); got != `{"at":1,"-":2}` {
		t.Errorf("op 0 = %s", got)
	}
	if got := wire(d.Values[1]); got != `{"at":2,"+":4}` {
		t.Errorf("op 1 = %s", got)
	}
}

func TestDiffArrayByKey(t *testing.T) {
	a := mustDecode(t, `[{"id": 1, "v": "x"}, {"id": 2, "v": "y"}]`)
	b := mustDecode(t, `[{"id": 2, "v": "y"}, {"id": 1, "v": "z"}]`)
	d, err := DiffArrayByKey(a, b, "id", Diff)
	if err != nil {
		t.Fatal(err)
	}
	if d == nil || len(d.Values) != 1 {
		t.Fatalf("diff = %v", d)
	}
	item := d.Values[0]
	if got := ir.Get(item, "id"); got == nil || got.Int64 == nil || *got.Int64 != 1 {
		t.Errorf("id = %v", got)
	}
	if got := wire(ir.Get(item, "v")); got != `{"-":"x","+":"z"}` {
		t.Errorf("v = %s", got)
	}
}

func TestDiffArrayByKeyMissingKey(t *testing.T) {
	a := mustDecode(t, `[{"id": 1}]`)
	b := mustDecode(t, `[{"nope": 1}]`)
	if _, err := DiffArrayByKey(a, b, "id", Diff); err == nil {
		t.Error("no error for missing key")
	}
}
