package gomap

import (
	"testing"

	"github.com/abarnert/pathy/ir"

	"github.com/google/go-cmp/cmp"
)

func TestFromScalars(t *testing.T) {
	for _, tc := range []struct {
		in   any
		typ  ir.Type
		want string
	}{
		{nil, ir.NullType, ""},
		{true, ir.BoolType, ""},
		{"cat", ir.StringType, "cat"},
		{42, ir.NumberType, ""},
		{0.5, ir.NumberType, ""},
	} {
		node, err := From(tc.in)
		if err != nil {
			t.Fatalf("%v: %v", tc.in, err)
		}
		if node.Type != tc.typ {
			t.Errorf("%v: type = %v, want %v", tc.in, node.Type, tc.typ)
		}
		if tc.want != "" && node.String != tc.want {
			t.Errorf("%v: string = %q", tc.in, node.String)
		}
	}
}

func TestFromMapSorted(t *testing.T) {
	node, err := From(map[string]any{"z": 1, "a": 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 2 || node.Fields[0].String != "a" || node.Fields[1].String != "z" {
		t.Errorf("fields = %v", node.Fields)
	}
}

func TestFromIntKeyedMap(t *testing.T) {
	node, err := From(map[int64]any{2: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !node.IntKeyed() {
		t.Fatal("not int keyed")
	}
	v := ir.GetInt(node, 2)
	if v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("value under 2 = %v", v)
	}
}

func TestFromStruct(t *testing.T) {
	type shoe struct {
		Name string `json:"name"`
		Size int    `json:"size"`
	}
	node, err := From(shoe{Name: "boot", Size: 42})
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "name"); got == nil || got.String != "boot" {
		t.Errorf("name = %v", got)
	}
	if got := ir.Get(node, "size"); got == nil || got.Int64 == nil || *got.Int64 != 42 {
		t.Errorf("size = %v", got)
	}
}

func TestFromUnsupported(t *testing.T) {
	if _, err := From(make(chan int)); err == nil {
		t.Error("no error for chan")
	}
}

func TestRoundTrip(t *testing.T) {
	in := map[string]any{
		"name": "cat",
		"ids":  []any{int64(1), int64(2)},
		"tags": map[string]any{"color": "grey"},
		"none": nil,
	}
	node, err := From(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := To(node)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestToIntKeyed(t *testing.T) {
	node := ir.FromIntKeysMap(map[int64]*ir.Node{2: ir.FromInt(1)})
	out, err := To(node)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := out.(map[int64]any)
	if !ok {
		t.Fatalf("out is %T", out)
	}
	if m[2] != int64(1) {
		t.Errorf("m[2] = %v", m[2])
	}
}
