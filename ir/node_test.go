package ir

import (
	"testing"
)

func TestGet(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"a": FromString("x"),
		"b": FromInt(2),
	})
	if v := Get(obj, "a"); v == nil || v.String != "x" {
		t.Errorf("Get(a) = %v", v)
	}
	if v := Get(obj, "b"); v == nil || v.Int64 == nil || *v.Int64 != 2 {
		t.Errorf("Get(b) = %v", v)
	}
	if v := Get(obj, "c"); v != nil {
		t.Errorf("Get(c) = %v, want nil", v)
	}
}

func TestGetInt(t *testing.T) {
	obj := FromIntKeysMap(map[int64]*Node{
		2: FromInt(1),
		7: FromString("x"),
	})
	if !obj.IntKeyed() {
		t.Fatal("expected int-keyed object")
	}
	if v := GetInt(obj, 2); v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("GetInt(2) = %v", v)
	}
	if v := GetInt(obj, 3); v != nil {
		t.Errorf("GetInt(3) = %v, want nil", v)
	}
	// string lookup on an int-keyed object finds nothing
	if v := Get(obj, "2"); v != nil {
		t.Errorf("Get(%q) = %v, want nil", "2", v)
	}
}

func TestFromMapOrder(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	want := []string{"a", "b", "c"}
	for i, f := range obj.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
	}
}

func TestFromKeyValsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("z"), Val: FromInt(1)},
		{Key: FromString("a"), Val: FromInt(2)},
	})
	if obj.Fields[0].String != "z" || obj.Fields[1].String != "a" {
		t.Errorf("FromKeyVals reordered fields: %q, %q",
			obj.Fields[0].String, obj.Fields[1].String)
	}
	if obj.Values[0].ParentField != "z" {
		t.Errorf("ParentField = %q, want z", obj.Values[0].ParentField)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"things": FromSlice([]*Node{FromInt(1), FromInt(2)}),
	})
	cp := orig.Clone()
	cp.Values[0].Values[0].Int64 = nil
	cp.Values[0].Values[0].Type = NullType
	if orig.Values[0].Values[0].Type != NumberType {
		t.Error("mutating clone changed original")
	}
	if Compare(orig, orig.Clone()) != 0 {
		t.Error("clone compares unequal to original")
	}
}

func TestPath(t *testing.T) {
	root := FromMap(map[string]*Node{
		"things": FromSlice([]*Node{
			FromMap(map[string]*Node{"id": FromInt(0)}),
		}),
	})
	tests := []struct {
		node *Node
		want string
	}{
		{root, "$"},
		{root.Values[0], "$.things"},
		{root.Values[0].Values[0], "$.things[0]"},
		{root.Values[0].Values[0].Values[0], "$.things[0].id"},
	}
	for _, tc := range tests {
		if got := tc.node.Path(); got != tc.want {
			t.Errorf("Path() = %q, want %q", got, tc.want)
		}
	}
}

func TestVisit(t *testing.T) {
	root := FromSlice([]*Node{
		FromInt(1),
		FromSlice([]*Node{FromInt(2), FromInt(3)}),
	})
	count := 0
	err := root.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("visited %d nodes, want 5", count)
	}
}
