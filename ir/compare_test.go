package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"nil both", nil, nil, 0},
		{"nil left", nil, Null(), -1},
		{"null null", Null(), Null(), 0},
		{"null < bool", Null(), FromBool(false), -1},
		{"bool order", FromBool(false), FromBool(true), -1},
		{"int order", FromInt(1), FromInt(2), -1},
		{"int eq", FromInt(7), FromInt(7), 0},
		{"int < float", FromInt(2), FromFloat(1.0), -1},
		{"string order", FromString("a"), FromString("b"), -1},
		{"number < string", FromInt(99), FromString(""), -1},
		{
			"array elementwise",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(3)}),
			-1,
		},
		{
			"array length",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(1)}),
			-1,
		},
		{
			"object eq",
			FromMap(map[string]*Node{"a": FromInt(1)}),
			FromMap(map[string]*Node{"a": FromInt(1)}),
			0,
		},
		{
			"object by key",
			FromMap(map[string]*Node{"a": FromInt(1)}),
			FromMap(map[string]*Node{"b": FromInt(1)}),
			-1,
		},
		{
			"object by value",
			FromMap(map[string]*Node{"a": FromInt(1)}),
			FromMap(map[string]*Node{"a": FromInt(2)}),
			-1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare = %d, want %d", got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Errorf("Compare reversed = %d, want %d", got, -tc.want)
			}
		})
	}
}
