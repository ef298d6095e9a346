package ir

import "testing"

func TestJSONRoundTrip(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"things": FromSlice([]*Node{
			FromMap(map[string]*Node{
				"id":   FromInt(0),
				"name": FromString("cat"),
			}),
			Null(),
		}),
		"ok":    FromBool(true),
		"ratio": FromFloat(0.5),
		"props": FromIntKeysMap(map[int64]*Node{2: FromInt(1)}),
	})
	d, err := ToJSON(orig)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if Compare(orig, got) != 0 {
		t.Errorf("round trip changed tree:\n%s", d)
	}
	// parent links restored
	if got.Values[0].Parent != got {
		t.Error("parent link not restored")
	}
	if got.Values[0].ParentField != got.Fields[0].String {
		t.Errorf("ParentField = %q, want %q", got.Values[0].ParentField, got.Fields[0].String)
	}
}

func TestFromJSONRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"field count mismatch", `{"type":"Object","fields":[{"type":"String","string":"a"}]}`},
		{"bool key", `{"type":"Object","fields":[{"type":"Bool","bool":true}],"values":[{"type":"Null"}]}`},
		{"array with fields", `{"type":"Array","fields":[{"type":"String","string":"a"}]}`},
		{"scalar with children", `{"type":"String","string":"a","values":[{"type":"Null"}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromJSON([]byte(tc.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
