package decode

import (
	"testing"

	"github.com/abarnert/pathy/encode"
	"github.com/abarnert/pathy/format"
	"github.com/abarnert/pathy/ir"
)

func TestDecodeJSONOrder(t *testing.T) {
	node, err := Decode([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, f := range node.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
	}
}

func TestDecodeJSONScalars(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`"hi"`, `"hi"`},
		{`-3`, `-3`},
		{`0.5`, `0.5`},
		{`[1,[2],{}]`, `[1,[2],{}]`},
	} {
		node, err := Decode([]byte(tc.in))
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		got := encode.MustString(node, encode.EncodeWire(true))
		if got != tc.out {
			t.Errorf("%s round trips to %s", tc.in, got)
		}
	}
}

func TestDecodeJSONTrailing(t *testing.T) {
	if _, err := Decode([]byte(`{} {}`), DecodeFormat(format.JSONFormat)); err == nil {
		t.Error("no error for trailing data")
	}
}

func TestDecodeYAMLOrder(t *testing.T) {
	node, err := Decode([]byte("z: 1\na: 2\n"), DecodeFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 2 || node.Fields[0].String != "z" || node.Fields[1].String != "a" {
		t.Errorf("fields = %v", node.Fields)
	}
}

func TestDecodeYAMLIntKeys(t *testing.T) {
	node, err := Decode([]byte("2: 1\n"), DecodeFormat(format.YAMLFormat))
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

func TestDecodeYAMLMixedKeys(t *testing.T) {
	_, err := Decode([]byte("a: 1\n2: 3\n"), DecodeFormat(format.YAMLFormat))
	if err == nil {
		t.Error("no error for mixed keys")
	}
}

func TestDecodeSniff(t *testing.T) {
	// not valid JSON, valid YAML
	node, err := Decode([]byte("name: cat\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "name"); got == nil || got.String != "cat" {
		t.Errorf("name = %v", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("{:::")); err == nil {
		t.Error("no error for garbage input")
	}
}
