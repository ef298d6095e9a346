package encode

import (
	"testing"

	"github.com/abarnert/pathy/format"
	"github.com/abarnert/pathy/ir"
)

func testNode() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("name"), Val: ir.FromString("cat")},
		{Key: ir.FromString("ids"), Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromInt(2),
		})},
		{Key: ir.FromString("ok"), Val: ir.FromBool(true)},
		{Key: ir.FromString("nothing"), Val: ir.Null()},
	})
}

func TestEncodeWire(t *testing.T) {
	got := MustString(testNode(), EncodeWire(true))
	want := `{"name":"cat","ids":[1,2],"ok":true,"nothing":null}`
	if got != want {
		t.Errorf("wire = %s, want %s", got, want)
	}
}

func TestEncodeIndented(t *testing.T) {
	got := MustString(ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
	}))
	want := "{\n  \"a\": [\n    1\n  ]\n}"
	if got != want {
		t.Errorf("indented = %q, want %q", got, want)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	if got := MustString(ir.FromSlice(nil)); got != "[]" {
		t.Errorf("empty array = %q", got)
	}
	if got := MustString(ir.FromMap(map[string]*ir.Node{})); got != "{}" {
		t.Errorf("empty object = %q", got)
	}
}

func TestEncodeIntKeys(t *testing.T) {
	node := ir.FromIntKeysMap(map[int64]*ir.Node{2: ir.FromInt(1)})
	got := MustString(node, EncodeWire(true))
	want := `{"2":1}`
	if got != want {
		t.Errorf("int keys = %s, want %s", got, want)
	}
}

func TestEncodeFloats(t *testing.T) {
	got := MustString(ir.FromFloat(0.5), EncodeWire(true))
	if got != "0.5" {
		t.Errorf("float = %q", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	got := MustString(testNode(), EncodeFormat(format.YAMLFormat))
	want := "name: cat\nids:\n- 1\n- 2\nok: true\nnothing: null"
	if got != want {
		t.Errorf("yaml = %q, want %q", got, want)
	}
}

func TestColorsDefault(t *testing.T) {
	c := NewColors()
	if f := c.Get(ir.StringType, FieldColor); f == nil {
		t.Fatal("nil color func")
	}
	// unmapped combinations fall through to the identity default
	if got := c.Get(ir.NullType, FieldColor)("x"); got != "x" {
		t.Errorf("default color = %q", got)
	}
}
