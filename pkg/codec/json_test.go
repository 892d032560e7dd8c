package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waozixyz/kir"
	"github.com/waozixyz/kir/pkg/dump"
	"github.com/waozixyz/kir/pkg/logic"
)

func TestJSONRoundTrip(t *testing.T) {
	doc := buildDocument(t)

	data, err := EncodeJSON(doc)
	require.NoError(t, err)

	got, err := DecodeJSON(data)
	require.NoError(t, err)

	differ, report := dump.Diff(doc.Root, got.Root)
	assert.False(t, differ, "structural diff:\n%s", report)

	// Styles survive field for field, including the gradient carried in the
	// dedicated backgroundGradient key.
	assert.Equal(t, doc.Root.Style, got.Root.Style)
	assert.Equal(t, doc.Root.Children[0].Style, got.Root.Children[0].Style)
	assert.Equal(t, doc.Root.Children[1].Style, got.Root.Children[1].Style)
	assert.Equal(t, doc.Root.Children[2].Children[0].Style, got.Root.Children[2].Children[0].Style)

	// Layout configs and custom data.
	assert.Equal(t, doc.Root.Layout, got.Root.Layout)
	assert.Equal(t, doc.Root.Children[2].Layout, got.Root.Children[2].Layout)
	assert.Equal(t, doc.Root.Children[3].Data, got.Root.Children[3].Data)
	assert.Equal(t, doc.Root.Children[2].Children[0].Data, got.Root.Children[2].Children[0].Data)

	// Events keep their order, handlers, and payload.
	assert.Equal(t, doc.Root.Events, got.Root.Events)
	assert.Equal(t, doc.Root.Children[4].Events, got.Root.Children[4].Events)

	// Manifest values parse back by declared type.
	require.NotNil(t, got.Manifest)
	assert.Equal(t, doc.Manifest.Names(), got.Manifest.Names())
	for _, name := range doc.Manifest.Names() {
		want, _ := doc.Manifest.Get(name)
		v, ok := got.Manifest.Get(name)
		require.True(t, ok, "missing variable %q", name)
		assert.Equal(t, want, v, "variable %q", name)
	}

	// Logic: universal statements, embedded sources, bindings.
	require.NotNil(t, got.Logic)
	assert.Equal(t, doc.Logic.FunctionNames(), got.Logic.FunctionNames())
	assert.Equal(t,
		doc.Logic.Function("increment_counter").Universal,
		got.Logic.Function("increment_counter").Universal)
	assert.Equal(t, doc.Logic.Function("on_key").Sources, got.Logic.Function("on_key").Sources)
	assert.Equal(t, doc.Logic.Bindings(), got.Logic.Bindings())
}

func TestJSONEncodeShape(t *testing.T) {
	doc := buildDocument(t)
	data, err := EncodeJSON(doc)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"root"`)
	assert.Contains(t, s, `"reactive_manifest"`)
	assert.Contains(t, s, `"logic_block"`)
	assert.Contains(t, s, `"backgroundGradient"`)
	assert.Contains(t, s, `"var(3)"`)

	// Defaults stay off the wire: nothing in the tree overrides line height
	// or shrink weight, so those keys never appear.
	assert.NotContains(t, s, `"lineHeight"`)
	assert.NotContains(t, s, `"flexShrink"`)
}

func TestJSONDecodeBareComponent(t *testing.T) {
	data := []byte(`{
		"id": 9,
		"type": "Column",
		"width": "50%",
		"background": "#112233",
		"children": [
			{"id": 10, "type": "Text", "text": "hi", "color": "#fff"}
		]
	}`)

	doc, err := DecodeJSON(data)
	require.NoError(t, err)

	root := doc.Root
	assert.Equal(t, kir.KindColumn, root.Kind)
	assert.Equal(t, uint32(9), root.ID)
	assert.Equal(t, kir.Percent(50), root.Style.Width)
	assert.Equal(t, kir.Solid(0x11, 0x22, 0x33, 0xFF), root.Style.Background)

	require.Len(t, root.Children, 1)
	child := root.Children[0]
	assert.Equal(t, "hi", child.Text)
	assert.Equal(t, kir.Solid(0xFF, 0xFF, 0xFF, 0xFF), child.Style.Font.Color)
	assert.Same(t, root, child.Parent())
	assert.Nil(t, doc.Manifest)
	assert.Nil(t, doc.Logic)
}

func TestJSONDecodeComponentWrapper(t *testing.T) {
	data := []byte(`{"component": {"id": 1, "type": "Button", "text": "Go"}}`)

	doc, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, kir.KindButton, doc.Root.Kind)
	assert.Equal(t, "Go", doc.Root.Text)
}

func TestJSONDecodeUnknownNamesFallBack(t *testing.T) {
	data := []byte(`{
		"type": "Spaceship",
		"textAlign": "wavy",
		"events": [{"type": "teleport", "logic_id": "go"}]
	}`)

	doc, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, kir.KindContainer, doc.Root.Kind)
	assert.Equal(t, kir.TextAlignLeft, doc.Root.Style.Font.Align)
	require.Len(t, doc.Root.Events, 1)
	assert.Equal(t, kir.EventClick, doc.Root.Events[0].Type)
}

func TestJSONDecodeErrors(t *testing.T) {
	_, err := DecodeJSON([]byte(`{not json`))
	require.Error(t, err)

	_, err = DecodeJSON([]byte(`{}`))
	require.Error(t, err)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Message, "no root component")
}

func TestJSONDecodeMalformedStatement(t *testing.T) {
	data := []byte(`{
		"root": {"id": 1, "type": "Container"},
		"logic_block": {
			"functions": [{
				"name": "broken",
				"universal": {"statements": [{"stmt": "warp"}]}
			}]
		}
	}`)

	_, err := DecodeJSON(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestBinaryJSONCrossConvert(t *testing.T) {
	doc := buildDocument(t)

	jsonData, err := EncodeJSON(doc)
	require.NoError(t, err)
	fromJSON, err := DecodeJSON(jsonData)
	require.NoError(t, err)

	fromBinary, err := DecodeBinary(EncodeBinary(fromJSON))
	require.NoError(t, err)

	differ, report := dump.Diff(doc.Root, fromBinary.Root)
	assert.False(t, differ, "structural diff after JSON->binary chain:\n%s", report)
	assert.Equal(t, doc.Manifest.Names(), fromBinary.Manifest.Names())
	assert.Equal(t, doc.Logic.Bindings(), fromBinary.Logic.Bindings())
}

func TestManifestValueParsing(t *testing.T) {
	tests := []struct {
		typ, raw string
		want     logic.Value
	}{
		{"int", "-3", logic.IntValue(-3)},
		{"int", "junk", logic.IntValue(0)},
		{"float", "2.5", logic.FloatValue(2.5)},
		{"bool", "true", logic.BoolValue(true)},
		{"string", `"hi"`, logic.StringValue("hi")},
		{"string", "unquoted", logic.StringValue("unquoted")},
		{"null", "", logic.NullValue()},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, manifestValue(tt.typ, tt.raw), "%s %q", tt.typ, tt.raw)
	}
}
