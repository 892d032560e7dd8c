package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waozixyz/kir"
)

func TestBlockDispatch(t *testing.T) {
	b := NewBlock()
	b.AddFunction(&Function{
		Name:      "increment_counter",
		Universal: &UniversalBody{Statements: []Stmt{Increment("counter")}},
	})
	b.Bind(7, kir.EventClick, "increment_counter")

	handler, ok := b.Handler(7, kir.EventClick)
	require.True(t, ok)
	assert.Equal(t, "increment_counter", handler)

	_, ok = b.Handler(7, kir.EventHover)
	assert.False(t, ok)
	_, ok = b.Handler(8, kir.EventClick)
	assert.False(t, ok)
}

func TestBlockFunctionOrder(t *testing.T) {
	b := NewBlock()
	b.AddFunction(&Function{Name: "c"})
	b.AddFunction(&Function{Name: "a"})
	b.AddFunction(&Function{Name: "b"})
	// Re-registering replaces without reordering.
	b.AddFunction(&Function{Name: "a", Sources: map[string]string{"lua": "return 1"}})

	assert.Equal(t, []string{"c", "a", "b"}, b.FunctionNames())
	assert.Equal(t, 3, b.Len())
	require.NotNil(t, b.Function("a"))
	assert.False(t, b.Function("a").IsUniversal())
}

func TestBlockEmpty(t *testing.T) {
	b := NewBlock()
	assert.True(t, b.Empty())
	b.Bind(1, kir.EventClick, "noop")
	assert.False(t, b.Empty())
}

func TestManifestPreservesInsertionOrder(t *testing.T) {
	m := NewManifest()
	m.Set("z", IntValue(1))
	m.Set("a", StringValue("hi"))
	m.Set("z", IntValue(2)) // replace keeps position

	assert.Equal(t, []string{"z", "a"}, m.Names())

	v, ok := m.Get("z")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.Int)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{IntValue(-3), "-3"},
		{FloatValue(2.5), "2.5"},
		{BoolValue(true), "true"},
		{StringValue("hi"), `"hi"`},
		{NullValue(), "null"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}
