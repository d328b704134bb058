package daylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSerializer(t *testing.T) {
	text, err := JSONSerializer{}.Serialize(map[string]any{"b": 2, "a": "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"x","b":2}`, text)

	_, err = JSONSerializer{}.Serialize(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
}

func TestSerializerRegistry(t *testing.T) {
	registry := NewSerializerRegistry()

	_, ok := registry.Get(JSONSerializerName)
	assert.True(t, ok)

	upper := SerializerFunc(func(any) (string, error) { return "UP", nil })

	require.NoError(t, registry.Register("upper", upper))
	require.Error(t, registry.Register("upper", upper))
	require.Error(t, registry.Register("", upper))
	require.Error(t, registry.Register("nil", nil))

	assert.Panics(t, func() { registry.MustRegister("upper", upper) })
}

func TestResolveSerializer(t *testing.T) {
	upper := SerializerFunc(func(any) (string, error) { return "UP", nil })

	config := DefaultConfig()

	serializer, err := config.ResolveSerializer()
	require.NoError(t, err)
	assert.IsType(t, JSONSerializer{}, serializer)

	registry := NewSerializerRegistry()
	registry.MustRegister("upper", upper)

	config.SerializerName = "upper"
	config.SerializerRegistry = registry

	serializer, err = config.ResolveSerializer()
	require.NoError(t, err)

	text, err := serializer.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, "UP", text)

	config.SerializerName = "yaml"

	_, err = config.ResolveSerializer()
	require.ErrorIs(t, err, ErrSerializerNotFound)

	config.Serializer = JSONSerializer{}

	_, err = config.ResolveSerializer()
	require.NoError(t, err, "an explicit serializer wins over the name")
}
