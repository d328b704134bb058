package daylog

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/hyp3rd/ewrap"
)

// JSONSerializerName is the registry name of the default serializer.
const JSONSerializerName = "json"

// Serializer turns a nested value (map, slice, array or struct) into the text
// that is embedded in a log message.
type Serializer interface {
	Serialize(value any) (string, error)
}

// SerializerFunc adapts a plain function to the Serializer interface.
type SerializerFunc func(value any) (string, error)

// Serialize implements Serializer.
func (f SerializerFunc) Serialize(value any) (string, error) {
	return f(value)
}

// JSONSerializer renders values as compact JSON without HTML escaping.
// Map keys are sorted, so equal values always render identically.
type JSONSerializer struct{}

// Serialize implements Serializer.
func (JSONSerializer) Serialize(value any) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(value)
	if err != nil {
		return "", ewrap.Wrap(err, "failed to serialize message value")
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// SerializerRegistry manages named serializers that can be referenced from configuration.
type SerializerRegistry struct {
	mu          sync.RWMutex
	serializers map[string]Serializer
}

// NewSerializerRegistry creates a registry holding the JSON serializer.
func NewSerializerRegistry() *SerializerRegistry {
	return &SerializerRegistry{
		serializers: map[string]Serializer{
			JSONSerializerName: JSONSerializer{},
		},
	}
}

// Register adds a serializer to the registry under the provided name.
func (r *SerializerRegistry) Register(name string, serializer Serializer) error {
	if name == "" {
		return ewrap.New("serializer name cannot be empty")
	}

	if serializer == nil {
		return ewrap.New("serializer cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.serializers[name]; exists {
		return ewrap.New("serializer already registered").WithMetadata("name", name)
	}

	r.serializers[name] = serializer

	return nil
}

// Get retrieves a serializer by name.
func (r *SerializerRegistry) Get(name string) (Serializer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serializer, ok := r.serializers[name]

	return serializer, ok
}

// MustRegister registers a serializer and panics if registration fails.
func (r *SerializerRegistry) MustRegister(name string, serializer Serializer) {
	err := r.Register(name, serializer)
	if err != nil {
		panic(err)
	}
}

// ResolveSerializer picks the serializer described by the configuration:
// an explicit Serializer wins, then SerializerName looked up in the registry
// (a fresh registry when none is set), then JSON.
func (c *Config) ResolveSerializer() (Serializer, error) {
	if c.Serializer != nil {
		return c.Serializer, nil
	}

	if c.SerializerName == "" {
		return JSONSerializer{}, nil
	}

	registry := c.SerializerRegistry
	if registry == nil {
		registry = NewSerializerRegistry()
	}

	serializer, ok := registry.Get(c.SerializerName)
	if !ok {
		return nil, ewrap.Wrap(ErrSerializerNotFound, "resolving serializer").
			WithMetadata("name", c.SerializerName)
	}

	return serializer, nil
}
