package basis

import (
	"encoding/json"
	"fmt"
)

// DefaultTransforms holds the transform types known to JSON
// experiment specs.
var DefaultTransforms = NewFactory()

func init() {
	// "none" is the raw-signal baseline: a nil Transform.
	DefaultTransforms.Register("none",
		func() (Transform, error) { return nil, nil })
	DefaultTransforms.Register("top-energy",
		func() (Transform, error) { return new(TopEnergy), nil })
}

type Factory struct {
	types map[string]func() (Transform, error)
}

func NewFactory() *Factory {
	f := new(Factory)
	f.types = make(map[string]func() (Transform, error))
	return f
}

func (f *Factory) Register(name string, create func() (Transform, error)) {
	f.types[name] = create
}

func (f *Factory) New(name string) (Transform, error) {
	create, ok := f.types[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform type %q", name)
	}
	return create()
}

// Message is a type-tagged transform descriptor for JSON configs.
type Message struct {
	Type string
	Spec Transform
}

func (m *Message) UnmarshalJSON(data []byte) error {
	// Unmarshal type from message.
	var raw struct {
		Type string
		Spec json.RawMessage
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Type = raw.Type
	tr, err := DefaultTransforms.New(raw.Type)
	if err != nil {
		return err
	}
	// Initialize and re-unmarshal.
	m.Spec = tr
	if m.Spec == nil || len(raw.Spec) == 0 {
		return nil
	}
	return json.Unmarshal(raw.Spec, m.Spec)
}
