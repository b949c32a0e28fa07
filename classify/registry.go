package classify

import (
	"encoding/json"
	"fmt"
)

// DefaultClassifiers holds the classifier types known to JSON
// experiment specs.
var DefaultClassifiers = NewFactory()

func init() {
	DefaultClassifiers.Register("centroid",
		func() (Classifier, error) { return new(Centroid), nil })
	DefaultClassifiers.Register("knn",
		func() (Classifier, error) { return new(KNN), nil })
}

type Factory struct {
	types map[string]func() (Classifier, error)
}

func NewFactory() *Factory {
	f := new(Factory)
	f.types = make(map[string]func() (Classifier, error))
	return f
}

func (f *Factory) Register(name string, create func() (Classifier, error)) {
	f.types[name] = create
}

func (f *Factory) New(name string) (Classifier, error) {
	create, ok := f.types[name]
	if !ok {
		return nil, fmt.Errorf("unknown classifier type %q", name)
	}
	return create()
}

// Message is a type-tagged classifier descriptor for JSON configs.
type Message struct {
	Type string
	Spec Classifier
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
	clf, err := DefaultClassifiers.New(raw.Type)
	if err != nil {
		return err
	}
	// Initialize and re-unmarshal.
	m.Spec = clf
	if len(raw.Spec) == 0 {
		return nil
	}
	return json.Unmarshal(raw.Spec, m.Spec)
}
