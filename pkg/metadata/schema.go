package metadata

import (
	"errors"
	"fmt"
)

// Schema is an ordered, name-unique list of properties. It is the shared
// descriptor set behind tabular mappings and rule definitions.
type Schema struct {
	props []*Property
	index map[string]int
}

// NewSchema builds a schema from the given properties in order. Two
// properties sharing a name fail with ErrDuplicateProperty.
func NewSchema(props ...*Property) (*Schema, error) {
	s := &Schema{
		props: make([]*Property, 0, len(props)),
		index: make(map[string]int, len(props)),
	}
	for _, p := range props {
		if p == nil {
			return nil, ErrNilProperty
		}
		if _, exists := s.index[p.Name()]; exists {
			return nil, errors.Join(ErrDuplicateProperty, fmt.Errorf("property %q", p.Name()))
		}
		s.index[p.Name()] = len(s.props)
		s.props = append(s.props, p)
	}
	return s, nil
}

// Properties returns the schema's properties in declaration order.
func (s *Schema) Properties() []*Property {
	out := make([]*Property, len(s.props))
	copy(out, s.props)
	return out
}

// Get looks up a property by name.
func (s *Schema) Get(name string) (*Property, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.props[i], true
}

// Len returns the number of properties.
func (s *Schema) Len() int { return len(s.props) }
