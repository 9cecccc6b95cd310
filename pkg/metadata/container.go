package metadata

import (
	"errors"
	"fmt"
)

// Container is an ordered store of property values with an optional parent
// for delegated lookups. Containers are value objects: every With* method
// returns a new container and the receiver is never mutated, so a published
// container is safe for concurrent reads without locking.
type Container struct {
	values []PropertyValue
	parent *Container
}

// NewContainer returns an empty container with no parent.
func NewContainer() *Container {
	return &Container{}
}

// WithValue returns a new container holding the given value for the property
// with source Defined. A prior entry for the same property is replaced in
// place, keeping its first-insertion position; a new property is appended.
// Construction rules of NewPropertyValue apply.
func (c *Container) WithValue(p *Property, v Value) (*Container, error) {
	pv, err := NewPropertyValue(p, v, SourceDefined)
	if err != nil {
		return nil, err
	}
	return c.WithPropertyValue(pv), nil
}

// MustWithValue is WithValue that panics on construction errors. Intended for
// literals whose types are known statically.
func (c *Container) MustWithValue(p *Property, v Value) *Container {
	next, err := c.WithValue(p, v)
	if err != nil {
		panic(err)
	}
	return next
}

// WithPropertyValue returns a new container holding the given pre-constructed
// property value, following the same replace-in-place ordering as WithValue.
func (c *Container) WithPropertyValue(pv PropertyValue) *Container {
	values := make([]PropertyValue, len(c.values), len(c.values)+1)
	copy(values, c.values)
	replaced := false
	for i := range values {
		if values[i].Property().Same(pv.Property()) {
			values[i] = pv
			replaced = true
			break
		}
	}
	if !replaced {
		values = append(values, pv)
	}
	return &Container{values: values, parent: c.parent}
}

// WithParent returns a new container delegating unresolved lookups to parent.
// A link that would make the parent chain revisit this container fails with
// ErrCyclicParent; a chain is never silently truncated.
func (c *Container) WithParent(parent *Container) (*Container, error) {
	for anc := parent; anc != nil; anc = anc.parent {
		if anc == c {
			return nil, errors.Join(ErrCyclicParent,
				fmt.Errorf("parent chain revisits container with %d values", len(c.values)))
		}
	}
	values := make([]PropertyValue, len(c.values))
	copy(values, c.values)
	return &Container{values: values, parent: parent}, nil
}

// Parent returns the parent container, or nil.
func (c *Container) Parent() *Container { return c.parent }

// Len returns the number of stored values, excluding the parent chain.
func (c *Container) Len() int { return len(c.values) }

// Values returns the stored values in stable order: first-insertion order of
// distinct properties, with replacements keeping the original position. The
// returned slice is a copy.
func (c *Container) Values() []PropertyValue {
	out := make([]PropertyValue, len(c.values))
	copy(out, c.values)
	return out
}

// Resolve looks up a property by a fixed four-step algorithm, each step
// attempted only when its facet is enabled and the prior step missed:
//
//  1. the container's own stored values;
//  2. stored values up the parent chain (UseParent);
//  3. the property's calculator, invoked with this container (UseCalculator);
//  4. the property's default-value supplier (UseDefault).
//
// When every enabled step misses the result has source NotDefined, unless
// FailOnMissing is set, in which case ErrPropertyNotFound is returned.
func (c *Container) Resolve(p *Property, s Search) (PropertyValue, error) {
	if p == nil {
		return PropertyValue{}, ErrNilProperty
	}
	if pv, ok := c.find(p); ok {
		return pv, nil
	}
	if s.UseParent {
		for anc := c.parent; anc != nil; anc = anc.parent {
			if pv, ok := anc.find(p); ok {
				return pv, nil
			}
		}
	}
	if s.UseCalculator {
		if v, ok := p.calculate(c); ok {
			return PropertyValue{prop: p, value: v, source: SourceCalculated}, nil
		}
	}
	if s.UseDefault {
		if v, ok := p.defaultValue(); ok {
			return PropertyValue{prop: p, value: v, source: SourceDefault}, nil
		}
	}
	if s.FailOnMissing {
		return PropertyValue{}, errors.Join(ErrPropertyNotFound,
			fmt.Errorf("property %q", p.Name()))
	}
	return notDefinedValue(p), nil
}

// Value resolves a property with FullResolution. It never fails: a complete
// miss yields a not-defined result.
func (c *Container) Value(p *Property) PropertyValue {
	pv, err := c.Resolve(p, FullResolution)
	if err != nil {
		// Only reachable for a nil property; surface it as not defined on a
		// synthetic descriptor-less value.
		return PropertyValue{}
	}
	return pv
}

// find scans stored values from the end so the most recently written entry
// wins if duplicates were ever appended.
func (c *Container) find(p *Property) (PropertyValue, bool) {
	for i := len(c.values) - 1; i >= 0; i-- {
		if c.values[i].Property().Same(p) {
			return c.values[i], true
		}
	}
	return PropertyValue{}, false
}
