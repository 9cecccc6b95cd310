package metadata

import (
	"errors"
	"fmt"
)

// Source records how a resolved value came to be.
type Source int

const (
	// SourceNotDefined marks a property for which no resolution step produced
	// a value.
	SourceNotDefined Source = iota
	// SourceDefined marks a value that was explicitly stored.
	SourceDefined
	// SourceCalculated marks a value produced by the property's calculator.
	SourceCalculated
	// SourceDefault marks a value produced by the default-value supplier.
	SourceDefault
)

// String returns the name of the source, e.g. "defined".
func (s Source) String() string {
	switch s {
	case SourceNotDefined:
		return "not-defined"
	case SourceDefined:
		return "defined"
	case SourceCalculated:
		return "calculated"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// PropertyValue is an immutable (property, value, source) triple. The value's
// kind always matches the property's kind, and a null payload implies the
// property is nullable; both are enforced at construction.
type PropertyValue struct {
	prop   *Property
	value  Value
	source Source
}

// NewPropertyValue binds a value to a property with the given source. It
// fails with ErrTypeMismatch when the value's kind disagrees with the
// property's kind, and with ErrIllegalNull when a null is supplied for a
// non-nullable property.
func NewPropertyValue(p *Property, v Value, source Source) (PropertyValue, error) {
	if p == nil {
		return PropertyValue{}, ErrNilProperty
	}
	if v.Kind() != p.Kind() {
		return PropertyValue{}, errors.Join(ErrTypeMismatch,
			fmt.Errorf("property %q declares %s, value is %s", p.Name(), p.Kind(), v.Kind()))
	}
	if v.IsNull() && !p.IsNullable() {
		return PropertyValue{}, errors.Join(ErrIllegalNull,
			fmt.Errorf("property %q is not nullable", p.Name()))
	}
	return PropertyValue{prop: p, value: v, source: source}, nil
}

// notDefinedValue is the sentinel result for a missed resolution. Its payload
// is the kind's zero so that default-value checks see an absent property as
// holding the default.
func notDefinedValue(p *Property) PropertyValue {
	return PropertyValue{prop: p, value: zeroValue(p.Kind()), source: SourceNotDefined}
}

// Property returns the owning property descriptor.
func (pv PropertyValue) Property() *Property { return pv.prop }

// Value returns the boxed value.
func (pv PropertyValue) Value() Value { return pv.value }

// Source returns how the value was produced.
func (pv PropertyValue) Source() Source { return pv.source }

// HasValue reports whether any resolution step produced a value. It is true
// for an explicitly stored null: nullness and absence are distinct states.
func (pv PropertyValue) HasValue() bool { return pv.source != SourceNotDefined }
