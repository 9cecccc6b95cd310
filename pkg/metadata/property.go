package metadata

// Property is the static identity of a named, typed slot: its name and kind,
// an optional default-value supplier, an optional calculator for derived
// values, and example values. Properties are immutable and intended to be
// declared once and shared; identity is (name, kind).
type Property struct {
	name       string
	kind       Kind
	nullable   bool
	defaultFn  func() Value
	calculator func(*Container) Value
	examples   []Value
}

// PropertyOption configures a property at construction time.
type PropertyOption func(*Property)

// WithDefault supplies a default value used by resolution when the UseDefault
// facet is enabled and no stored or calculated value was found. The supplier
// is invoked fresh on every resolution that reaches it.
func WithDefault(fn func() Value) PropertyOption {
	return func(p *Property) {
		if fn != nil {
			p.defaultFn = fn
		}
	}
}

// WithCalculator supplies a derivation function invoked with the container
// being resolved. The calculator is never memoized.
func WithCalculator(fn func(*Container) Value) PropertyOption {
	return func(p *Property) {
		if fn != nil {
			p.calculator = fn
		}
	}
}

// WithExamples attaches ordered sample values for documentation and tooling.
func WithExamples(vals ...Value) PropertyOption {
	return func(p *Property) {
		if len(vals) > 0 {
			p.examples = append(p.examples, vals...)
		}
	}
}

// Nullable marks the property as accepting explicit null values.
func Nullable() PropertyOption {
	return func(p *Property) {
		p.nullable = true
	}
}

// NewProperty declares a property with the given name and kind.
func NewProperty(name string, kind Kind, opts ...PropertyOption) *Property {
	p := &Property{name: name, kind: kind}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the property's name.
func (p *Property) Name() string { return p.name }

// Kind returns the property's declared value kind.
func (p *Property) Kind() Kind { return p.kind }

// IsNullable reports whether explicit nulls may be stored for this property.
func (p *Property) IsNullable() bool { return p.nullable }

// HasDefault reports whether a default-value supplier is attached.
func (p *Property) HasDefault() bool { return p.defaultFn != nil }

// HasCalculator reports whether a calculator is attached.
func (p *Property) HasCalculator() bool { return p.calculator != nil }

// Examples returns a copy of the property's example values.
func (p *Property) Examples() []Value {
	if len(p.examples) == 0 {
		return nil
	}
	out := make([]Value, len(p.examples))
	copy(out, p.examples)
	return out
}

// Same reports descriptor identity: equal name and kind.
func (p *Property) Same(o *Property) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.name == o.name && p.kind == o.kind
}

func (p *Property) defaultValue() (Value, bool) {
	if p.defaultFn == nil {
		return Value{}, false
	}
	return p.defaultFn(), true
}

func (p *Property) calculate(c *Container) (Value, bool) {
	if p.calculator == nil {
		return Value{}, false
	}
	return p.calculator(c), true
}
