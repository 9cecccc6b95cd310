// Package metadata provides a typed, provenance-tracked property model: named
// property descriptors, immutable value records that remember how they were
// produced, and ordered containers with multi-step fallback resolution.
//
// The value model is a closed tagged box (Value) over string, int, float,
// bool, and time payloads plus an explicit null. Downcasts are checked and
// fail loudly; values are never coerced between kinds. Each stored value is a
// PropertyValue triple of descriptor, value, and Source, the provenance enum
// distinguishing explicitly supplied, calculated, defaulted, and absent
// values. A stored null and an absent property are different states: HasValue
// is true for the former and false for the latter.
//
// # Architecture
//
//   - Property        – immutable descriptor: name, kind, nullability,
//     optional default supplier and calculator, example values
//   - Value           – closed tagged value box with checked downcasts
//   - PropertyValue   – (property, value, source) triple
//   - Container       – ordered append/replace store with optional parent
//   - Search          – resolution policy: parent, calculator, default facets
//   - Schema          – ordered, name-unique property list
//
// Containers are functional value objects: WithValue and WithParent return
// new containers, so published containers are safe for concurrent reads with
// no locking. Enumeration order is first-insertion order of distinct
// properties; replacing a value keeps its position, which downstream
// renderers rely on for deterministic output.
//
// # Usage
//
//	age := metadata.NewProperty("Age", metadata.KindInt,
//	    metadata.WithDefault(func() metadata.Value { return metadata.Int(18) }))
//
//	c := metadata.NewContainer().MustWithValue(age, metadata.Int(33))
//
//	pv, err := c.Resolve(age, metadata.LocalOnly)
//	// pv.Source() == metadata.SourceDefined, pv.Value().AsInt() == 33
//
// Resolution follows a fixed four-step algorithm documented on
// Container.Resolve; the Search presets LocalOnly, LocalAndParent, and
// FullResolution cover the common policies.
//
// # Error Handling
//
// Construction-time violations are unrecoverable and fail immediately:
// ErrTypeMismatch, ErrIllegalNull, and ErrCyclicParent are returned (wrapped
// with detail) by NewPropertyValue, WithValue, and WithParent. Resolution
// only fails when Search.FailOnMissing is set, with ErrPropertyNotFound; the
// default policy returns a not-defined result instead. All sentinels are
// comparable with errors.Is.
package metadata
