package metadata

import "errors"

// Predefined errors for the metadata package.
var (
	// ErrTypeMismatch indicates a value whose kind disagrees with the
	// property's declared kind. Values are never coerced between kinds.
	ErrTypeMismatch = errors.New("value kind does not match property kind")

	// ErrIllegalNull indicates a null value stored for a non-nullable property.
	ErrIllegalNull = errors.New("null value for non-nullable property")

	// ErrPropertyNotFound is returned by Resolve when FailOnMissing is set and
	// every enabled resolution step missed.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrCyclicParent indicates a parent link that would make the parent chain
	// revisit a container.
	ErrCyclicParent = errors.New("cyclic parent chain")

	// ErrDuplicateProperty indicates two schema properties sharing a name.
	ErrDuplicateProperty = errors.New("duplicate property name in schema")

	// ErrNilProperty indicates a nil property passed where one is required.
	ErrNilProperty = errors.New("nil property")
)
