package metadata

// Search selects which fallback steps value resolution may use. The zero
// value searches the container's own stored values only and treats a miss as
// a not-defined result rather than a failure.
type Search struct {
	// UseParent enables delegation to the parent chain for stored values.
	UseParent bool
	// UseCalculator enables the property's calculator as a fallback.
	UseCalculator bool
	// UseDefault enables the property's default-value supplier as a fallback.
	UseDefault bool
	// FailOnMissing turns an exhausted resolution into ErrPropertyNotFound
	// instead of a not-defined result.
	FailOnMissing bool
}

// Named search presets.
var (
	// LocalOnly searches the container's own stored values.
	LocalOnly = Search{}

	// LocalAndParent searches stored values up the parent chain.
	LocalAndParent = Search{UseParent: true}

	// FullResolution searches stored values up the parent chain, then the
	// calculator, then the default-value supplier.
	FullResolution = Search{UseParent: true, UseCalculator: true, UseDefault: true}
)
