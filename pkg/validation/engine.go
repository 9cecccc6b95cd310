package validation

import (
	"iter"
	"slices"

	"github.com/propkit/propkit/pkg/metadata"
)

// Validate evaluates rules in definition order and returns the flattened,
// order-preserving concatenation of their messages. A rule's messages never
// affect whether later top-level rules run; only And with BreakOnFirstError
// truncates inside its own subtree. Validate never fails for well-formed
// rules and containers; messages are the sole channel for invalid data.
func Validate(c *metadata.Container, rules []Rule) []Message {
	var out []Message
	for _, r := range rules {
		out = append(out, r.Evaluate(c)...)
	}
	return out
}

// Cached materializes a rule sequence into a fixed, reusable list. Generator
// built sequences are valid for exactly one consumption: ranging over one a
// second time yields nothing, which silently validates nothing. Cached
// consumes the sequence once, eagerly, and the returned list validates any
// number of containers with the identical rules in the identical order.
func Cached(seq iter.Seq[Rule]) []Rule {
	return slices.Collect(seq)
}
