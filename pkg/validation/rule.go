package validation

import "github.com/propkit/propkit/pkg/metadata"

// Rule is an immutable validation unit: a pure function of a container
// producing zero or more ordered messages. Rules hold no per-evaluation
// state, so a single rule value may evaluate many containers concurrently.
// Combinators (And, WithMessage, WithSeverity) always return new rules.
type Rule struct {
	eval func(*metadata.Container) []Message
}

// NewRule wraps an evaluation function as a rule. The function must be pure
// with respect to its container argument.
func NewRule(eval func(*metadata.Container) []Message) Rule {
	return Rule{eval: eval}
}

// Evaluate runs the rule against a container. A zero rule evaluates to no
// messages.
func (r Rule) Evaluate(c *metadata.Container) []Message {
	if r.eval == nil {
		return nil
	}
	return r.eval(c)
}
