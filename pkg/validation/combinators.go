package validation

import (
	"slices"

	"github.com/propkit/propkit/pkg/metadata"
)

type andConfig struct {
	breakOnFirstError bool
}

// AndOption configures the And combinator.
type AndOption func(*andConfig)

// BreakOnFirstError makes And stop after the left rule's messages instead of
// evaluating the right rule as well. Accumulation is the default.
func BreakOnFirstError() AndOption {
	return func(c *andConfig) { c.breakOnFirstError = true }
}

// And composes two rules. The left rule (the receiver) evaluates first; by
// default the right rule evaluates unconditionally and its messages are
// appended after the left's. With BreakOnFirstError, any message from the
// left short-circuits the right.
func (r Rule) And(other Rule, opts ...AndOption) Rule {
	var cfg andConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewRule(func(c *metadata.Container) []Message {
		left := r.Evaluate(c)
		if cfg.breakOnFirstError && len(left) > 0 {
			return left
		}
		return slices.Concat(left, other.Evaluate(c))
	})
}

// WithMessage replaces the template of every message the inner rule emits,
// re-rendering {propertyName} and {value} against the value the inner rule
// resolved. Whether the rule fires is unchanged.
func (r Rule) WithMessage(template string) Rule {
	return NewRule(func(c *metadata.Container) []Message {
		inner := r.Evaluate(c)
		if len(inner) == 0 {
			return nil
		}
		out := make([]Message, len(inner))
		for i, m := range inner {
			m.Template = template
			m.Text = renderTemplate(template, m.PropertyName, m.Value)
			out[i] = m
		}
		return out
	})
}

// WithSeverity overrides the severity of every emitted message without
// altering whether the inner rule fires.
func (r Rule) WithSeverity(sev Severity) Rule {
	return NewRule(func(c *metadata.Container) []Message {
		inner := r.Evaluate(c)
		if len(inner) == 0 {
			return nil
		}
		out := make([]Message, len(inner))
		for i, m := range inner {
			m.Severity = sev
			out[i] = m
		}
		return out
	})
}

// AsWarning downgrades the rule's messages to warnings.
func (r Rule) AsWarning() Rule {
	return r.WithSeverity(SeverityWarning)
}
