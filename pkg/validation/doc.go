// Package validation provides a composable rule algebra over metadata
// containers: base rules checking presence, nullness, defaults, and arbitrary
// predicates, plus combinators for conjunction, message override, and
// severity override. Evaluating a rule yields an ordered sequence of
// severity-tagged messages; the engine never returns an error for well-formed
// input; message emission is the only way data is reported invalid.
//
// # Architecture
//
//   - Rule     – immutable wrapper around a pure evaluate function
//   - Message  – property name, severity, template, resolved text, value
//   - Exists / NotNull / NotDefault / ShouldBe – base rules
//   - And / WithMessage / WithSeverity / AsWarning – fluent combinators
//   - Validate – flattening, order-preserving engine
//   - Cached   – one-time materialization of generator-built rule sequences
//
// The base rules follow a skip-when-absent convention: NotNull and ShouldBe
// never fire for a property that was not supplied at all. Absence detection
// is Exists's job, and Exists in turn resolves without calculator or default
// fallbacks so that ambient defaults cannot masquerade as presence. This
// split keeps optional-field validation expressible: ShouldBe alone permits a
// missing field, Exists.And(ShouldBe(...)) requires it.
//
// # Usage
//
//	age := metadata.NewProperty("Age", metadata.KindInt)
//
//	rules := []validation.Rule{
//	    validation.NotDefault(age).
//	        And(validation.ShouldBe(age, func(v metadata.Value) bool {
//	            i, _ := v.AsInt()
//	            return i > 18
//	        }).WithMessage("{propertyName} should be over 18! but was {value}")),
//	}
//
//	messages := validation.Validate(container, rules)
//	for _, m := range messages {
//	    fmt.Println(m.Severity, m.Text)
//	}
//
// And accumulates by default: both sides evaluate and both sides' messages
// are reported. Passing BreakOnFirstError opts into short-circuiting, where
// any message from the left side suppresses the right side entirely.
//
// Rule definitions written as generator functions produce one-shot sequences;
// wrap them with Cached before validating more than one container:
//
//	rules := validation.Cached(personRules(schema))
//	for _, row := range rows {
//	    report = append(report, validation.Validate(row, rules)...)
//	}
//
// # Concurrency
//
// Rules and messages are immutable values. One rule list may validate many
// containers from many goroutines, provided predicates are pure functions of
// their input.
package validation
