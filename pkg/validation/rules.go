package validation

import "github.com/propkit/propkit/pkg/metadata"

// Default message templates for the base rules.
const (
	existsTemplate     = "{propertyName} is not exists."
	notNullTemplate    = "{propertyName} should not be null."
	notDefaultTemplate = "{propertyName} should not have default value {value}."
	shouldBeTemplate   = "{propertyName} should match condition but was {value}."
)

// existsSearch deliberately skips calculators and defaults: presence must
// reflect what was actually supplied, not an ambient fallback.
var existsSearch = metadata.Search{UseParent: true}

// Exists fires when the property was never supplied. An explicitly stored
// null counts as existing; only true absence is reported.
func Exists(p *metadata.Property) Rule {
	return NewRule(func(c *metadata.Container) []Message {
		pv, err := c.Resolve(p, existsSearch)
		if err != nil || pv.HasValue() {
			return nil
		}
		return []Message{newMessage(p, pv.Value(), SeverityError, existsTemplate)}
	})
}

// NotNull fires when the property resolved to an explicit null. Absent
// properties are skipped; pairing with Exists makes a field mandatory.
func NotNull(p *metadata.Property) Rule {
	return NewRule(func(c *metadata.Container) []Message {
		pv, err := c.Resolve(p, metadata.FullResolution)
		if err != nil || !pv.HasValue() || !pv.Value().IsNull() {
			return nil
		}
		return []Message{newMessage(p, pv.Value(), SeverityError, notNullTemplate)}
	})
}

// NotDefault fires when the resolved value equals the kind's default,
// regardless of how it was resolved. An absent property resolves to the kind
// zero and therefore fires too.
func NotDefault(p *metadata.Property) Rule {
	return NewRule(func(c *metadata.Container) []Message {
		pv, err := c.Resolve(p, metadata.FullResolution)
		if err != nil || !pv.Value().IsZero() {
			return nil
		}
		return []Message{newMessage(p, pv.Value(), SeverityError, notDefaultTemplate)}
	})
}

// ShouldBe fires when the property has a value and the condition rejects it.
// Absent properties are silently skipped: predicate rules never report
// missing data; combine with Exists or NotDefault to require presence.
func ShouldBe(p *metadata.Property, condition func(metadata.Value) bool) Rule {
	return NewRule(func(c *metadata.Container) []Message {
		pv, err := c.Resolve(p, metadata.FullResolution)
		if err != nil || !pv.HasValue() || condition(pv.Value()) {
			return nil
		}
		return []Message{newMessage(p, pv.Value(), SeverityError, shouldBeTemplate)}
	})
}
