// Package ruleset loads declarative YAML rule definitions into a
// metadata.Schema and a list of validation rules.
//
// A document declares properties (name, type, nullability, optional default),
// each with an ordered list of rules. Rule order in the document is rule
// order at validation time. All structural problems (unknown fields, types,
// rule names, severities, malformed bounds or patterns) are rejected when the
// document is loaded, so a loaded ruleset never fails during validation.
//
//	properties:
//	  - name: Name
//	    type: string
//	    rules:
//	      - rule: exists
//	  - name: Age
//	    type: int
//	    rules:
//	      - rule: notDefault
//	      - rule: min
//	        value: "18"
//	        severity: warning
//	        message: "{propertyName} should be over 18! but was {value}"
//
// Supported rules: exists, notNull, notDefault, min, max (ordered kinds),
// oneOf, and pattern (string kind). min, max, oneOf, and pattern build on the
// predicate rule and therefore skip absent properties; declare exists or
// notDefault alongside them to require presence.
package ruleset
