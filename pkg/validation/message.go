package validation

import (
	"strings"

	"github.com/propkit/propkit/pkg/metadata"
)

// Severity classifies a validation message.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Message is a single validation finding. Text is the template resolved
// against the value the rule saw at evaluation time; Value keeps that value
// so message-override combinators can re-render the template.
type Message struct {
	PropertyName string
	Severity     Severity
	Template     string
	Text         string
	Value        metadata.Value
}

// renderTemplate substitutes {propertyName} and {value} using the invariant
// value formatting, so message texts are stable across locales.
func renderTemplate(template, propertyName string, v metadata.Value) string {
	return strings.NewReplacer(
		"{propertyName}", propertyName,
		"{value}", v.Format(),
	).Replace(template)
}

func newMessage(p *metadata.Property, v metadata.Value, sev Severity, template string) Message {
	return Message{
		PropertyName: p.Name(),
		Severity:     sev,
		Template:     template,
		Text:         renderTemplate(template, p.Name(), v),
		Value:        v,
	}
}
