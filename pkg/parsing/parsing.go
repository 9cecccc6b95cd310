package parsing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/propkit/propkit/pkg/metadata"
)

// Func converts raw text into a typed value. Implementations trim
// surrounding whitespace and treat the literal "null" (case-insensitive) as
// an explicit null of their kind.
type Func func(string) (metadata.Value, error)

// Supported time layouts, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ForKind returns the parser for a kind.
func ForKind(k metadata.Kind) Func {
	switch k {
	case metadata.KindString:
		return ParseString
	case metadata.KindInt:
		return ParseInt
	case metadata.KindFloat:
		return ParseFloat
	case metadata.KindBool:
		return ParseBool
	case metadata.KindTime:
		return ParseTime
	default:
		return func(string) (metadata.Value, error) {
			return metadata.Value{}, errors.Join(ErrUnsupportedKind, fmt.Errorf("kind %d", k))
		}
	}
}

// ParseString boxes the text as-is, except for the null literal.
func ParseString(s string) (metadata.Value, error) {
	if isNullLiteral(s) {
		return metadata.Null(metadata.KindString), nil
	}
	return metadata.String(s), nil
}

// ParseInt parses a base-10 integer.
func ParseInt(s string) (metadata.Value, error) {
	s = strings.TrimSpace(s)
	if isNullLiteral(s) {
		return metadata.Null(metadata.KindInt), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return metadata.Value{}, errors.Join(ErrNotParsable, fmt.Errorf("%q as int", s))
	}
	return metadata.Int(i), nil
}

// ParseFloat parses a decimal floating-point number.
func ParseFloat(s string) (metadata.Value, error) {
	s = strings.TrimSpace(s)
	if isNullLiteral(s) {
		return metadata.Null(metadata.KindFloat), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return metadata.Value{}, errors.Join(ErrNotParsable, fmt.Errorf("%q as float", s))
	}
	return metadata.Float(f), nil
}

// ParseBool accepts the forms understood by strconv.ParseBool.
func ParseBool(s string) (metadata.Value, error) {
	s = strings.TrimSpace(s)
	if isNullLiteral(s) {
		return metadata.Null(metadata.KindBool), nil
	}
	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return metadata.Value{}, errors.Join(ErrNotParsable, fmt.Errorf("%q as bool", s))
	}
	return metadata.Bool(b), nil
}

// ParseTime tries RFC 3339 first, then common date layouts. Dates without a
// zone are interpreted as UTC.
func ParseTime(s string) (metadata.Value, error) {
	s = strings.TrimSpace(s)
	if isNullLiteral(s) {
		return metadata.Null(metadata.KindTime), nil
	}
	for _, layout := range timeLayouts {
		if tm, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return metadata.Time(tm), nil
		}
	}
	return metadata.Value{}, errors.Join(ErrNotParsable, fmt.Errorf("%q as time", s))
}

func isNullLiteral(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "null")
}
