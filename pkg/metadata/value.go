package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Value is an immutable tagged box holding a typed payload or an explicit
// null. Downcasts are checked and fail with ErrTypeMismatch on a kind
// mismatch; there is no silent coercion between kinds.
type Value struct {
	kind Kind
	null bool
	str  string
	i64  int64
	f64  float64
	b    bool
	tm   time.Time
}

// String boxes a string payload.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int boxes an integer payload.
func Int(i int64) Value {
	return Value{kind: KindInt, i64: i}
}

// Float boxes a floating-point payload.
func Float(f float64) Value {
	return Value{kind: KindFloat, f64: f}
}

// Bool boxes a boolean payload.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Time boxes a time payload.
func Time(t time.Time) Value {
	return Value{kind: KindTime, tm: t}
}

// Null returns an explicit null of the given kind. Whether a null may be
// stored for a property depends on the property's nullability.
func Null(k Kind) Value {
	return Value{kind: k, null: true}
}

// zeroValue returns the non-null zero payload for a kind.
func zeroValue(k Kind) Value {
	return Value{kind: k}
}

// Kind returns the type tag of the boxed payload.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is an explicit null.
func (v Value) IsNull() bool { return v.null }

// IsZero reports whether the value equals its kind's default: the zero
// payload, or null. A null is considered default because for nullable slots
// "no meaningful value" is the default state.
func (v Value) IsZero() bool {
	if v.null {
		return true
	}
	switch v.kind {
	case KindString:
		return v.str == ""
	case KindInt:
		return v.i64 == 0
	case KindFloat:
		return v.f64 == 0
	case KindBool:
		return !v.b
	case KindTime:
		return v.tm.IsZero()
	default:
		return true
	}
}

// Equal reports whether two values have the same kind, nullness, and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.null != o.null {
		return false
	}
	if v.null {
		return true
	}
	switch v.kind {
	case KindTime:
		return v.tm.Equal(o.tm)
	default:
		return v.str == o.str && v.i64 == o.i64 && v.f64 == o.f64 && v.b == o.b
	}
}

// AsString unboxes a string payload. Nulls unbox to the zero payload without
// error; check IsNull first when the distinction matters.
func (v Value) AsString() (string, error) {
	if err := v.expect(KindString); err != nil {
		return "", err
	}
	return v.str, nil
}

// AsInt unboxes an integer payload.
func (v Value) AsInt() (int64, error) {
	if err := v.expect(KindInt); err != nil {
		return 0, err
	}
	return v.i64, nil
}

// AsFloat unboxes a floating-point payload.
func (v Value) AsFloat() (float64, error) {
	if err := v.expect(KindFloat); err != nil {
		return 0, err
	}
	return v.f64, nil
}

// AsBool unboxes a boolean payload.
func (v Value) AsBool() (bool, error) {
	if err := v.expect(KindBool); err != nil {
		return false, err
	}
	return v.b, nil
}

// AsTime unboxes a time payload.
func (v Value) AsTime() (time.Time, error) {
	if err := v.expect(KindTime); err != nil {
		return time.Time{}, err
	}
	return v.tm, nil
}

// Native returns the payload as its natural Go type, or nil for a null.
func (v Value) Native() any {
	if v.null {
		return nil
	}
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.i64
	case KindFloat:
		return v.f64
	case KindBool:
		return v.b
	case KindTime:
		return v.tm
	default:
		return nil
	}
}

// Format renders the value invariantly, independent of any locale: integers
// and floats without grouping, booleans as "true"/"false", times as RFC 3339,
// nulls as "null". Validation message texts depend on this being stable.
func (v Value) Format() string {
	if v.null {
		return "null"
	}
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.tm.Format(time.RFC3339)
	default:
		return ""
	}
}

func (v Value) expect(k Kind) error {
	if v.kind != k {
		return errors.Join(ErrTypeMismatch, fmt.Errorf("want %s, have %s", k, v.kind))
	}
	return nil
}
