// Package recurrence models the repeat rules of scheduled actions: how often they
// run and at what time of day, week, month or year.
//
// The bounded value types (Hour, Minute, DayOfWeek, DayOfMonth, Month) back live
// form fields, so parsing never fails: input that cannot be understood yet becomes
// an absent value instead of an error.
package recurrence

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var integerPattern = regexp.MustCompile(`^-?\d+$`)

// OptionalInt is an integer that may be absent. Absence is distinct from zero.
type OptionalInt struct {
	value int
	set   bool
}

// Int returns a present OptionalInt holding v.
func Int(v int) OptionalInt {
	return OptionalInt{value: v, set: true}
}

// None returns an absent OptionalInt.
func None() OptionalInt {
	return OptionalInt{}
}

// ParseInt parses a whole-number string. Anything else is absence.
func ParseInt(s string) OptionalInt {
	s = strings.TrimSpace(s)
	if !integerPattern.MatchString(s) {
		return None()
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return None()
	}
	return Int(v)
}

// ParseIntWithDefault parses s, falling back to def when s is not a whole number.
func ParseIntWithDefault(s string, def int) OptionalInt {
	if parsed := ParseInt(s); parsed.set {
		return parsed
	}
	return Int(def)
}

// Value returns the integer and whether it is present.
func (o OptionalInt) Value() (int, bool) {
	return o.value, o.set
}

// HasValue reports whether the integer is present.
func (o OptionalInt) HasValue() bool {
	return o.set
}

// Equal reports whether both are absent or both hold the same value.
func (o OptionalInt) Equal(other OptionalInt) bool {
	if !o.set || !other.set {
		return o.set == other.set
	}
	return o.value == other.value
}

// Or returns the value, or def when absent.
func (o OptionalInt) Or(def int) int {
	if !o.set {
		return def
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o OptionalInt) Ptr() *int {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// Is returns false when absent, otherwise the predicate result.
func (o OptionalInt) Is(predicate func(int) bool) bool {
	return o.set && predicate(o.value)
}

// Map applies fn to a present value. Absence maps to absence.
func (o OptionalInt) Map(fn func(int) int) OptionalInt {
	if !o.set {
		return None()
	}
	return Int(fn(o.value))
}

// ValueWithinRange clamps a present value to [low, high].
func (o OptionalInt) ValueWithinRange(low, high int) OptionalInt {
	return o.Map(func(v int) int {
		if v < low {
			return low
		}
		if v > high {
			return high
		}
		return v
	})
}

// String renders the integer, or "" when absent.
func (o OptionalInt) String() string {
	if !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

// MarshalJSON renders the integer, or an empty string when absent.
func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(o.value)), nil
}

// UnmarshalJSON accepts a number, a numeric string, "" or null. Non-integral
// numbers and other strings decode to absence.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = None()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = ParseInt(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f != float64(int(f)) {
		*o = None()
		return nil
	}
	*o = Int(int(f))
	return nil
}

// lastChars returns up to n trailing bytes of s.
func lastChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
