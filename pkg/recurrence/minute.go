package recurrence

import (
	"fmt"
	"regexp"
)

var minutePattern = regexp.MustCompile(`^([0-5][0-9])$`)

// Minute is a minute of the hour, valid in [0,59].
type Minute struct {
	OptionalInt
}

func NewMinute(v int) Minute {
	return Minute{Int(v)}
}

// MinuteFromString reads a two-character minute field. When the trailing two
// characters are not a minute, the third-last and last characters are tried, so
// typing "7" after "59" reads as 57.
func MinuteFromString(s string) Minute {
	if m := minutePattern.FindStringSubmatch(lastChars(s, 2)); m != nil {
		return Minute{ParseInt(m[1])}
	}
	if len(s) >= 3 {
		candidate := string([]byte{s[len(s)-3], s[len(s)-1]})
		if m := minutePattern.FindStringSubmatch(candidate); m != nil {
			return Minute{ParseInt(m[1])}
		}
	}
	return Minute{}
}

// IsValidMinute reports whether m is in [0,59].
func IsValidMinute(m int) bool {
	return m >= 0 && m <= 59
}

func (m Minute) IsValid() bool {
	return m.Is(IsValidMinute)
}

// String renders the minute zero-padded to two digits.
func (m Minute) String() string {
	v, ok := m.Value()
	if !ok || !m.IsValid() {
		return ""
	}
	return fmt.Sprintf("%02d", v)
}
