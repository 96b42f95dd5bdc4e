package recurrence

import (
	"regexp"
)

var dayOfMonthPattern = regexp.MustCompile(`^(3[0-1]|[1-2][0-9]|[1-9])$`)

// DayOfMonth is a calendar day number, valid in [1,31].
type DayOfMonth struct {
	OptionalInt
}

func NewDayOfMonth(v int) DayOfMonth {
	return DayOfMonth{Int(v)}
}

// DayOfMonthFromString reads the trailing two characters of s.
func DayOfMonthFromString(s string) DayOfMonth {
	if m := dayOfMonthPattern.FindStringSubmatch(lastChars(s, 2)); m != nil {
		return DayOfMonth{ParseInt(m[1])}
	}
	return DayOfMonth{}
}

// IsValidDayOfMonth reports whether d is in [1,31].
func IsValidDayOfMonth(d int) bool {
	return d >= 1 && d <= 31
}

func (d DayOfMonth) IsValid() bool {
	return d.Is(IsValidDayOfMonth)
}

// OrdinalSuffix returns the English ordinal suffix of the day: "st", "nd", "rd" or
// "th". 11, 12 and 13 take "th".
func (d DayOfMonth) OrdinalSuffix() string {
	v, ok := d.Value()
	if !ok {
		return ""
	}
	return OrdinalSuffix(v)
}

// Ordinal renders the day with its suffix, e.g. "21st".
func (d DayOfMonth) Ordinal() string {
	if !d.HasValue() {
		return ""
	}
	return d.String() + d.OrdinalSuffix()
}

// OrdinalSuffix returns the English ordinal suffix for n.
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
