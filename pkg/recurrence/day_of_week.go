package recurrence

import (
	"regexp"
	"strings"
)

var dayOfWeekPattern = regexp.MustCompile(`^([0-6])$`)

var (
	dayOfWeekNames      = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	dayOfWeekShortNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// DayOfWeek is a weekday number, valid in [0,6] with 0 = Sunday.
type DayOfWeek struct {
	OptionalInt
}

var (
	Sunday    = DayOfWeek{Int(0)}
	Monday    = DayOfWeek{Int(1)}
	Tuesday   = DayOfWeek{Int(2)}
	Wednesday = DayOfWeek{Int(3)}
	Thursday  = DayOfWeek{Int(4)}
	Friday    = DayOfWeek{Int(5)}
	Saturday  = DayOfWeek{Int(6)}
)

func NewDayOfWeek(v int) DayOfWeek {
	return DayOfWeek{Int(v)}
}

// Week returns the days of the week starting on Monday.
func Week() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// DayOfWeekFromString parses a single digit 0-6, defaulting to Monday.
func DayOfWeekFromString(s string) DayOfWeek {
	if m := dayOfWeekPattern.FindStringSubmatch(s); m != nil {
		return DayOfWeek{ParseInt(m[1])}
	}
	return Monday
}

// DayOfWeekFromName matches an English day name or any prefix of at least two
// letters ("mo", "tue", "wednesday").
func DayOfWeekFromName(s string) DayOfWeek {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return DayOfWeek{}
	}
	for i, name := range dayOfWeekNames {
		if strings.HasPrefix(strings.ToLower(name), s) {
			return NewDayOfWeek(i)
		}
	}
	return DayOfWeek{}
}

// IsValidDayOfWeek reports whether d is in [0,6].
func IsValidDayOfWeek(d int) bool {
	return d >= 0 && d <= 6
}

func (d DayOfWeek) IsValid() bool {
	return d.Is(IsValidDayOfWeek)
}

// Name returns the English day name, or "" when invalid.
func (d DayOfWeek) Name() string {
	if !d.IsValid() {
		return ""
	}
	return dayOfWeekNames[d.value]
}

// ShortName returns the three-letter day name, or "" when invalid.
func (d DayOfWeek) ShortName() string {
	if !d.IsValid() {
		return ""
	}
	return dayOfWeekShortNames[d.value]
}
