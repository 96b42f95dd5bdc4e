package recurrence

import (
	"regexp"
	"strings"
)

var monthPattern = regexp.MustCompile(`^(1[0-2]|[1-9])$`)

var (
	monthNames = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthShortNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	// February allows 29 so that leap days can be scheduled.
	monthMaxDays = []int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// Month is a month number, valid in [1,12].
type Month struct {
	OptionalInt
}

var (
	January   = Month{Int(1)}
	February  = Month{Int(2)}
	March     = Month{Int(3)}
	April     = Month{Int(4)}
	May       = Month{Int(5)}
	June      = Month{Int(6)}
	July      = Month{Int(7)}
	August    = Month{Int(8)}
	September = Month{Int(9)}
	October   = Month{Int(10)}
	November  = Month{Int(11)}
	December  = Month{Int(12)}
)

func NewMonth(v int) Month {
	return Month{Int(v)}
}

// Year returns the twelve months in order.
func Year() []Month {
	return []Month{January, February, March, April, May, June, July, August, September, October, November, December}
}

// MonthFromString parses 1-12, defaulting to January.
func MonthFromString(s string) Month {
	parsed := ""
	if m := monthPattern.FindStringSubmatch(s); m != nil {
		parsed = m[1]
	}
	return Month{ParseIntWithDefault(parsed, January.value)}
}

// MonthFromName matches an English month name or any prefix of at least three letters.
func MonthFromName(s string) Month {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return Month{}
	}
	for i, name := range monthNames {
		if strings.HasPrefix(strings.ToLower(name), s) {
			return NewMonth(i + 1)
		}
	}
	return Month{}
}

// IsValidMonth reports whether m is in [1,12].
func IsValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

func (m Month) IsValid() bool {
	return m.Is(IsValidMonth)
}

func (m Month) Name() string {
	if !m.IsValid() {
		return ""
	}
	return monthNames[m.value-1]
}

func (m Month) ShortName() string {
	if !m.IsValid() {
		return ""
	}
	return monthShortNames[m.value-1]
}

// MaxDays returns the longest the month can be, or absence for an invalid month.
func (m Month) MaxDays() OptionalInt {
	if !m.IsValid() {
		return None()
	}
	return Int(monthMaxDays[m.value-1])
}

// LimitDayToMax caps day at the month's maximum. An invalid month leaves day as is.
func (m Month) LimitDayToMax(day int) int {
	if limit, ok := m.MaxDays().Value(); ok && day > limit {
		return limit
	}
	return day
}
