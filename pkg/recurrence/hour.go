package recurrence

import (
	"regexp"
	"strconv"
)

var (
	hourTwoDigitPattern = regexp.MustCompile(`^(1[0-2]|[1-9])$`)
	hourOneDigitPattern = regexp.MustCompile(`^([1-9])$`)
	hourZeroPattern     = regexp.MustCompile(`^(0)$`)
)

// Hour is an hour of the day in 24-hour form, valid in [0,24).
type Hour struct {
	OptionalInt
}

// NewHour wraps a 24-hour value.
func NewHour(v int) Hour {
	return Hour{Int(v)}
}

// HourFromString reads the hour a user is typing into a 12-hour field. Only the
// trailing one or two characters count, so "1" followed by "12" both parse.
func HourFromString(s string) Hour {
	if m := hourTwoDigitPattern.FindStringSubmatch(lastChars(s, 2)); m != nil {
		return Hour{ParseInt(m[1])}
	}
	if m := hourOneDigitPattern.FindStringSubmatch(lastChars(s, 1)); m != nil {
		return Hour{ParseInt(m[1])}
	}
	if m := hourZeroPattern.FindStringSubmatch(s); m != nil {
		return Hour{ParseInt(m[1])}
	}
	return Hour{}
}

// IsValidHour reports whether h is in [0,24).
func IsValidHour(h int) bool {
	return h >= 0 && h < 24
}

// IsAMHour reports whether h is in [0,12).
func IsAMHour(h int) bool {
	return h >= 0 && h < 12
}

// IsPMHour reports whether h is in [12,24).
func IsPMHour(h int) bool {
	return h >= 12 && h < 24
}

// ConvertToAM moves a PM hour into the morning. Other values are returned unchanged.
func ConvertToAM(h int) int {
	if IsPMHour(h) {
		return h - 12
	}
	return h
}

// ConvertToPM moves an AM hour into the afternoon. Other values are returned unchanged.
func ConvertToPM(h int) int {
	if IsAMHour(h) {
		return h + 12
	}
	return h
}

func (h Hour) IsValid() bool {
	return h.Is(IsValidHour)
}

func (h Hour) IsAM() bool {
	return h.Is(IsAMHour)
}

func (h Hour) IsPM() bool {
	return h.Is(IsPMHour)
}

func (h Hour) ConvertToAMValue() OptionalInt {
	return h.Map(ConvertToAM)
}

func (h Hour) ConvertToPMValue() OptionalInt {
	return h.Map(ConvertToPM)
}

// String renders the 12-hour clock value: 0 is "12", 13 is "1".
func (h Hour) String() string {
	v, ok := h.Value()
	switch {
	case !ok:
		return ""
	case h.IsPM() && v > 12:
		return strconv.Itoa(v - 12)
	case h.IsAM() && v == 0:
		return "12"
	case h.IsValid():
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Meridiem returns "AM" or "PM", or "" for an invalid hour.
func (h Hour) Meridiem() string {
	switch {
	case h.IsAM():
		return "AM"
	case h.IsPM():
		return "PM"
	default:
		return ""
	}
}
