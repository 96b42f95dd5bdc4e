package recurrence

import (
	"fmt"
	"strings"
)

// Describe renders the recurrence for people, e.g. "Every 2 weeks on Monday and
// Wednesday at 9:30 AM Eastern Time". Invalid recurrences describe as "".
func (r Recurrence) Describe() string {
	if !r.IsValid() {
		return ""
	}

	var b strings.Builder
	switch rule := r.Rule.(type) {
	case Minutely:
		b.WriteString(every(r.Frequency, "minute"))
	case Hourly:
		b.WriteString(every(r.Frequency, "hour"))
		fmt.Fprintf(&b, " at %s past the hour", minutesPast(rule.MinuteOfHour))
	case Daily:
		b.WriteString(every(r.Frequency, "day"))
		b.WriteString(at(rule.Timed))
	case Weekly:
		b.WriteString(every(r.Frequency, "week"))
		b.WriteString(" on ")
		b.WriteString(joinDays(rule.DaysOfWeek))
		b.WriteString(at(rule.Timed))
	case MonthlyByDayOfMonth:
		b.WriteString(every(r.Frequency, "month"))
		fmt.Fprintf(&b, " on the %s", rule.DayOfMonth.Ordinal())
		b.WriteString(at(rule.Timed))
	case MonthlyByNthDayOfWeek:
		b.WriteString(every(r.Frequency, "month"))
		nth, _ := rule.NthDayOfWeek.Value()
		fmt.Fprintf(&b, " on the %d%s %s", nth, OrdinalSuffix(nth), rule.DayOfWeek.Name())
		b.WriteString(at(rule.Timed))
	case Yearly:
		b.WriteString(every(r.Frequency, "year"))
		fmt.Fprintf(&b, " on %s %s", rule.Month.Name(), rule.DayOfMonth.Ordinal())
		b.WriteString(at(rule.Timed))
	}

	if total, ok := r.TotalTimesToRun.Value(); ok {
		b.WriteString(timesSuffix(total))
	}
	return b.String()
}

// WithDescription returns a clone whose DisplayString is Describe().
func (r Recurrence) WithDescription() Recurrence {
	return r.Clone(WithDisplayString(r.Describe()))
}

func every(frequency int, unit string) string {
	if frequency == 1 {
		return "Every " + unit
	}
	return fmt.Sprintf("Every %d %ss", frequency, unit)
}

func at(timed Timed) string {
	zone := timed.Zone.Name
	if zone == "" {
		zone = timed.Zone.ID
	}
	return fmt.Sprintf(" at %s %s", timed.TimeOfDay, zone)
}

func minutesPast(minute OptionalInt) string {
	v := minute.Or(0)
	if v == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", v)
}

func joinDays(days []DayOfWeek) string {
	names := make([]string, 0, len(days))
	for _, day := range sortedDays(days) {
		names = append(names, day.Name())
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// sortedDays orders days Monday first and drops duplicates.
func sortedDays(days []DayOfWeek) []DayOfWeek {
	sorted := make([]DayOfWeek, 0, len(days))
	for _, day := range Week() {
		for _, d := range days {
			if d.Equal(day.OptionalInt) {
				sorted = append(sorted, day)
				break
			}
		}
	}
	return sorted
}

func timesSuffix(total int) string {
	switch total {
	case 1:
		return " (once)"
	case 2:
		return " (twice)"
	default:
		return fmt.Sprintf(" (%d times)", total)
	}
}
