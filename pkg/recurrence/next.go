package recurrence

import (
	"time"

	"github.com/pkg/errors"
	"github.com/teambition/rrule-go"
)

// ErrInvalidRecurrence is returned when run times are requested for a recurrence
// that IsValid rejects.
var ErrInvalidRecurrence = errors.New("invalid recurrence")

var rruleWeekdays = []rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// NextRuns returns up to n run times strictly after after. anchor is when the
// schedule started; intervals (every 2 weeks, every 3 months) count from it.
// Limited recurrences stop once their remaining runs are used.
func (r Recurrence) NextRuns(anchor, after time.Time, n int) ([]time.Time, error) {
	if !r.IsValid() {
		return nil, ErrInvalidRecurrence
	}
	if remaining, ok := r.TimesRemaining().Value(); ok && remaining < n {
		n = remaining
	}
	if n <= 0 {
		return []time.Time{}, nil
	}

	rule, err := r.rrule(anchor, after)
	if err != nil {
		return nil, err
	}

	runs := make([]time.Time, 0, n)
	from := after
	for len(runs) < n {
		next := rule.After(from, false)
		if next.IsZero() {
			break
		}
		runs = append(runs, next)
		from = next
	}
	return runs, nil
}

// NextRun returns the first run after after, if there is one.
func (r Recurrence) NextRun(anchor, after time.Time) (time.Time, bool, error) {
	runs, err := r.NextRuns(anchor, after, 1)
	if err != nil || len(runs) == 0 {
		return time.Time{}, false, err
	}
	return runs[0], true, nil
}

// RRule renders the rule as an RFC 5545 RRULE string, anchored at anchor.
func (r Recurrence) RRule(anchor time.Time) (string, error) {
	if !r.IsValid() {
		return "", ErrInvalidRecurrence
	}
	rule, err := r.rrule(anchor, anchor)
	if err != nil {
		return "", err
	}
	return rule.String(), nil
}

func (r Recurrence) rrule(anchor, after time.Time) (*rrule.RRule, error) {
	opt := rrule.ROption{
		Interval: r.Frequency,
		Wkst:     rrule.MO,
	}

	switch rule := r.Rule.(type) {
	case Minutely:
		opt.Freq = rrule.MINUTELY
		opt.Dtstart = alignedStart(anchor.UTC().Truncate(time.Minute), after, time.Duration(r.Frequency)*time.Minute)
		return newRRule(opt)
	case Hourly:
		opt.Freq = rrule.HOURLY
		opt.Byminute = []int{rule.MinuteOfHour.Or(0)}
		opt.Bysecond = []int{0}
		opt.Dtstart = alignedStart(anchor.UTC().Truncate(time.Hour), after, time.Duration(r.Frequency)*time.Hour)
		return newRRule(opt)
	}

	timed, _ := r.Rule.(timedRule)
	loc, err := time.LoadLocation(timed.timing().Zone.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown time zone %q", timed.timing().Zone.ID)
	}
	t := timed.timing().TimeOfDay
	opt.Byhour = []int{t.Hour.Or(0)}
	opt.Byminute = []int{t.Minute.Or(0)}
	opt.Bysecond = []int{0}

	local := anchor.In(loc)
	opt.Dtstart = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch rule := r.Rule.(type) {
	case Daily:
		opt.Freq = rrule.DAILY
	case Weekly:
		opt.Freq = rrule.WEEKLY
		for _, day := range sortedDays(rule.DaysOfWeek) {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[day.value])
		}
	case MonthlyByDayOfMonth:
		opt.Freq = rrule.MONTHLY
		opt.Bymonthday = []int{rule.DayOfMonth.value}
		opt.Dtstart = startOfMonth(local)
	case MonthlyByNthDayOfWeek:
		opt.Freq = rrule.MONTHLY
		opt.Byweekday = []rrule.Weekday{rruleWeekdays[rule.DayOfWeek.value].Nth(rule.NthDayOfWeek.value)}
		opt.Dtstart = startOfMonth(local)
	case Yearly:
		opt.Freq = rrule.YEARLY
		opt.Bymonth = []int{rule.Month.value}
		opt.Bymonthday = []int{rule.DayOfMonth.value}
	}
	return newRRule(opt)
}

// startOfMonth anchors monthly rules on the first so that an anchor late in the
// month still runs in the anchor month. Runs before the anchor are filtered by after.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func newRRule(opt rrule.ROption) (*rrule.RRule, error) {
	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build rrule")
	}
	return rule, nil
}

// alignedStart moves start forward by whole steps to the last step at or before
// after, so fixed-length rules do not iterate from a distant anchor.
func alignedStart(start, after time.Time, step time.Duration) time.Time {
	if step <= 0 || !after.After(start) {
		return start
	}
	steps := after.Sub(start) / step
	return start.Add(steps * step)
}
