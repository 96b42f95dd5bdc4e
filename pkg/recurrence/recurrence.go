package recurrence

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Recurrence describes how often and when a scheduled action repeats.
//
// Values are never changed in place: Clone and the Become* transitions return new
// values.
type Recurrence struct {
	ID            string
	DisplayString string
	Frequency     int
	// TotalTimesToRun limits the number of runs; absent means forever.
	TotalTimesToRun OptionalInt
	TimesHasRun     int
	Rule            Rule
}

// Option changes a Recurrence under construction.
type Option func(*Recurrence)

func WithID(id string) Option {
	return func(r *Recurrence) { r.ID = id }
}

func WithDisplayString(s string) Option {
	return func(r *Recurrence) { r.DisplayString = s }
}

func WithFrequency(frequency int) Option {
	return func(r *Recurrence) { r.Frequency = frequency }
}

func WithRule(rule Rule) Option {
	return func(r *Recurrence) { r.Rule = rule }
}

func WithTotalTimesToRun(total OptionalInt) Option {
	return func(r *Recurrence) { r.TotalTimesToRun = total }
}

func WithTimesHasRun(n int) Option {
	return func(r *Recurrence) { r.TimesHasRun = n }
}

// WithTimeOfDay sets the time of a time-of-day rule. Other rules are left alone.
func WithTimeOfDay(t TimeOfDay) Option {
	return func(r *Recurrence) {
		r.Rule = mapTimed(r.Rule, func(timed Timed) Timed {
			timed.TimeOfDay = t
			return timed
		})
	}
}

// WithZone sets the zone of a time-of-day rule. Other rules are left alone.
func WithZone(zone Zone) Option {
	return func(r *Recurrence) {
		r.Rule = mapTimed(r.Rule, func(timed Timed) Timed {
			timed.Zone = zone
			return timed
		})
	}
}

// New returns a daily recurrence at 9:00 with frequency 1, then applies opts.
func New(opts ...Option) Recurrence {
	r := Recurrence{
		Frequency: 1,
		Rule:      Daily{Timed{TimeOfDay: DefaultTimeOfDay()}},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewWithDefaults returns the daily recurrence new scheduled actions start with.
func NewWithDefaults(zone Zone) Recurrence {
	return New().BecomeDaily(zone)
}

// Clone returns a deep copy with opts applied.
func (r Recurrence) Clone(opts ...Option) Recurrence {
	c := r
	c.Rule = copyRule(r.Rule)
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func copyRule(rule Rule) Rule {
	if weekly, ok := rule.(Weekly); ok {
		weekly.DaysOfWeek = append([]DayOfWeek(nil), weekly.DaysOfWeek...)
		return weekly
	}
	return rule
}

func mapTimed(rule Rule, fn func(Timed) Timed) Rule {
	switch v := rule.(type) {
	case Daily:
		v.Timed = fn(v.Timed)
		return v
	case Weekly:
		v.Timed = fn(v.Timed)
		return v
	case MonthlyByDayOfMonth:
		v.Timed = fn(v.Timed)
		return v
	case MonthlyByNthDayOfWeek:
		v.Timed = fn(v.Timed)
		return v
	case Yearly:
		v.Timed = fn(v.Timed)
		return v
	default:
		return rule
	}
}

// TypeName returns the active rule's type, or "" without a rule.
func (r Recurrence) TypeName() TypeName {
	if r.Rule == nil {
		return ""
	}
	return r.Rule.TypeName()
}

// TimeOfDay returns the rule's time of day, if the rule has one.
func (r Recurrence) TimeOfDay() (TimeOfDay, bool) {
	if t, ok := r.Rule.(timedRule); ok && t.timing().TimeOfDay.IsSet() {
		return t.timing().TimeOfDay, true
	}
	return TimeOfDay{}, false
}

// FallbackTimeOfDay returns the rule's time of day or 9:00.
func (r Recurrence) FallbackTimeOfDay() TimeOfDay {
	if t, ok := r.TimeOfDay(); ok {
		return t
	}
	return DefaultTimeOfDay()
}

// Zone returns the rule's zone; rules without a time of day have none.
func (r Recurrence) Zone() Zone {
	if t, ok := r.Rule.(timedRule); ok {
		return t.timing().Zone
	}
	return Zone{}
}

func (r Recurrence) MinuteOfHour() OptionalInt {
	if v, ok := r.Rule.(Hourly); ok {
		return v.MinuteOfHour
	}
	return None()
}

func (r Recurrence) DayOfWeek() DayOfWeek {
	if v, ok := r.Rule.(MonthlyByNthDayOfWeek); ok {
		return v.DayOfWeek
	}
	return DayOfWeek{}
}

func (r Recurrence) DayOfMonth() DayOfMonth {
	switch v := r.Rule.(type) {
	case MonthlyByDayOfMonth:
		return v.DayOfMonth
	case Yearly:
		return v.DayOfMonth
	}
	return DayOfMonth{}
}

func (r Recurrence) NthDayOfWeek() OptionalInt {
	if v, ok := r.Rule.(MonthlyByNthDayOfWeek); ok {
		return v.NthDayOfWeek
	}
	return None()
}

func (r Recurrence) Month() Month {
	if v, ok := r.Rule.(Yearly); ok {
		return v.Month
	}
	return Month{}
}

// DaysOfWeek returns a copy of the weekly days; other rules have none.
func (r Recurrence) DaysOfWeek() []DayOfWeek {
	if v, ok := r.Rule.(Weekly); ok {
		return append([]DayOfWeek{}, v.DaysOfWeek...)
	}
	return []DayOfWeek{}
}

func (r Recurrence) HasValidFrequency() bool {
	return r.Frequency > 0
}

func (r Recurrence) HasValidTimeZone() bool {
	return r.Zone().IsValid()
}

func (r Recurrence) HasValidTimeOfDay() bool {
	t, ok := r.Rule.(timedRule)
	return ok && t.timing().hasValidTimeOfDay()
}

func (r Recurrence) HasValidNthDayOfWeek() bool {
	return hasValidNth(r.NthDayOfWeek())
}

func (r Recurrence) isValidAs(typeName TypeName) bool {
	return r.Rule != nil && r.Rule.TypeName() == typeName && r.HasValidFrequency() && r.Rule.valid()
}

func (r Recurrence) IsValidMinutely() bool {
	return r.isValidAs(TypeMinutely)
}

func (r Recurrence) IsValidHourly() bool {
	return r.isValidAs(TypeHourly)
}

func (r Recurrence) IsValidDaily() bool {
	return r.isValidAs(TypeDaily)
}

func (r Recurrence) IsValidWeekly() bool {
	return r.isValidAs(TypeWeekly)
}

func (r Recurrence) IsValidMonthlyByDayOfMonth() bool {
	return r.isValidAs(TypeMonthlyByDayOfMonth)
}

func (r Recurrence) IsValidMonthlyByNthDayOfWeek() bool {
	return r.isValidAs(TypeMonthlyByNthDayOfWeek)
}

func (r Recurrence) IsValidYearly() bool {
	return r.isValidAs(TypeYearly)
}

// IsValid reports whether the recurrence can be saved.
func (r Recurrence) IsValid() bool {
	return r.IsValidMinutely() || r.IsValidHourly() || r.IsValidDaily() || r.IsValidWeekly() ||
		r.IsValidMonthlyByDayOfMonth() || r.IsValidMonthlyByNthDayOfWeek() || r.IsValidYearly()
}

// TimesRemaining returns how many runs are left, or absence when unlimited.
func (r Recurrence) TimesRemaining() OptionalInt {
	return r.TotalTimesToRun.Map(func(total int) int {
		if remaining := total - r.TimesHasRun; remaining > 0 {
			return remaining
		}
		return 0
	})
}

// IsExhausted reports whether a limited recurrence has used all of its runs.
func (r Recurrence) IsExhausted() bool {
	return r.TimesRemaining().Is(func(n int) bool { return n == 0 })
}

// LimitTimesToRun sets the total number of runs. Changing the total restarts the
// run count; a single run forces frequency 1, and weekly days beyond the total are
// dropped from the front.
func (r Recurrence) LimitTimesToRun(total OptionalInt) Recurrence {
	changed := !total.Equal(r.TotalTimesToRun)
	frequency := r.Frequency
	if total.Is(func(n int) bool { return n == 1 }) {
		frequency = 1
	}
	timesHasRun := r.TimesHasRun
	if changed {
		timesHasRun = 0
	}
	c := r.Clone(
		WithFrequency(frequency),
		WithTotalTimesToRun(total),
		WithTimesHasRun(timesHasRun),
	)
	if weekly, ok := c.Rule.(Weekly); ok {
		if n, ok := total.Value(); ok && n > 0 && n < len(weekly.DaysOfWeek) {
			weekly.DaysOfWeek = weekly.DaysOfWeek[len(weekly.DaysOfWeek)-n:]
			c.Rule = weekly
		}
	}
	return c
}

// ForEqualityComparison drops the presentation fields the server derives.
func (r Recurrence) ForEqualityComparison() Recurrence {
	return r.Clone(
		WithDisplayString(""),
		func(c *Recurrence) {
			c.Rule = mapTimed(c.Rule, func(timed Timed) Timed {
				timed.Zone.Name = ""
				return timed
			})
		},
	)
}

// recurrenceFields has Recurrence's fields without its Equal method, which cmp
// would otherwise call recursively.
type recurrenceFields Recurrence

// Equal compares two recurrences field by field.
func (r Recurrence) Equal(other Recurrence) bool {
	return cmp.Equal(recurrenceFields(r), recurrenceFields(other), cmpopts.EquateEmpty())
}

// SemanticallyEqual compares two recurrences ignoring presentation fields.
func (r Recurrence) SemanticallyEqual(other Recurrence) bool {
	return r.ForEqualityComparison().Equal(other.ForEqualityComparison())
}
