package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eastern = Zone{ID: "America/New_York", Name: "Eastern Time"}

func dailyAt(hour, minute int, zone Zone) Recurrence {
	return New(WithRule(Daily{Timed{
		TimeOfDay: TimeOfDay{Hour: NewHour(hour), Minute: NewMinute(minute)},
		Zone:      zone,
	}}))
}

func weeklyOn(days ...DayOfWeek) Recurrence {
	return New(WithRule(Weekly{
		Timed:      Timed{TimeOfDay: DefaultTimeOfDay(), Zone: eastern},
		DaysOfWeek: days,
	}))
}

func TestRecurrence_IsValid(t *testing.T) {
	timed := Timed{TimeOfDay: DefaultTimeOfDay(), Zone: eastern}

	tests := []struct {
		name       string
		recurrence Recurrence
		want       bool
	}{
		{name: "Should accept a daily rule with a zone", recurrence: dailyAt(9, 0, eastern), want: true},
		{name: "Should reject a daily rule with an empty zone", recurrence: dailyAt(9, 0, Zone{}), want: false},
		{name: "Should reject a daily rule without a time", recurrence: New(WithRule(Daily{Timed{Zone: eastern}})), want: false},
		{name: "Should reject a daily rule with an invalid minute", recurrence: dailyAt(9, 60, eastern), want: false},
		{name: "Should reject a zero frequency", recurrence: dailyAt(9, 0, eastern).Clone(WithFrequency(0)), want: false},
		{name: "Should accept minutely", recurrence: New(WithRule(Minutely{})), want: true},
		{name: "Should reject minutely with a negative frequency", recurrence: New(WithRule(Minutely{}), WithFrequency(-1)), want: false},
		{name: "Should accept hourly at minute 15", recurrence: New(WithRule(Hourly{MinuteOfHour: Int(15)})), want: true},
		{name: "Should check the hourly minute against the hour range", recurrence: New(WithRule(Hourly{MinuteOfHour: Int(30)})), want: false},
		{name: "Should reject hourly without a minute", recurrence: New(WithRule(Hourly{})), want: false},
		{name: "Should reject weekly without days", recurrence: weeklyOn(), want: false},
		{name: "Should accept weekly on Monday", recurrence: weeklyOn(Monday), want: true},
		{name: "Should reject weekly with day 7", recurrence: weeklyOn(Monday, NewDayOfWeek(7)), want: false},
		{
			name:       "Should accept monthly on the 31st",
			recurrence: New(WithRule(MonthlyByDayOfMonth{Timed: timed, DayOfMonth: NewDayOfMonth(31)})),
			want:       true,
		},
		{
			name:       "Should reject monthly on the 32nd",
			recurrence: New(WithRule(MonthlyByDayOfMonth{Timed: timed, DayOfMonth: NewDayOfMonth(32)})),
			want:       false,
		},
		{
			name:       "Should accept the 2nd Tuesday",
			recurrence: New(WithRule(MonthlyByNthDayOfWeek{Timed: timed, NthDayOfWeek: Int(2), DayOfWeek: Tuesday})),
			want:       true,
		},
		{
			name:       "Should reject the 6th Tuesday",
			recurrence: New(WithRule(MonthlyByNthDayOfWeek{Timed: timed, NthDayOfWeek: Int(6), DayOfWeek: Tuesday})),
			want:       false,
		},
		{
			name:       "Should accept yearly on March 3rd",
			recurrence: New(WithRule(Yearly{Timed: timed, Month: March, DayOfMonth: NewDayOfMonth(3)})),
			want:       true,
		},
		{
			name:       "Should reject yearly without a month",
			recurrence: New(WithRule(Yearly{Timed: timed, DayOfMonth: NewDayOfMonth(3)})),
			want:       false,
		},
		{name: "Should reject an unrecognized type", recurrence: New(WithRule(Unrecognized{Name: "fortnightly"})), want: false},
		{name: "Should reject a missing rule", recurrence: New(WithRule(nil)), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.recurrence.IsValid())
		})
	}
}

func TestRecurrence_IsValidPerType(t *testing.T) {
	r := weeklyOn(Friday)
	assert.True(t, r.IsValidWeekly())
	assert.False(t, r.IsValidDaily())
	assert.False(t, r.IsValidMinutely())
	assert.True(t, r.HasValidTimeZone())
	assert.True(t, r.HasValidTimeOfDay())

	hourly := New(WithRule(Hourly{MinuteOfHour: Int(0)}))
	assert.False(t, hourly.HasValidTimeZone())
	assert.False(t, hourly.HasValidTimeOfDay())
}

func TestRecurrence_New(t *testing.T) {
	r := New()
	assert.Equal(t, 1, r.Frequency)
	assert.Equal(t, TypeDaily, r.TypeName())
	tod, ok := r.TimeOfDay()
	require.True(t, ok)
	assert.Equal(t, "9:00 AM", tod.String())
	assert.False(t, r.IsValid(), "no zone yet")

	withZone := NewWithDefaults(eastern)
	assert.True(t, withZone.IsValid())
	assert.Equal(t, eastern, withZone.Zone())
}

func TestRecurrence_Clone(t *testing.T) {
	t.Run("Should replace only the given field", func(t *testing.T) {
		original := weeklyOn(Monday, Wednesday).Clone(WithID("abc"), WithDisplayString("weekly"))
		clone := original.Clone(WithFrequency(5))

		assert.Equal(t, 5, clone.Frequency)
		assert.Equal(t, 1, original.Frequency)
		assert.True(t, clone.Clone(WithFrequency(1)).Equal(original))
	})

	t.Run("Should not share days with the original", func(t *testing.T) {
		original := weeklyOn(Monday)
		clone := original.Clone()
		weekly := clone.Rule.(Weekly)
		weekly.DaysOfWeek[0] = Sunday

		assert.Equal(t, []DayOfWeek{Monday}, original.DaysOfWeek())
	})

	t.Run("Should set time and zone on timed rules only", func(t *testing.T) {
		noon := TimeOfDay{Hour: NewHour(12), Minute: NewMinute(0)}
		daily := dailyAt(9, 0, eastern).Clone(WithTimeOfDay(noon), WithZone(Zone{ID: "UTC"}))
		tod, _ := daily.TimeOfDay()
		assert.Equal(t, noon, tod)
		assert.Equal(t, "UTC", daily.Zone().ID)

		minutely := New(WithRule(Minutely{})).Clone(WithTimeOfDay(noon))
		_, ok := minutely.TimeOfDay()
		assert.False(t, ok)
	})
}

func TestRecurrence_Become(t *testing.T) {
	t.Run("Should drop the time when becoming hourly", func(t *testing.T) {
		r := dailyAt(14, 30, eastern).BecomeHourly()

		assert.Equal(t, TypeHourly, r.TypeName())
		_, ok := r.TimeOfDay()
		assert.False(t, ok)
		assert.Equal(t, Zone{}, r.Zone())
		assert.True(t, r.MinuteOfHour().Equal(Int(0)))
	})

	t.Run("Should keep the minute of an hourly rule", func(t *testing.T) {
		r := New(WithRule(Hourly{MinuteOfHour: Int(7)})).BecomeHourly()
		assert.True(t, r.MinuteOfHour().Equal(Int(7)))
	})

	t.Run("Should carry time and zone between timed rules", func(t *testing.T) {
		r := dailyAt(14, 30, eastern).BecomeWeekly(Zone{ID: "UTC", Name: "UTC"})

		assert.Equal(t, TypeWeekly, r.TypeName())
		tod, ok := r.TimeOfDay()
		require.True(t, ok)
		assert.Equal(t, "2:30 PM", tod.String())
		assert.Equal(t, eastern, r.Zone())
		assert.Empty(t, r.DaysOfWeek())
	})

	t.Run("Should take defaults when coming from an untimed rule", func(t *testing.T) {
		r := New(WithRule(Minutely{})).BecomeDaily(eastern)

		tod, ok := r.TimeOfDay()
		require.True(t, ok)
		assert.Equal(t, DefaultTimeOfDay(), tod)
		assert.Equal(t, eastern, r.Zone())
		assert.True(t, r.IsValid())
	})

	t.Run("Should keep weekly days", func(t *testing.T) {
		r := weeklyOn(Tuesday, Thursday).BecomeWeekly(eastern)
		assert.Equal(t, []DayOfWeek{Tuesday, Thursday}, r.DaysOfWeek())
	})

	t.Run("Should default the day of month to the 1st", func(t *testing.T) {
		r := dailyAt(9, 0, eastern).BecomeMonthlyByDayOfMonth(eastern)
		assert.True(t, r.DayOfMonth().Equal(Int(1)))
		assert.True(t, r.IsValid())
	})

	t.Run("Should start yearly rules in January and keep the day", func(t *testing.T) {
		monthly := New(WithRule(MonthlyByDayOfMonth{
			Timed:      Timed{TimeOfDay: DefaultTimeOfDay(), Zone: eastern},
			DayOfMonth: NewDayOfMonth(15),
		}))
		r := monthly.BecomeYearly(eastern)

		assert.Equal(t, January, r.Month())
		assert.True(t, r.DayOfMonth().Equal(Int(15)))
		assert.True(t, r.IsValid())
	})

	t.Run("Should derive the nth weekday from the day of month", func(t *testing.T) {
		monthly := New(WithRule(MonthlyByDayOfMonth{
			Timed:      Timed{TimeOfDay: DefaultTimeOfDay(), Zone: eastern},
			DayOfMonth: NewDayOfMonth(23),
		}))
		r := monthly.BecomeMonthlyByNthDayOfWeek(eastern)

		assert.True(t, r.NthDayOfWeek().Equal(Int(3)))
		assert.Equal(t, Monday, r.DayOfWeek())
		assert.True(t, r.IsValid())

		back := r.BecomeMonthlyByDayOfMonth(eastern)
		assert.True(t, back.DayOfMonth().Equal(Int(1)))
	})

	t.Run("Should dispatch by type name", func(t *testing.T) {
		r := dailyAt(9, 0, eastern)
		for _, typeName := range []TypeName{
			TypeMinutely, TypeHourly, TypeDaily, TypeWeekly, TypeMonthlyByDayOfMonth, TypeMonthlyByNthDayOfWeek, TypeYearly,
		} {
			assert.Equal(t, typeName, r.Become(typeName, eastern).TypeName())
		}
		assert.Equal(t, TypeDaily, r.Become("fortnightly", eastern).TypeName())
	})
}

func TestLimitNthWeekdayNumber(t *testing.T) {
	assert.Equal(t, 1, LimitNthWeekdayNumber(None()))
	assert.Equal(t, 1, LimitNthWeekdayNumber(Int(10)))
	assert.Equal(t, 2, LimitNthWeekdayNumber(Int(12)))
	assert.Equal(t, 5, LimitNthWeekdayNumber(Int(9)))
	assert.Equal(t, 4, LimitNthWeekdayNumber(Int(4)))
}

func TestRecurrence_LimitTimesToRun(t *testing.T) {
	t.Run("Should reset the run count when the total changes", func(t *testing.T) {
		r := dailyAt(9, 0, eastern).Clone(WithTotalTimesToRun(Int(5)), WithTimesHasRun(3))

		changed := r.LimitTimesToRun(Int(10))
		assert.Equal(t, 0, changed.TimesHasRun)
		assert.True(t, changed.TimesRemaining().Equal(Int(10)))

		same := r.LimitTimesToRun(Int(5))
		assert.Equal(t, 3, same.TimesHasRun)
		assert.True(t, same.TimesRemaining().Equal(Int(2)))
	})

	t.Run("Should force frequency 1 for a single run", func(t *testing.T) {
		r := dailyAt(9, 0, eastern).Clone(WithFrequency(3)).LimitTimesToRun(Int(1))
		assert.Equal(t, 1, r.Frequency)
	})

	t.Run("Should keep the last days when fewer runs than days", func(t *testing.T) {
		r := weeklyOn(Monday, Wednesday, Friday).LimitTimesToRun(Int(2))
		assert.Equal(t, []DayOfWeek{Wednesday, Friday}, r.DaysOfWeek())
	})

	t.Run("Should be unlimited without a total", func(t *testing.T) {
		r := dailyAt(9, 0, eastern).LimitTimesToRun(None())
		assert.False(t, r.TimesRemaining().HasValue())
		assert.False(t, r.IsExhausted())
	})

	t.Run("Should be exhausted once every run happened", func(t *testing.T) {
		r := dailyAt(9, 0, eastern).Clone(WithTotalTimesToRun(Int(2)), WithTimesHasRun(2))
		assert.True(t, r.IsExhausted())
	})
}

func TestRecurrence_ForEqualityComparison(t *testing.T) {
	a := dailyAt(9, 0, eastern).Clone(WithDisplayString("Every day at 9:00 AM"))
	b := dailyAt(9, 0, Zone{ID: eastern.ID, Name: "EST"}).Clone(WithDisplayString("daily"))

	assert.False(t, a.Equal(b))
	assert.True(t, a.ForEqualityComparison().Equal(b.ForEqualityComparison()))
	assert.True(t, a.SemanticallyEqual(b))
	assert.False(t, a.SemanticallyEqual(a.Clone(WithFrequency(2))))
}

func TestRecurrence_Equal(t *testing.T) {
	t.Run("Should treat nil and empty days alike", func(t *testing.T) {
		a := New(WithRule(Weekly{Timed: Timed{Zone: eastern}}))
		b := New(WithRule(Weekly{Timed: Timed{Zone: eastern}, DaysOfWeek: []DayOfWeek{}}))
		assert.True(t, a.Equal(b))
	})

	t.Run("Should tell absent totals from zero", func(t *testing.T) {
		a := New(WithTotalTimesToRun(None()))
		b := New(WithTotalTimesToRun(Int(0)))
		assert.False(t, a.Equal(b))
	})
}
