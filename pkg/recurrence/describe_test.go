package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecurrence_Describe(t *testing.T) {
	tests := []struct {
		name       string
		recurrence Recurrence
		want       string
	}{
		{name: "Should describe every minute", recurrence: New(WithRule(Minutely{})), want: "Every minute"},
		{name: "Should pluralize minutes", recurrence: New(WithRule(Minutely{}), WithFrequency(5)), want: "Every 5 minutes"},
		{
			name:       "Should describe hourly",
			recurrence: New(WithRule(Hourly{MinuteOfHour: Int(15)}), WithFrequency(2)),
			want:       "Every 2 hours at 15 minutes past the hour",
		},
		{name: "Should describe daily", recurrence: dailyAt(21, 5, eastern), want: "Every day at 9:05 PM Eastern Time"},
		{
			name:       "Should fall back to the zone id",
			recurrence: dailyAt(0, 0, Zone{ID: "Europe/Paris"}),
			want:       "Every day at 12:00 AM Europe/Paris",
		},
		{
			name:       "Should list weekly days Monday first",
			recurrence: weeklyOn(Friday, Monday, Wednesday).Clone(WithFrequency(2)),
			want:       "Every 2 weeks on Monday, Wednesday and Friday at 9:00 AM Eastern Time",
		},
		{
			name: "Should describe the day of month",
			recurrence: New(WithRule(MonthlyByDayOfMonth{
				Timed:      Timed{TimeOfDay: DefaultTimeOfDay(), Zone: eastern},
				DayOfMonth: NewDayOfMonth(22),
			})),
			want: "Every month on the 22nd at 9:00 AM Eastern Time",
		},
		{
			name: "Should describe the nth weekday",
			recurrence: New(WithRule(MonthlyByNthDayOfWeek{
				Timed:        Timed{TimeOfDay: DefaultTimeOfDay(), Zone: eastern},
				NthDayOfWeek: Int(3),
				DayOfWeek:    Thursday,
			})),
			want: "Every month on the 3rd Thursday at 9:00 AM Eastern Time",
		},
		{
			name: "Should describe yearly",
			recurrence: New(WithRule(Yearly{
				Timed:      Timed{TimeOfDay: DefaultTimeOfDay(), Zone: eastern},
				Month:      July,
				DayOfMonth: NewDayOfMonth(4),
			})),
			want: "Every year on July 4th at 9:00 AM Eastern Time",
		},
		{
			name:       "Should mention limited runs",
			recurrence: dailyAt(9, 0, eastern).Clone(WithTotalTimesToRun(Int(3))),
			want:       "Every day at 9:00 AM Eastern Time (3 times)",
		},
		{
			name:       "Should say once",
			recurrence: dailyAt(9, 0, eastern).Clone(WithTotalTimesToRun(Int(1))),
			want:       "Every day at 9:00 AM Eastern Time (once)",
		},
		{name: "Should describe invalid recurrences as empty", recurrence: weeklyOn(), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.recurrence.Describe())
		})
	}
}

func TestRecurrence_WithDescription(t *testing.T) {
	r := dailyAt(9, 0, eastern).WithDescription()
	assert.Equal(t, "Every day at 9:00 AM Eastern Time", r.DisplayString)
}
