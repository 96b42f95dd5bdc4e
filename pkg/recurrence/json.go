package recurrence

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type timeOfDayJSON struct {
	Hour   *int `json:"hour"`
	Minute *int `json:"minute"`
}

// recurrenceJSON is the flat wire shape shared with the server.
type recurrenceJSON struct {
	ID              *string        `json:"id"`
	DisplayString   string         `json:"displayString"`
	Frequency       *int           `json:"frequency"`
	TypeName        string         `json:"typeName"`
	TimeOfDay       *timeOfDayJSON `json:"timeOfDay"`
	TimeZone        *string        `json:"timeZone"`
	TimeZoneName    *string        `json:"timeZoneName"`
	MinuteOfHour    *int           `json:"minuteOfHour"`
	DayOfWeek       *int           `json:"dayOfWeek"`
	DayOfMonth      *int           `json:"dayOfMonth"`
	NthDayOfWeek    *int           `json:"nthDayOfWeek"`
	Month           *int           `json:"month"`
	DaysOfWeek      []int          `json:"daysOfWeek"`
	TotalTimesToRun *int           `json:"totalTimesToRun"`
	TimesHasRun     int            `json:"timesHasRun"`
}

type timeOfDayInput struct {
	Hour   OptionalInt `json:"hour"`
	Minute OptionalInt `json:"minute"`
}

// recurrenceInput decodes leniently: null, missing or non-integral numbers become
// absence instead of errors.
type recurrenceInput struct {
	ID              *string         `json:"id"`
	DisplayString   *string         `json:"displayString"`
	Frequency       OptionalInt     `json:"frequency"`
	TypeName        string          `json:"typeName"`
	TimeOfDay       *timeOfDayInput `json:"timeOfDay"`
	TimeZone        *string         `json:"timeZone"`
	TimeZoneName    *string         `json:"timeZoneName"`
	MinuteOfHour    OptionalInt     `json:"minuteOfHour"`
	DayOfWeek       OptionalInt     `json:"dayOfWeek"`
	DayOfMonth      OptionalInt     `json:"dayOfMonth"`
	NthDayOfWeek    OptionalInt     `json:"nthDayOfWeek"`
	Month           OptionalInt     `json:"month"`
	DaysOfWeek      []OptionalInt   `json:"daysOfWeek"`
	TotalTimesToRun OptionalInt     `json:"totalTimesToRun"`
	TimesHasRun     OptionalInt     `json:"timesHasRun"`
}

// FromJSON decodes a server payload. Fields missing from the payload take the
// defaults of New; only malformed JSON is an error.
func FromJSON(data []byte) (Recurrence, error) {
	var r Recurrence
	if err := json.Unmarshal(data, &r); err != nil {
		return Recurrence{}, err
	}
	return r, nil
}

// ToJSON encodes the recurrence in its wire shape.
func (r Recurrence) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

func (r Recurrence) MarshalJSON() ([]byte, error) {
	out := recurrenceJSON{
		DisplayString:   r.DisplayString,
		Frequency:       &r.Frequency,
		TypeName:        string(r.TypeName()),
		MinuteOfHour:    r.MinuteOfHour().Ptr(),
		DayOfWeek:       r.DayOfWeek().Ptr(),
		DayOfMonth:      r.DayOfMonth().Ptr(),
		NthDayOfWeek:    r.NthDayOfWeek().Ptr(),
		Month:           r.Month().Ptr(),
		DaysOfWeek:      []int{},
		TotalTimesToRun: r.TotalTimesToRun.Ptr(),
		TimesHasRun:     r.TimesHasRun,
	}
	if r.ID != "" {
		out.ID = &r.ID
	}
	if t, ok := r.TimeOfDay(); ok {
		out.TimeOfDay = &timeOfDayJSON{Hour: t.Hour.Ptr(), Minute: t.Minute.Ptr()}
	}
	if zone := r.Zone(); zone.ID != "" {
		out.TimeZone = &zone.ID
	}
	if zone := r.Zone(); zone.Name != "" {
		out.TimeZoneName = &zone.Name
	}
	for _, day := range r.DaysOfWeek() {
		if v, ok := day.Value(); ok {
			out.DaysOfWeek = append(out.DaysOfWeek, v)
		}
	}
	return json.Marshal(out)
}

func (r *Recurrence) UnmarshalJSON(data []byte) error {
	in := recurrenceInput{
		Frequency: Int(1),
		TypeName:  string(TypeDaily),
		TimeOfDay: &timeOfDayInput{Hour: Int(9), Minute: Int(0)},
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.Wrap(err, "failed to decode recurrence")
	}

	var timed Timed
	if in.TimeOfDay != nil {
		timed.TimeOfDay = TimeOfDay{Hour: Hour{in.TimeOfDay.Hour}, Minute: Minute{in.TimeOfDay.Minute}}
	}
	if in.TimeZone != nil {
		timed.Zone.ID = *in.TimeZone
	}
	if in.TimeZoneName != nil {
		timed.Zone.Name = *in.TimeZoneName
	}

	var rule Rule
	switch TypeName(in.TypeName) {
	case TypeMinutely:
		rule = Minutely{}
	case TypeHourly:
		rule = Hourly{MinuteOfHour: in.MinuteOfHour}
	case TypeDaily:
		rule = Daily{timed}
	case TypeWeekly:
		days := make([]DayOfWeek, 0, len(in.DaysOfWeek))
		for _, day := range in.DaysOfWeek {
			days = append(days, DayOfWeek{day})
		}
		rule = Weekly{Timed: timed, DaysOfWeek: days}
	case TypeMonthlyByDayOfMonth:
		rule = MonthlyByDayOfMonth{Timed: timed, DayOfMonth: DayOfMonth{in.DayOfMonth}}
	case TypeMonthlyByNthDayOfWeek:
		rule = MonthlyByNthDayOfWeek{Timed: timed, NthDayOfWeek: in.NthDayOfWeek, DayOfWeek: DayOfWeek{in.DayOfWeek}}
	case TypeYearly:
		rule = Yearly{Timed: timed, Month: Month{in.Month}, DayOfMonth: DayOfMonth{in.DayOfMonth}}
	default:
		rule = Unrecognized{Name: in.TypeName}
	}

	*r = Recurrence{
		Frequency:       in.Frequency.Or(0),
		TotalTimesToRun: in.TotalTimesToRun,
		TimesHasRun:     in.TimesHasRun.Or(0),
		Rule:            rule,
	}
	if in.ID != nil {
		r.ID = *in.ID
	}
	if in.DisplayString != nil {
		r.DisplayString = *in.DisplayString
	}
	return nil
}
