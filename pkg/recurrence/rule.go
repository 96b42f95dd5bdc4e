package recurrence

// TypeName identifies the kind of repeat rule.
type TypeName string

const (
	TypeMinutely              TypeName = "minutely"
	TypeHourly                TypeName = "hourly"
	TypeDaily                 TypeName = "daily"
	TypeWeekly                TypeName = "weekly"
	TypeMonthlyByDayOfMonth   TypeName = "monthly_by_day_of_month"
	TypeMonthlyByNthDayOfWeek TypeName = "monthly_by_nth_day_of_week"
	TypeYearly                TypeName = "yearly"
)

// TimeOfDay is the wall-clock time a daily-or-slower rule runs at.
type TimeOfDay struct {
	Hour   Hour
	Minute Minute
}

// DefaultTimeOfDay is 9:00.
func DefaultTimeOfDay() TimeOfDay {
	return TimeOfDay{Hour: NewHour(9), Minute: NewMinute(0)}
}

// IsSet reports whether any part of the time was given.
func (t TimeOfDay) IsSet() bool {
	return t.Hour.HasValue() || t.Minute.HasValue()
}

func (t TimeOfDay) IsValid() bool {
	return t.Hour.IsValid() && t.Minute.IsValid()
}

// String renders the time on a 12-hour clock, e.g. "9:05 PM".
func (t TimeOfDay) String() string {
	if !t.IsValid() {
		return ""
	}
	return t.Hour.String() + ":" + t.Minute.String() + " " + t.Hour.Meridiem()
}

// Zone is an IANA time zone id plus its display name.
type Zone struct {
	ID   string
	Name string
}

// IsValid reports whether a zone id is present. A missing zone is invalid, not a panic.
func (z Zone) IsValid() bool {
	return len(z.ID) > 0
}

// Timed holds the fields shared by every rule that runs at a time of day.
type Timed struct {
	TimeOfDay TimeOfDay
	Zone      Zone
}

func (t Timed) timing() Timed {
	return t
}

func (t Timed) hasValidTimeOfDay() bool {
	return t.TimeOfDay.IsSet() && t.Zone.IsValid() && t.TimeOfDay.IsValid()
}

// Rule is one variant of the repeat rule. Each variant carries only the fields it uses.
type Rule interface {
	TypeName() TypeName
	valid() bool
}

type timedRule interface {
	Rule
	timing() Timed
}

// Minutely runs every Frequency minutes.
type Minutely struct{}

// Hourly runs every Frequency hours at MinuteOfHour past the hour.
type Hourly struct {
	MinuteOfHour OptionalInt
}

// Daily runs every Frequency days.
type Daily struct {
	Timed
}

// Weekly runs every Frequency weeks on each of DaysOfWeek.
type Weekly struct {
	Timed
	DaysOfWeek []DayOfWeek
}

// MonthlyByDayOfMonth runs every Frequency months on a calendar day.
type MonthlyByDayOfMonth struct {
	Timed
	DayOfMonth DayOfMonth
}

// MonthlyByNthDayOfWeek runs every Frequency months on, e.g., the 2nd Tuesday.
type MonthlyByNthDayOfWeek struct {
	Timed
	NthDayOfWeek OptionalInt
	DayOfWeek    DayOfWeek
}

// Yearly runs every Frequency years on a month and day.
type Yearly struct {
	Timed
	Month      Month
	DayOfMonth DayOfMonth
}

// Unrecognized keeps a type name this package does not know. It is never valid.
type Unrecognized struct {
	Name string
}

func (Minutely) TypeName() TypeName              { return TypeMinutely }
func (Hourly) TypeName() TypeName                { return TypeHourly }
func (Daily) TypeName() TypeName                 { return TypeDaily }
func (Weekly) TypeName() TypeName                { return TypeWeekly }
func (MonthlyByDayOfMonth) TypeName() TypeName   { return TypeMonthlyByDayOfMonth }
func (MonthlyByNthDayOfWeek) TypeName() TypeName { return TypeMonthlyByNthDayOfWeek }
func (Yearly) TypeName() TypeName                { return TypeYearly }
func (u Unrecognized) TypeName() TypeName        { return TypeName(u.Name) }

func (Minutely) valid() bool {
	return true
}

// The minute of the hour is checked against the hour range [0,24); existing
// schedules rely on it.
func (r Hourly) valid() bool {
	return r.MinuteOfHour.Is(IsValidHour)
}

func (r Daily) valid() bool {
	return r.hasValidTimeOfDay()
}

func (r Weekly) valid() bool {
	if !r.hasValidTimeOfDay() || len(r.DaysOfWeek) == 0 {
		return false
	}
	for _, day := range r.DaysOfWeek {
		if !day.IsValid() {
			return false
		}
	}
	return true
}

func (r MonthlyByDayOfMonth) valid() bool {
	return r.hasValidTimeOfDay() && r.DayOfMonth.IsValid()
}

func (r MonthlyByNthDayOfWeek) valid() bool {
	return r.hasValidTimeOfDay() && hasValidNth(r.NthDayOfWeek) && r.DayOfWeek.IsValid()
}

func (r Yearly) valid() bool {
	return r.hasValidTimeOfDay() && r.DayOfMonth.IsValid() && r.Month.IsValid()
}

func (Unrecognized) valid() bool {
	return false
}

func hasValidNth(nth OptionalInt) bool {
	return nth.Is(func(n int) bool { return n >= 1 && n <= 5 })
}

// LimitNthWeekdayNumber turns a typed day number into an nth-weekday number: the
// last digit, kept within [1,5]. Absence becomes 1.
func LimitNthWeekdayNumber(day OptionalInt) int {
	v, ok := day.Value()
	if !ok {
		return 1
	}
	lastDigit := v % 10
	if lastDigit > 5 {
		lastDigit = 5
	}
	if lastDigit < 1 {
		lastDigit = 1
	}
	return lastDigit
}
