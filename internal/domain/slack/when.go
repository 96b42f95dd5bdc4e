package slack

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-schedule-bot/pkg/recurrence"
	"github.com/pkg/errors"
)

var ErrInvalidWhen = errors.New("could not understand when to post")

var (
	timePattern    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm|a\.m\.|p\.m\.)?$`)
	ordinalPattern = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?$`)
	minutePattern  = regexp.MustCompile(`^:?(\d{1,2})$`)

	ordinalWords = map[string]int{"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5}
)

type whenParser struct {
	tokens []string
	pos    int
	zone   recurrence.Zone
}

// ParseWhen reads schedules such as "every 2 weeks on mon, wed at 9:30am 4 times"
// into a Recurrence in zone. The result is always valid.
func ParseWhen(input string, zone recurrence.Zone) (recurrence.Recurrence, error) {
	cleaned := strings.NewReplacer(",", " ", " and ", " ").Replace(" " + strings.ToLower(input) + " ")
	p := &whenParser{tokens: strings.Fields(cleaned), zone: zone}

	total := p.takeTimesSuffix()

	if !p.accept("every") {
		return recurrence.Recurrence{}, errors.Wrap(ErrInvalidWhen, "schedules start with `every`")
	}
	frequency := p.frequency()

	rule, err := p.rule()
	if err != nil {
		return recurrence.Recurrence{}, err
	}
	if !p.done() {
		return recurrence.Recurrence{}, errors.Wrapf(ErrInvalidWhen, "unexpected %q", p.peek())
	}

	r := recurrence.New(recurrence.WithFrequency(frequency), recurrence.WithRule(rule))
	if total.HasValue() {
		r = r.LimitTimesToRun(total)
	}
	if !r.IsValid() {
		return recurrence.Recurrence{}, ErrInvalidWhen
	}
	return r, nil
}

func (p *whenParser) peek() string {
	if p.done() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *whenParser) next() string {
	tok := p.peek()
	if !p.done() {
		p.pos++
	}
	return tok
}

func (p *whenParser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *whenParser) accept(words ...string) bool {
	for _, w := range words {
		if p.peek() == w {
			p.pos++
			return true
		}
	}
	return false
}

// takeTimesSuffix strips a trailing "N times", "once" or "twice".
func (p *whenParser) takeTimesSuffix() recurrence.OptionalInt {
	n := len(p.tokens)
	if n == 0 {
		return recurrence.None()
	}
	switch p.tokens[n-1] {
	case "once":
		p.tokens = p.tokens[:n-1]
		return recurrence.Int(1)
	case "twice":
		p.tokens = p.tokens[:n-1]
		return recurrence.Int(2)
	case "time", "times":
		if n < 2 {
			return recurrence.None()
		}
		count := recurrence.ParseInt(p.tokens[n-2])
		if count.Is(func(v int) bool { return v > 0 }) {
			p.tokens = p.tokens[:n-2]
			return count
		}
	}
	return recurrence.None()
}

func (p *whenParser) frequency() int {
	if p.accept("other") {
		return 2
	}
	if n, err := strconv.Atoi(p.peek()); err == nil {
		p.pos++
		return n
	}
	return 1
}

func (p *whenParser) rule() (recurrence.Rule, error) {
	unit := strings.TrimSuffix(p.next(), "s")
	switch unit {
	case "minute", "min":
		return recurrence.Minutely{}, nil
	case "hour":
		return p.hourly()
	case "day":
		timed, err := p.timed()
		return recurrence.Daily{Timed: timed}, err
	case "weekday":
		timed, err := p.timed()
		return recurrence.Weekly{
			Timed:      timed,
			DaysOfWeek: []recurrence.DayOfWeek{recurrence.Monday, recurrence.Tuesday, recurrence.Wednesday, recurrence.Thursday, recurrence.Friday},
		}, err
	case "week":
		return p.weekly()
	case "month":
		return p.monthly()
	case "year":
		return p.yearly()
	case "":
		return nil, errors.Wrap(ErrInvalidWhen, "missing a unit such as `day` or `week`")
	default:
		return nil, errors.Wrapf(ErrInvalidWhen, "unknown unit %q", unit)
	}
}

func (p *whenParser) hourly() (recurrence.Rule, error) {
	if !p.accept("at") {
		return recurrence.Hourly{MinuteOfHour: recurrence.Int(0)}, nil
	}
	m := minutePattern.FindStringSubmatch(p.next())
	if m == nil {
		return nil, errors.Wrap(ErrInvalidWhen, "use `at :MM` for hourly schedules")
	}
	minute := recurrence.ParseInt(m[1])
	if !minute.Is(recurrence.IsValidMinute) {
		return nil, errors.Wrapf(ErrInvalidWhen, "minute %s is out of range", m[1])
	}
	// hourly rules validate their minute against the hour range
	if !minute.Is(recurrence.IsValidHour) {
		return nil, errors.Wrapf(ErrInvalidWhen, "hourly schedules only support minutes 0 to 23, got %s", m[1])
	}
	return recurrence.Hourly{MinuteOfHour: minute}, nil
}

func (p *whenParser) weekly() (recurrence.Rule, error) {
	if !p.accept("on") {
		return nil, errors.Wrap(ErrInvalidWhen, "weekly schedules need `on <days>`")
	}
	var days []recurrence.DayOfWeek
	for !p.done() && p.peek() != "at" {
		tok := p.next()
		day := recurrence.DayOfWeekFromName(tok)
		if !day.IsValid() {
			day = recurrence.DayOfWeekFromName(strings.TrimSuffix(tok, "s"))
		}
		if !day.IsValid() {
			return nil, errors.Wrapf(ErrInvalidWhen, "unknown day %q", tok)
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, errors.Wrap(ErrInvalidWhen, "weekly schedules need at least one day")
	}
	timed, err := p.timed()
	return recurrence.Weekly{Timed: timed, DaysOfWeek: days}, err
}

func (p *whenParser) monthly() (recurrence.Rule, error) {
	if !p.accept("on") {
		return nil, errors.Wrap(ErrInvalidWhen, "monthly schedules need `on the <day>`")
	}
	p.accept("the")

	n, ok := ordinal(p.next())
	if !ok {
		return nil, errors.Wrap(ErrInvalidWhen, "expected a day such as `15th` or `2nd tue`")
	}

	if day := recurrence.DayOfWeekFromName(p.peek()); day.IsValid() {
		p.pos++
		timed, err := p.timed()
		return recurrence.MonthlyByNthDayOfWeek{Timed: timed, NthDayOfWeek: recurrence.Int(n), DayOfWeek: day}, err
	}

	p.accept("day")
	timed, err := p.timed()
	return recurrence.MonthlyByDayOfMonth{Timed: timed, DayOfMonth: recurrence.NewDayOfMonth(n)}, err
}

func (p *whenParser) yearly() (recurrence.Rule, error) {
	if !p.accept("on") {
		return nil, errors.Wrap(ErrInvalidWhen, "yearly schedules need `on <month> <day>`")
	}
	month := recurrence.MonthFromName(p.next())
	if !month.IsValid() {
		return nil, errors.Wrap(ErrInvalidWhen, "expected a month such as `jan`")
	}
	day, ok := ordinal(p.next())
	if !ok {
		return nil, errors.Wrap(ErrInvalidWhen, "expected a day of the month")
	}
	timed, err := p.timed()
	return recurrence.Yearly{Timed: timed, Month: month, DayOfMonth: recurrence.NewDayOfMonth(month.LimitDayToMax(day))}, err
}

// timed reads an optional "at <time>"; without it the rule runs at 9:00.
func (p *whenParser) timed() (recurrence.Timed, error) {
	timed := recurrence.Timed{TimeOfDay: recurrence.DefaultTimeOfDay(), Zone: p.zone}
	if !p.accept("at") {
		return timed, nil
	}
	timeOfDay, err := p.timeOfDay()
	if err != nil {
		return timed, err
	}
	timed.TimeOfDay = timeOfDay
	return timed, nil
}

func (p *whenParser) timeOfDay() (recurrence.TimeOfDay, error) {
	switch p.peek() {
	case "noon":
		p.pos++
		return recurrence.TimeOfDay{Hour: recurrence.NewHour(12), Minute: recurrence.NewMinute(0)}, nil
	case "midnight":
		p.pos++
		return recurrence.TimeOfDay{Hour: recurrence.NewHour(0), Minute: recurrence.NewMinute(0)}, nil
	}

	m := timePattern.FindStringSubmatch(p.next())
	if m == nil {
		return recurrence.TimeOfDay{}, errors.Wrap(ErrInvalidWhen, "expected a time such as `9:30am` or `17:00`")
	}
	meridiem := m[3]
	if meridiem == "" {
		switch p.peek() {
		case "am", "pm", "a.m.", "p.m.":
			meridiem = p.next()
		}
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch strings.ReplaceAll(meridiem, ".", "") {
	case "am":
		if hour < 1 || hour > 12 {
			return recurrence.TimeOfDay{}, errors.Wrapf(ErrInvalidWhen, "%d is not a 12-hour clock hour", hour)
		}
		hour = recurrence.ConvertToAM(hour % 12)
	case "pm":
		if hour < 1 || hour > 12 {
			return recurrence.TimeOfDay{}, errors.Wrapf(ErrInvalidWhen, "%d is not a 12-hour clock hour", hour)
		}
		hour = recurrence.ConvertToPM(hour % 12)
	}

	timeOfDay := recurrence.TimeOfDay{Hour: recurrence.NewHour(hour), Minute: recurrence.NewMinute(minute)}
	if !timeOfDay.IsValid() {
		return recurrence.TimeOfDay{}, errors.Wrap(ErrInvalidWhen, "time is out of range")
	}
	return timeOfDay, nil
}

func ordinal(tok string) (int, bool) {
	if n, ok := ordinalWords[tok]; ok {
		return n, true
	}
	m := ordinalPattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	return n, err == nil
}
