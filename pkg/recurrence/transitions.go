package recurrence

// Become* switch a recurrence to another rule type. Fields the new type does not
// use are dropped; fields it shares with the current rule are carried over, and the
// rest fall back to defaults. The zone comes from the current rule, or from
// defaults when the current rule has none (the team's zone, usually).

func (r Recurrence) BecomeMinutely() Recurrence {
	return r.Clone(WithRule(Minutely{}))
}

func (r Recurrence) BecomeHourly() Recurrence {
	minute := r.MinuteOfHour()
	if !minute.HasValue() {
		minute = Int(0)
	}
	return r.Clone(WithRule(Hourly{MinuteOfHour: minute}))
}

func (r Recurrence) BecomeDaily(defaults Zone) Recurrence {
	return r.Clone(WithRule(Daily{r.timedFor(defaults)}))
}

// BecomeWeekly keeps the days of an already weekly rule.
func (r Recurrence) BecomeWeekly(defaults Zone) Recurrence {
	return r.Clone(WithRule(Weekly{
		Timed:      r.timedFor(defaults),
		DaysOfWeek: r.DaysOfWeek(),
	}))
}

func (r Recurrence) BecomeMonthlyByDayOfMonth(defaults Zone) Recurrence {
	return r.Clone(WithRule(MonthlyByDayOfMonth{
		Timed:      r.timedFor(defaults),
		DayOfMonth: r.dayOfMonthOrFirst(),
	}))
}

// BecomeMonthlyByNthDayOfWeek derives the nth from the day number currently shown
// (day of month or nth) and keeps the weekday, defaulting to Monday.
func (r Recurrence) BecomeMonthlyByNthDayOfWeek(defaults Zone) Recurrence {
	day := r.DayOfMonth().OptionalInt
	if !day.HasValue() {
		day = r.NthDayOfWeek()
	}
	dayOfWeek := r.DayOfWeek()
	if !dayOfWeek.IsValid() {
		dayOfWeek = Monday
	}
	return r.Clone(WithRule(MonthlyByNthDayOfWeek{
		Timed:        r.timedFor(defaults),
		NthDayOfWeek: Int(LimitNthWeekdayNumber(day)),
		DayOfWeek:    dayOfWeek,
	}))
}

// BecomeYearly always starts in January.
func (r Recurrence) BecomeYearly(defaults Zone) Recurrence {
	return r.Clone(WithRule(Yearly{
		Timed:      r.timedFor(defaults),
		Month:      January,
		DayOfMonth: r.dayOfMonthOrFirst(),
	}))
}

// Become switches to the named type. Unknown names keep the recurrence as is.
func (r Recurrence) Become(typeName TypeName, defaults Zone) Recurrence {
	switch typeName {
	case TypeMinutely:
		return r.BecomeMinutely()
	case TypeHourly:
		return r.BecomeHourly()
	case TypeDaily:
		return r.BecomeDaily(defaults)
	case TypeWeekly:
		return r.BecomeWeekly(defaults)
	case TypeMonthlyByDayOfMonth:
		return r.BecomeMonthlyByDayOfMonth(defaults)
	case TypeMonthlyByNthDayOfWeek:
		return r.BecomeMonthlyByNthDayOfWeek(defaults)
	case TypeYearly:
		return r.BecomeYearly(defaults)
	default:
		return r.Clone()
	}
}

func (r Recurrence) timedFor(defaults Zone) Timed {
	zone := r.Zone()
	if zone.ID == "" {
		zone.ID = defaults.ID
	}
	if zone.Name == "" {
		zone.Name = defaults.Name
	}
	return Timed{
		TimeOfDay: r.FallbackTimeOfDay(),
		Zone:      zone,
	}
}

func (r Recurrence) dayOfMonthOrFirst() DayOfMonth {
	if day := r.DayOfMonth(); day.Is(func(d int) bool { return d != 0 }) {
		return day
	}
	return NewDayOfMonth(1)
}
