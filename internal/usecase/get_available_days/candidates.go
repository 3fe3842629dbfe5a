package get_available_days

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var weekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// candidateDates даты месяца, на которые у доступности в принципе есть окно
//
// Недельные дни разворачиваются правилом FREQ=WEEKLY;BYDAY=...,
// исключения с часами добавляются как RDATE, заблокированные убираются как EXDATE.
func candidateDates(availability *domain.Availability, month domain.Interval) ([]time.Time, error) {
	loc := month.Start.Location()

	var set rrule.Set

	if len(availability.Schedules) > 0 {
		byDay := make([]rrule.Weekday, 0, len(availability.Schedules))
		for _, s := range availability.Schedules {
			if wd, ok := weekdays[time.Weekday(s.DayOfWeek)]; ok {
				byDay = append(byDay, wd)
			}
		}

		r, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   month.Start,
			Byweekday: byDay,
			Until:     month.End,
		})
		if err != nil {
			return nil, err
		}
		set.RRule(r)
	}

	for _, o := range availability.Overrides {
		date := time.Date(o.Date.Year(), o.Date.Month(), o.Date.Day(), 0, 0, 0, 0, loc)
		switch {
		case o.IsBlocked:
			set.ExDate(date)
		case o.HasTimes():
			set.RDate(date)
		}
	}

	result := make([]time.Time, 0)
	seen := make(map[string]struct{})
	for _, t := range set.Between(month.Start, month.End, true) {
		if !t.Before(month.End) {
			continue
		}
		key := t.Format(domain.DateFormat)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc))
	}

	return result, nil
}
