package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// 2025-03-03 - понедельник
var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(monday.Year(), monday.Month(), monday.Day(), hour, minute, 0, 0, time.UTC)
}

func ts(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

func mondayAvailability() *Availability {
	return &Availability{
		ID:       1,
		Timezone: "UTC",
		Schedules: []WeeklySchedule{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "12:00"},
		},
	}
}

func halfHourEvent() *EventType {
	return &EventType{ID: 7, DurationMinutes: 30}
}

func slotTimes(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Format(TimeFormat)
	}
	return out
}

func TestResolveSlots_Scenarios(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		availability *Availability
		eventType    *EventType
		bookings     []*Booking
		now          time.Time
		want         []string
	}{
		{
			name:         "weekly schedule without bookings",
			availability: mondayAvailability(),
			eventType:    halfHourEvent(),
			now:          monday,
			want: []string{
				"09:00", "09:15", "09:30", "09:45", "10:00", "10:15",
				"10:30", "10:45", "11:00", "11:15", "11:30",
			},
		},
		{
			name:         "confirmed booking removes overlapping slots",
			availability: mondayAvailability(),
			eventType:    halfHourEvent(),
			bookings: []*Booking{
				{ID: 1, StartTime: at(10, 0), EndTime: at(10, 30), Status: StatusConfirmed},
			},
			now: monday,
			want: []string{
				"09:00", "09:15", "09:30", "10:30", "10:45", "11:00", "11:15", "11:30",
			},
		},
		{
			name:         "cancelled booking is ignored",
			availability: mondayAvailability(),
			eventType:    halfHourEvent(),
			bookings: []*Booking{
				{ID: 1, StartTime: at(10, 0), EndTime: at(10, 30), Status: StatusCancelled},
			},
			now: monday,
			want: []string{
				"09:00", "09:15", "09:30", "09:45", "10:00", "10:15",
				"10:30", "10:45", "11:00", "11:15", "11:30",
			},
		},
		{
			name: "blocked override wins over weekly schedule",
			availability: func() *Availability {
				a := mondayAvailability()
				a.Overrides = []DateOverride{{Date: monday, IsBlocked: true}}
				return a
			}(),
			eventType: halfHourEvent(),
			now:       monday,
			want:      []string{},
		},
		{
			name: "override with times replaces weekly schedule",
			availability: func() *Availability {
				a := mondayAvailability()
				a.Overrides = []DateOverride{{Date: monday, StartTime: ts("14:00"), EndTime: ts("15:00")}}
				return a
			}(),
			eventType: halfHourEvent(),
			now:       monday,
			want:      []string{"14:00", "14:15", "14:30"},
		},
		{
			name: "override without times falls back to weekly schedule",
			availability: func() *Availability {
				a := mondayAvailability()
				a.Overrides = []DateOverride{{Date: monday}}
				return a
			}(),
			eventType: &EventType{DurationMinutes: 60},
			now:       monday,
			want:      []string{"09:00", "09:15", "09:30", "09:45", "10:00", "10:15", "10:30", "10:45", "11:00"},
		},
		{
			name:         "no schedule for the weekday",
			availability: &Availability{Timezone: "UTC", Schedules: []WeeklySchedule{{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"}}},
			eventType:    halfHourEvent(),
			now:          monday,
			want:         []string{},
		},
		{
			name:         "no availability at all",
			availability: nil,
			eventType:    halfHourEvent(),
			now:          monday,
			want:         []string{},
		},
		{
			name:         "slots at or before now are skipped",
			availability: mondayAvailability(),
			eventType:    halfHourEvent(),
			now:          at(10, 15),
			want:         []string{"10:30", "10:45", "11:00", "11:15", "11:30"},
		},
		{
			name:         "duration longer than window",
			availability: mondayAvailability(),
			eventType:    &EventType{DurationMinutes: 240},
			now:          monday,
			want:         []string{},
		},
		{
			name:         "buffers widen the busy interval",
			availability: mondayAvailability(),
			eventType:    &EventType{DurationMinutes: 30, BufferBeforeMinutes: 15, BufferAfterMinutes: 30},
			bookings: []*Booking{
				{ID: 1, StartTime: at(10, 0), EndTime: at(10, 30), Status: StatusConfirmed},
			},
			now: monday,
			// занято [09:45, 11:00)
			want: []string{"09:00", "09:15", "11:00", "11:15", "11:30"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			slots, err := ResolveSlots(tc.eventType, tc.availability, tc.bookings, monday, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, slotTimes(slots))
		})
	}
}

func TestResolveSlots_Properties(t *testing.T) {
	t.Parallel()

	availability := mondayAvailability()
	availability.Schedules[0] = WeeklySchedule{DayOfWeek: int(time.Monday), StartTime: "08:10", EndTime: "17:05"}

	windowStart := at(8, 10)
	windowEnd := at(17, 5)

	eventTypes := []*EventType{
		{DurationMinutes: 20},
		{DurationMinutes: 45, BufferBeforeMinutes: 10},
		{DurationMinutes: 60, BufferAfterMinutes: 25},
		{DurationMinutes: 15, BufferBeforeMinutes: 5, BufferAfterMinutes: 5},
	}
	bookings := []*Booking{
		{ID: 1, StartTime: at(9, 0), EndTime: at(9, 40), Status: StatusConfirmed},
		{ID: 2, StartTime: at(12, 5), EndTime: at(13, 0), Status: StatusConfirmed},
		{ID: 3, StartTime: at(16, 30), EndTime: at(16, 45), Status: StatusConfirmed},
	}
	nows := []time.Time{monday, at(11, 20), at(16, 0)}

	for _, et := range eventTypes {
		for _, now := range nows {
			slots, err := ResolveSlots(et, availability, bookings, monday, now)
			require.NoError(t, err)

			for i, s := range slots {
				// в будущем
				assert.True(t, s.Start.After(now))
				// внутри окна
				assert.False(t, s.Start.Before(windowStart))
				assert.False(t, s.End.After(windowEnd))
				// не пересекает бронирования с буферами
				for _, b := range bookings {
					busy := b.Interval().Expand(et.BufferBefore(), et.BufferAfter())
					assert.False(t, Interval{Start: s.Start, End: s.End}.Overlaps(busy),
						"slot %s overlaps booking %d", s.Start.Format(TimeFormat), b.ID)
				}
				// по возрастанию
				if i > 0 {
					assert.True(t, slots[i-1].Start.Before(s.Start))
				}
				assert.Equal(t, et.Duration(), s.End.Sub(s.Start))
			}
		}
	}
}

func TestResolveSlots_BlockedOverrideAlwaysEmpty(t *testing.T) {
	t.Parallel()

	availability := &Availability{Timezone: "UTC", Overrides: []DateOverride{{Date: monday, IsBlocked: true, StartTime: ts("09:00"), EndTime: ts("18:00")}}}
	for day := 0; day < 7; day++ {
		availability.Schedules = append(availability.Schedules, WeeklySchedule{DayOfWeek: day, StartTime: "00:00", EndTime: "23:45"})
	}

	slots, err := ResolveSlots(halfHourEvent(), availability, nil, monday, monday.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlots_HostTimezone(t *testing.T) {
	t.Parallel()

	availability := mondayAvailability()
	availability.Timezone = "America/New_York"

	slots, err := ResolveSlots(halfHourEvent(), availability, nil, monday, monday.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, slots, 11)

	// 09:00 EST = 14:00 UTC
	assert.Equal(t, time.Date(2025, time.March, 3, 14, 0, 0, 0, time.UTC), slots[0].Start.UTC())
	assert.Equal(t, "09:00", slots[0].Start.Format(TimeFormat))
}

func TestResolveSlots_Errors(t *testing.T) {
	t.Parallel()

	_, err := ResolveSlots(&EventType{DurationMinutes: 0}, mondayAvailability(), nil, monday, monday)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	availability := mondayAvailability()
	availability.Timezone = "Mars/Olympus"
	_, err = ResolveSlots(halfHourEvent(), availability, nil, monday, monday)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestDayBounds(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	bounds := DayBounds(monday, loc)
	assert.Equal(t, 24*time.Hour, bounds.End.Sub(bounds.Start))
	assert.Equal(t, "2025-03-03 00:00", bounds.Start.Format("2006-01-02 15:04"))
}

func TestResolveSlots_SpringForward(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-09 - воскресенье, в 02:00 часы переводятся на 03:00
	date := time.Date(2025, time.March, 9, 0, 0, 0, 0, loc)
	availability := &Availability{
		Timezone: "America/New_York",
		Schedules: []WeeklySchedule{
			{DayOfWeek: int(time.Sunday), StartTime: "01:00", EndTime: "04:00"},
		},
	}

	slots, err := ResolveSlots(&EventType{DurationMinutes: 60}, availability, nil, date, date.AddDate(0, 0, -1))
	require.NoError(t, err)

	require.Equal(t, []string{"01:00", "01:15", "01:30", "01:45", "03:00"}, slotTimes(slots))
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start), "slot %d is not after slot %d", i, i-1)
	}
	last := slots[len(slots)-1]
	assert.Equal(t, time.Hour, last.End.Sub(last.Start))
	assert.Equal(t, "04:00", last.End.Format(TimeFormat))
}

func TestResolveSlots_BookingSpanningMidnight(t *testing.T) {
	t.Parallel()

	availability := &Availability{
		Timezone: "UTC",
		Schedules: []WeeklySchedule{
			{DayOfWeek: int(time.Monday), StartTime: "00:00", EndTime: "02:00"},
		},
	}
	// началось в воскресенье 23:30, закончилось в понедельник 00:45
	spanning := &Booking{ID: 1, StartTime: at(0, 0).Add(-30 * time.Minute), EndTime: at(0, 45), Status: StatusConfirmed}

	withBooking, err := ResolveSlots(halfHourEvent(), availability, []*Booking{spanning}, monday, monday.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, []string{"00:45", "01:00", "01:15", "01:30"}, slotTimes(withBooking))

	// Бронирование предыдущего дня не передано: утренние слоты остаются свободными
	withoutBooking, err := ResolveSlots(halfHourEvent(), availability, nil, monday, monday.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, "00:00", slotTimes(withoutBooking)[0])
}
