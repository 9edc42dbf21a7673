package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySchedule_IsWorkable(t *testing.T) {
	tests := []struct {
		name string
		day  DaySchedule
		want bool
	}{
		{name: "regular day", day: DaySchedule{Open: "09:00", Close: "18:00"}, want: true},
		{name: "closed", day: DaySchedule{Closed: true, Open: "09:00", Close: "18:00"}, want: false},
		{name: "empty", day: DaySchedule{}, want: false},
		{name: "missing close", day: DaySchedule{Open: "09:00"}, want: false},
		{name: "open after close", day: DaySchedule{Open: "18:00", Close: "09:00"}, want: false},
		{name: "open equals close", day: DaySchedule{Open: "09:00", Close: "09:00"}, want: false},
		{name: "garbage time", day: DaySchedule{Open: "9am", Close: "18:00"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.day.IsWorkable())
		})
	}
}

func TestDaySchedule_Validate(t *testing.T) {
	assert.NoError(t, DaySchedule{Open: "09:00", Close: "18:00"}.Validate())
	assert.NoError(t, DaySchedule{Closed: true}.Validate())
	assert.NoError(t, DaySchedule{}.Validate())

	assert.Error(t, DaySchedule{Open: "09:00"}.Validate())
	assert.Error(t, DaySchedule{Open: "18:00", Close: "09:00"}.Validate())
	assert.Error(t, DaySchedule{Open: "25:00", Close: "26:00"}.Validate())
}

func TestDaySchedule_OpenIntervalOn(t *testing.T) {
	day := DaySchedule{Open: "09:00", Close: "18:00"}
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	t.Run("resolves in the given timezone", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Moscow")
		require.NoError(t, err)

		open, ok := day.OpenIntervalOn(date, loc)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, loc), open.Start)
		assert.Equal(t, time.Date(2026, 9, 7, 18, 0, 0, 0, loc), open.End)
	})

	t.Run("closed day gives no interval", func(t *testing.T) {
		_, ok := DaySchedule{Closed: true}.OpenIntervalOn(date, time.UTC)
		assert.False(t, ok)
	})

	t.Run("malformed day gives no interval", func(t *testing.T) {
		_, ok := DaySchedule{Open: "18:00", Close: "09:00"}.OpenIntervalOn(date, time.UTC)
		assert.False(t, ok)
	})
}

func TestWeekSchedule_ForWeekday(t *testing.T) {
	week := WeekSchedule{
		Monday:  DaySchedule{Open: "09:00", Close: "18:00"},
		Sunday:  DaySchedule{Closed: true},
		Tuesday: DaySchedule{Open: "10:00", Close: "20:00"},
	}

	assert.Equal(t, week.Monday, week.ForWeekday(time.Monday))
	assert.Equal(t, week.Tuesday, week.ForWeekday(time.Tuesday))
	assert.Equal(t, week.Sunday, week.ForWeekday(time.Sunday))
	// Незаполненный день недели эквивалентен выходному
	assert.False(t, week.ForWeekday(time.Friday).IsWorkable())
}

func TestWeekSchedule_Validate(t *testing.T) {
	valid := WeekSchedule{
		Monday: DaySchedule{Open: "09:00", Close: "18:00"},
		Sunday: DaySchedule{Closed: true},
	}
	assert.NoError(t, valid.Validate())

	broken := valid
	broken.Wednesday = DaySchedule{Open: "20:00", Close: "10:00"}
	err := broken.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wednesday")
}

func TestResolveDaySchedule(t *testing.T) {
	salonHours := WeekSchedule{Monday: DaySchedule{Open: "09:00", Close: "18:00"}}
	override := &WeekSchedule{Monday: DaySchedule{Open: "12:00", Close: "21:00"}}

	t.Run("specialist override wins", func(t *testing.T) {
		day := ResolveDaySchedule(override, salonHours, time.Monday)
		assert.Equal(t, override.Monday, day)
	})

	t.Run("salon hours without override", func(t *testing.T) {
		day := ResolveDaySchedule(nil, salonHours, time.Monday)
		assert.Equal(t, salonHours.Monday, day)
	})

	t.Run("override day off shadows salon working day", func(t *testing.T) {
		dayOff := &WeekSchedule{Monday: DaySchedule{Closed: true}}
		day := ResolveDaySchedule(dayOff, salonHours, time.Monday)
		assert.False(t, day.IsWorkable())
	})
}
